package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"TadawulScout/internal/model"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log zerolog.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id            TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			total_stocks  INTEGER,
			index_level   REAL,
			index_change  REAL,
			hawk_signals  INTEGER,
			quick_signals INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,

		`CREATE TABLE IF NOT EXISTS scan_signals (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id        TEXT NOT NULL,
			symbol         TEXT NOT NULL,
			company        TEXT,
			sector         TEXT,
			strategy       TEXT NOT NULL,
			conditions_met INTEGER,
			percentage     REAL,
			signal         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_scan ON scan_signals(scan_id)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON scan_signals(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan stores the scan summary and one row per security per
// strategy, in a single transaction.
func (r *SQLiteRecorder) RecordScan(result *model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	sum := result.Summary
	if _, err := tx.Exec(`INSERT INTO scans
		(id, timestamp, total_stocks, index_level, index_change, hawk_signals, quick_signals)
		VALUES (?,?,?,?,?,?,?)`,
		result.ID, result.Timestamp.Unix(), sum.TotalStocks,
		sum.IndexLevel, sum.IndexChange, sum.HawkSignals, sum.QuickSignals,
	); err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO scan_signals
		(scan_id, symbol, company, sector, strategy, conditions_met, percentage, signal)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare signals: %w", err)
	}
	defer stmt.Close()

	for _, rep := range result.Reports {
		if _, err := stmt.Exec(result.ID, rep.Symbol, rep.Company, rep.Sector,
			"hawk", rep.Hawk.ConditionsMet, rep.Hawk.Percentage, string(rep.Hawk.Signal)); err != nil {
			return fmt.Errorf("insert hawk signal: %w", err)
		}
		if _, err := stmt.Exec(result.ID, rep.Symbol, rep.Company, rep.Sector,
			"quick", rep.Quick.ConditionsMet, rep.Quick.Percentage, string(rep.Quick.Signal)); err != nil {
			return fmt.Errorf("insert quick signal: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
