// Package scanner runs the full-market evaluation: one shared reference
// index snapshot, a bounded worker pool over the registry, and the scan
// summary with per-strategy rankings.
package scanner

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"TadawulScout/internal/collector"
	"TadawulScout/internal/model"
	"TadawulScout/internal/registry"
	"TadawulScout/internal/strategy"
)

// Config holds scan parameters.
type Config struct {
	IndexSymbol  string
	LookbackDays int
	Concurrency  int
	// SectorTrends supplies the externally computed sector-momentum flag
	// per sector. Sectors without an entry default to true.
	SectorTrends map[string]bool
}

// Scanner evaluates every security in the registry against one shared
// index snapshot. It holds no per-scan state: each Scan call is
// independent and repeatable.
type Scanner struct {
	fetcher  collector.Fetcher
	registry *registry.Registry
	cfg      Config
	log      zerolog.Logger
}

// New creates a Scanner.
func New(fetcher collector.Fetcher, reg *registry.Registry, cfg Config, log zerolog.Logger) *Scanner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = 365
	}
	return &Scanner{fetcher: fetcher, registry: reg, cfg: cfg, log: log}
}

// Scan evaluates the whole registry. The reference index is fetched
// exactly once and shared read-only by all workers, so every security in
// the scan is compared against the identical index snapshot.
//
// Per-security failures degrade to omission; only an unusable index fails
// the scan as a whole.
func (s *Scanner) Scan(ctx context.Context) (*model.ScanResult, error) {
	started := time.Now()
	index, err := s.fetchIndex()
	if err != nil {
		return nil, err
	}

	securities := s.registry.All()
	reports := make([]*model.AnalysisReport, len(securities))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sec := securities[i]
				report, err := s.analyze(sec, index)
				if err != nil {
					s.log.Debug().Err(err).
						Str("symbol", sec.Symbol).
						Str("company", sec.Name).
						Msg("security skipped")
					continue
				}
				reports[i] = report
			}
		}()
	}

	for i := range securities {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	// Compact in registry order; the order is the ranking tie-breaker.
	evaluated := make([]model.AnalysisReport, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			evaluated = append(evaluated, *r)
		}
	}

	result := &model.ScanResult{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Summary:   summarize(evaluated, index),
		Reports:   evaluated,
	}

	s.log.Info().
		Int("total", s.registry.Len()).
		Int("evaluated", len(evaluated)).
		Int("hawk_buys", result.Summary.HawkSignals).
		Int("quick_buys", result.Summary.QuickSignals).
		Dur("elapsed", time.Since(started)).
		Msg("market scan completed")
	return result, nil
}

// AnalyzeSecurity evaluates a single security with a freshly fetched
// index snapshot. Used by the search endpoint.
func (s *Scanner) AnalyzeSecurity(sec registry.Security) (*model.AnalysisReport, error) {
	index, err := s.fetchIndex()
	if err != nil {
		return nil, err
	}
	return s.analyze(sec, index)
}

func (s *Scanner) fetchIndex() (*model.PriceSeries, error) {
	bars, err := s.fetcher.FetchDailyBars(s.cfg.IndexSymbol, s.cfg.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch index %s: %w", s.cfg.IndexSymbol, err)
	}
	if len(bars) < 5 {
		return nil, fmt.Errorf("index %s: %d bars: %w",
			s.cfg.IndexSymbol, len(bars), model.ErrInsufficientHistory)
	}
	return &model.PriceSeries{Symbol: s.cfg.IndexSymbol, Bars: bars}, nil
}

func (s *Scanner) analyze(sec registry.Security, index *model.PriceSeries) (*model.AnalysisReport, error) {
	bars, err := s.fetcher.FetchDailyBars(sec.Symbol, s.cfg.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", sec.Symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch %s: %w", sec.Symbol, model.ErrDataUnavailable)
	}
	series := &model.PriceSeries{Symbol: sec.Symbol, Bars: bars}

	sectorTrend := true
	if v, ok := s.cfg.SectorTrends[sec.Sector]; ok {
		sectorTrend = v
	}

	return strategy.Analyze(
		strategy.Security{Company: sec.Name, Symbol: sec.Symbol, Sector: sec.Sector},
		series, index, sectorTrend, time.Now(),
	)
}

func summarize(reports []model.AnalysisReport, index *model.PriceSeries) model.ScanSummary {
	sum := model.ScanSummary{TotalStocks: len(reports)}

	closes := index.Closes()
	latest := closes[len(closes)-1]
	sum.IndexLevel = round2(latest)
	if len(closes) >= 2 {
		sum.IndexChange = round2((latest/closes[len(closes)-2] - 1) * 100)
	}

	for _, r := range reports {
		if r.Hawk.Signal == model.SignalBuy {
			sum.HawkSignals++
		}
		if r.Quick.Signal == model.SignalBuy {
			sum.QuickSignals++
		}
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
