package model

import "time"

// ScanSummary aggregates one full-market scan.
type ScanSummary struct {
	TotalStocks  int     `json:"total_stocks"`
	IndexLevel   float64 `json:"index_level"`
	IndexChange  float64 `json:"index_change"` // day-over-day percent
	HawkSignals  int     `json:"hawk_signals"` // buy-signal count
	QuickSignals int     `json:"quick_signals"`
}

// ScanResult is everything one scan produced. It is the unit the cache
// stores and the recorder persists.
type ScanResult struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Summary   ScanSummary      `json:"summary"`
	Reports   []AnalysisReport `json:"reports"`
}
