package strategy

import (
	"time"

	"TadawulScout/internal/calculator"
	"TadawulScout/internal/model"
)

// Security is the static identity of one listed company.
type Security struct {
	Company string
	Symbol  string
	Sector  string
}

// Analyze runs the full evaluation pipeline for one security: indicators,
// both strategies, the trade plan and the indicator snapshot, composed
// into a single report. Any failing step fails the whole report; partial
// reports are never produced.
//
// The index series is shared read-only across all securities of one scan;
// Analyze never mutates it.
func Analyze(sec Security, series *model.PriceSeries, index *model.PriceSeries, sectorTrend bool, now time.Time) (*model.AnalysisReport, error) {
	set, err := calculator.Calculate(series)
	if err != nil {
		return nil, err
	}

	hawk, err := EvaluateHawk(series, set, index, sectorTrend)
	if err != nil {
		return nil, err
	}
	quick, err := EvaluateQuick(series, set, index)
	if err != nil {
		return nil, err
	}
	plan, err := BuildPlan(series.Last().Close)
	if err != nil {
		return nil, err
	}

	return &model.AnalysisReport{
		Company:    sec.Company,
		Symbol:     sec.Symbol,
		Sector:     sec.Sector,
		Hawk:       hawk,
		Quick:      quick,
		EntryExit:  plan,
		Indicators: calculator.Snapshot(series, set),
		Timestamp:  now,
	}, nil
}
