// Package strategy evaluates the Hawk and Quick trading heuristics and
// derives the suggested trade levels. Like the calculator it is pure:
// every function is deterministic in its inputs and touches no I/O.
package strategy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"TadawulScout/internal/calculator"
	"TadawulScout/internal/model"
)

// minIndexBars is the window of the index-trend condition. The reference
// index series must have at least this many closes.
const minIndexBars = 5

// result assembles a StrategyResult from the ordered condition list.
// buyAt/promisingAt are the strategy's signal thresholds on the met count.
func result(conditions []model.Condition, buyAt, promisingAt int) model.StrategyResult {
	met := 0
	for _, c := range conditions {
		if c.Met {
			met++
		}
	}
	total := len(conditions)
	signal := model.SignalWatch
	switch {
	case met >= buyAt:
		signal = model.SignalBuy
	case met >= promisingAt:
		signal = model.SignalPromising
	}
	return model.StrategyResult{
		Conditions:      conditions,
		ConditionsMet:   met,
		TotalConditions: total,
		Percentage:      math.Round(float64(met)/float64(total)*1000) / 10,
		Signal:          signal,
	}
}

// indexTrend reports whether the reference index's latest close is above
// the mean of its last five closes.
func indexTrend(index *model.PriceSeries) (bool, error) {
	if index == nil || index.Len() < minIndexBars {
		return false, fmt.Errorf("index trend: %w", model.ErrInsufficientHistory)
	}
	closes := index.Closes()
	latest := closes[len(closes)-1]
	return latest > stat.Mean(closes[len(closes)-minIndexBars:], nil), nil
}

// breakout reports whether the latest close exceeds the highest high of
// the ten bars preceding the latest bar (the latest bar is excluded).
func breakout(series *model.PriceSeries) bool {
	highs := series.Highs()
	n := len(highs)
	maxHigh := math.Inf(-1)
	for _, h := range highs[n-11 : n-1] {
		if h > maxHigh {
			maxHigh = h
		}
	}
	return series.Last().Close > maxHigh
}

// checkInputs validates the shared evaluator preconditions.
func checkInputs(series *model.PriceSeries, set *model.IndicatorSet) error {
	if series == nil || set == nil {
		return fmt.Errorf("evaluate strategy: %w", model.ErrInvalidInput)
	}
	if series.Len() < calculator.MinBars {
		return fmt.Errorf("evaluate strategy: %d bars, need %d: %w",
			series.Len(), calculator.MinBars, model.ErrInsufficientHistory)
	}
	return nil
}
