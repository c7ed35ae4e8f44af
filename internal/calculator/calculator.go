// Package calculator derives technical indicators from a price series.
//
// Everything here is a pure function of its inputs: trailing rolling or
// exponential windows over the close, high and volume columns, never
// looking at future bars. Columns are positional: one value per bar,
// NaN where the window is not yet filled.
package calculator

import (
	"fmt"

	"TadawulScout/internal/model"
)

// MinBars is the largest indicator window. A series shorter than this
// cannot have every indicator defined at its last bar, so Calculate
// refuses it outright rather than producing a partial result.
const MinBars = 200

// Calculate computes the full indicator set for the series.
// It returns model.ErrInsufficientHistory when the series has fewer than
// MinBars bars and model.ErrInvalidInput when the series is malformed.
func Calculate(series *model.PriceSeries) (*model.IndicatorSet, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("calculate indicators: %w", model.ErrInvalidInput)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("calculate indicators: %w", err)
	}
	if series.Len() < MinBars {
		return nil, fmt.Errorf("calculate indicators: %d bars, need %d: %w",
			series.Len(), MinBars, model.ErrInsufficientHistory)
	}

	closes := series.Closes()
	volumes := series.Volumes()

	set := &model.IndicatorSet{
		MA20:       rollingMean(closes, 20),
		MA50:       rollingMean(closes, 50),
		MA100:      rollingMean(closes, 100),
		MA200:      rollingMean(closes, 200),
		RSI:        relativeStrengthIndex(closes, 14),
		OBV:        onBalanceVolume(closes, volumes),
		VolumeMA20: rollingMean(volumes, 20),
	}

	ema12 := ema(closes, 12)
	ema26 := ema(closes, 26)
	macd := make([]float64, len(closes))
	for i := range macd {
		macd[i] = ema12[i] - ema26[i]
	}
	set.MACD = macd
	set.Signal = ema(macd, 9)

	middle := set.MA20
	std := rollingStd(closes, 20)
	upper := make([]float64, len(closes))
	lower := make([]float64, len(closes))
	for i := range closes {
		upper[i] = middle[i] + 2*std[i]
		lower[i] = middle[i] - 2*std[i]
	}
	set.BBMiddle = middle
	set.BBUpper = upper
	set.BBLower = lower

	return set, nil
}
