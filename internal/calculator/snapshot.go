package calculator

import (
	"math"

	"TadawulScout/internal/model"
)

// Snapshot extracts the latest-bar indicator values, rounded for display.
// The caller must pass the set computed from the same series.
func Snapshot(series *model.PriceSeries, set *model.IndicatorSet) model.IndicatorSnapshot {
	last := series.Len() - 1
	return model.IndicatorSnapshot{
		RSI:        round2(set.RSI[last]),
		MACD:       round2(set.MACD[last]),
		SignalLine: round2(set.Signal[last]),
		MA20:       round2(set.MA20[last]),
		MA50:       round2(set.MA50[last]),
		MA100:      round2(set.MA100[last]),
		MA200:      round2(set.MA200[last]),
		UpperBand:  round2(set.BBUpper[last]),
		MiddleBand: round2(set.BBMiddle[last]),
		LowerBand:  round2(set.BBLower[last]),
		OBV:        int64(set.OBV[last]),
		Volume:     int64(series.Last().Volume),
		VolumeMA20: int64(set.VolumeMA20[last]),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
