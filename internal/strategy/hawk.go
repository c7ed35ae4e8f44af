package strategy

import (
	"gonum.org/v1/gonum/stat"

	"TadawulScout/internal/model"
)

// Hawk signal thresholds: all nine conditions for a buy, seven for
// promising.
const (
	hawkBuyAt       = 9
	hawkPromisingAt = 7
)

// EvaluateHawk runs the strict nine-condition Hawk strategy against the
// security's series and indicator set, the shared reference index series
// and the externally supplied sector-momentum flag.
//
// Condition order and names are stable identifiers consumed by report
// serialization; do not reorder or rename.
func EvaluateHawk(series *model.PriceSeries, set *model.IndicatorSet, index *model.PriceSeries, sectorTrend bool) (model.StrategyResult, error) {
	if err := checkInputs(series, set); err != nil {
		return model.StrategyResult{}, err
	}
	indexUp, err := indexTrend(index)
	if err != nil {
		return model.StrategyResult{}, err
	}

	last := series.Len() - 1
	latest := series.Last()
	obv := set.OBV

	conditions := []model.Condition{
		{Name: "index-trend", Met: indexUp},
		{Name: "sector-trend", Met: sectorTrend},
		{Name: "obv", Met: obv[last] > stat.Mean(obv[len(obv)-20:], nil)},
		{Name: "volume", Met: latest.Volume > set.VolumeMA20[last]*2.0},
		{Name: "breakout", Met: breakout(series)},
		{Name: "ma", Met: latest.Close > set.MA50[last]},
		{Name: "rsi", Met: 50 < set.RSI[last] && set.RSI[last] < 70},
		{Name: "macd", Met: set.MACD[last] > set.Signal[last] && set.MACD[last] > 0},
		{Name: "bollinger", Met: latest.Close > set.BBUpper[last]},
	}

	return result(conditions, hawkBuyAt, hawkPromisingAt), nil
}
