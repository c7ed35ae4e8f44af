package strategy

import "TadawulScout/internal/model"

// Quick signal thresholds: all eight conditions for a buy, six for
// promising.
const (
	quickBuyAt       = 8
	quickPromisingAt = 6
)

// EvaluateQuick runs the looser eight-condition Quick strategy. Compared
// to Hawk it drops the sector and OBV conditions, halves the volume
// multiple to 1.5x, widens the RSI band to 45-75, checks MA20 as well as
// MA50, drops the MACD zero-line requirement and only asks the close to
// clear the middle Bollinger band.
//
// Condition order and names are stable identifiers consumed by report
// serialization; do not reorder or rename.
func EvaluateQuick(series *model.PriceSeries, set *model.IndicatorSet, index *model.PriceSeries) (model.StrategyResult, error) {
	if err := checkInputs(series, set); err != nil {
		return model.StrategyResult{}, err
	}
	indexUp, err := indexTrend(index)
	if err != nil {
		return model.StrategyResult{}, err
	}

	last := series.Len() - 1
	latest := series.Last()

	conditions := []model.Condition{
		{Name: "index-trend", Met: indexUp},
		{Name: "volume", Met: latest.Volume > set.VolumeMA20[last]*1.5},
		{Name: "breakout", Met: breakout(series)},
		{Name: "ma20", Met: latest.Close > set.MA20[last]},
		{Name: "ma50", Met: latest.Close > set.MA50[last]},
		{Name: "rsi", Met: 45 < set.RSI[last] && set.RSI[last] < 75},
		{Name: "macd", Met: set.MACD[last] > set.Signal[last]},
		{Name: "bollinger", Met: latest.Close > set.BBMiddle[last]},
	}

	return result(conditions, quickBuyAt, quickPromisingAt), nil
}
