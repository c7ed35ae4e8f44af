package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TadawulScout/internal/calculator"
	"TadawulScout/internal/model"
)

func buildSeries(closes, volumes []float64) *model.PriceSeries {
	bars := make([]model.Bar, len(closes))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range closes {
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   closes[i],
			High:   closes[i],
			Low:    closes[i],
			Close:  closes[i],
			Volume: volumes[i],
		}
	}
	return &model.PriceSeries{Symbol: "TEST", Bars: bars}
}

// breakoutSeries satisfies every Hawk and Quick condition: a long flat
// base, then fourteen -2/+3 zigzag bars ending on a high-volume breakout.
// The last 14 deltas put RSI at exactly 60; the final close 107 clears the
// prior ten highs (max 106), MA50, the upper Bollinger band (~106.64) and
// keeps MACD above both its signal line and zero.
func breakoutSeries() *model.PriceSeries {
	closes := make([]float64, 0, 220)
	volumes := make([]float64, 0, 220)
	for i := 0; i < 206; i++ {
		closes = append(closes, 100)
		volumes = append(volumes, 1000)
	}
	c := 100.0
	for i := 0; i < 7; i++ {
		c -= 2
		closes = append(closes, c)
		volumes = append(volumes, 1000)
		c += 3
		closes = append(closes, c)
		volumes = append(volumes, 1000)
	}
	volumes[len(volumes)-1] = 3000
	return buildSeries(closes, volumes)
}

// spikeSeries passes everything except the RSI band: a flat base with one
// huge final bar drives RSI to 100.
func spikeSeries() *model.PriceSeries {
	closes := make([]float64, 220)
	volumes := make([]float64, 220)
	for i := range closes {
		closes[i] = 100
		volumes[i] = 1000
	}
	closes[219] = 130
	volumes[219] = 5000
	return buildSeries(closes, volumes)
}

// declineSeries fails everything that is not externally supplied.
func declineSeries() *model.PriceSeries {
	closes := make([]float64, 220)
	volumes := make([]float64, 220)
	for i := range closes {
		closes[i] = 100
		volumes[i] = 1000
	}
	closes[219] = 70
	volumes[219] = 100
	return buildSeries(closes, volumes)
}

func risingIndex() *model.PriceSeries {
	closes := make([]float64, 10)
	volumes := make([]float64, 10)
	for i := range closes {
		closes[i] = 10000 + float64(i)*10
		volumes[i] = 1
	}
	return buildSeries(closes, volumes)
}

func fallingIndex() *model.PriceSeries {
	closes := make([]float64, 10)
	volumes := make([]float64, 10)
	for i := range closes {
		closes[i] = 11000 - float64(i)*10
		volumes[i] = 1
	}
	return buildSeries(closes, volumes)
}

func mustIndicators(t *testing.T, s *model.PriceSeries) *model.IndicatorSet {
	t.Helper()
	set, err := calculator.Calculate(s)
	require.NoError(t, err)
	return set
}

func conditionNames(conditions []model.Condition) []string {
	names := make([]string, len(conditions))
	for i, c := range conditions {
		names[i] = c.Name
	}
	return names
}

func TestHawk_AllConditionsMetIsBuy(t *testing.T) {
	s := breakoutSeries()
	res, err := EvaluateHawk(s, mustIndicators(t, s), risingIndex(), true)
	require.NoError(t, err)

	for _, c := range res.Conditions {
		assert.True(t, c.Met, "condition %s", c.Name)
	}
	assert.Equal(t, 9, res.ConditionsMet)
	assert.Equal(t, 9, res.TotalConditions)
	assert.Equal(t, 100.0, res.Percentage)
	assert.Equal(t, model.SignalBuy, res.Signal)
}

func TestQuick_AllConditionsMetIsBuy(t *testing.T) {
	s := breakoutSeries()
	res, err := EvaluateQuick(s, mustIndicators(t, s), risingIndex())
	require.NoError(t, err)

	for _, c := range res.Conditions {
		assert.True(t, c.Met, "condition %s", c.Name)
	}
	assert.Equal(t, 8, res.ConditionsMet)
	assert.Equal(t, model.SignalBuy, res.Signal)
}

func TestHawk_SpikePromising(t *testing.T) {
	// RSI is 100 on the spike series, outside the 50-70 band; the other
	// eight conditions hold, which lands in the promising tier.
	s := spikeSeries()
	res, err := EvaluateHawk(s, mustIndicators(t, s), risingIndex(), true)
	require.NoError(t, err)

	assert.Equal(t, 8, res.ConditionsMet)
	assert.Equal(t, model.SignalPromising, res.Signal)
	for _, c := range res.Conditions {
		if c.Name == "rsi" {
			assert.False(t, c.Met)
		} else {
			assert.True(t, c.Met, "condition %s", c.Name)
		}
	}
	assert.InDelta(t, 88.9, res.Percentage, 1e-9)
}

func TestQuick_SpikePromising(t *testing.T) {
	s := spikeSeries()
	res, err := EvaluateQuick(s, mustIndicators(t, s), risingIndex())
	require.NoError(t, err)

	assert.Equal(t, 7, res.ConditionsMet)
	assert.Equal(t, model.SignalPromising, res.Signal)
	assert.InDelta(t, 87.5, res.Percentage, 1e-9)
}

func TestHawk_DeclineIsWatch(t *testing.T) {
	s := declineSeries()
	res, err := EvaluateHawk(s, mustIndicators(t, s), fallingIndex(), true)
	require.NoError(t, err)

	// Only the externally supplied sector flag holds.
	assert.Equal(t, 1, res.ConditionsMet)
	assert.Equal(t, model.SignalWatch, res.Signal)
	assert.InDelta(t, 11.1, res.Percentage, 1e-9)
}

func TestHawk_SectorTrendIsExternal(t *testing.T) {
	s := breakoutSeries()
	set := mustIndicators(t, s)

	res, err := EvaluateHawk(s, set, risingIndex(), false)
	require.NoError(t, err)
	assert.Equal(t, 8, res.ConditionsMet)
	assert.Equal(t, model.SignalPromising, res.Signal)
}

func TestConditionOrderIsStable(t *testing.T) {
	s := breakoutSeries()
	set := mustIndicators(t, s)

	hawk, err := EvaluateHawk(s, set, risingIndex(), true)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"index-trend", "sector-trend", "obv", "volume", "breakout", "ma", "rsi", "macd", "bollinger"},
		conditionNames(hawk.Conditions))

	quick, err := EvaluateQuick(s, set, risingIndex())
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"index-trend", "volume", "breakout", "ma20", "ma50", "rsi", "macd", "bollinger"},
		conditionNames(quick.Conditions))
}

func TestBuyOnlyWhenEveryConditionMet(t *testing.T) {
	for _, s := range []*model.PriceSeries{breakoutSeries(), spikeSeries(), declineSeries()} {
		set := mustIndicators(t, s)
		for _, index := range []*model.PriceSeries{risingIndex(), fallingIndex()} {
			hawk, err := EvaluateHawk(s, set, index, true)
			require.NoError(t, err)
			assert.Equal(t, hawk.ConditionsMet == hawk.TotalConditions, hawk.Signal == model.SignalBuy)
			assert.GreaterOrEqual(t, hawk.ConditionsMet, 0)
			assert.LessOrEqual(t, hawk.ConditionsMet, hawk.TotalConditions)

			quick, err := EvaluateQuick(s, set, index)
			require.NoError(t, err)
			assert.Equal(t, quick.ConditionsMet == quick.TotalConditions, quick.Signal == model.SignalBuy)
		}
	}
}

func TestEvaluate_ShortIndexNotComputable(t *testing.T) {
	s := breakoutSeries()
	set := mustIndicators(t, s)
	short := buildSeries([]float64{1, 2, 3, 4}, []float64{1, 1, 1, 1})

	_, err := EvaluateHawk(s, set, short, true)
	require.ErrorIs(t, err, model.ErrInsufficientHistory)
	_, err = EvaluateQuick(s, set, short)
	require.ErrorIs(t, err, model.ErrInsufficientHistory)
}

func TestEvaluate_ShortSeriesNotComputable(t *testing.T) {
	closes := make([]float64, 100)
	volumes := make([]float64, 100)
	for i := range closes {
		closes[i] = 100
		volumes[i] = 1
	}
	short := buildSeries(closes, volumes)

	_, err := EvaluateHawk(short, &model.IndicatorSet{}, risingIndex(), true)
	require.ErrorIs(t, err, model.ErrInsufficientHistory)
	_, err = EvaluateQuick(short, &model.IndicatorSet{}, risingIndex())
	require.ErrorIs(t, err, model.ErrInsufficientHistory)
}

func TestEvaluate_Idempotent(t *testing.T) {
	s := breakoutSeries()
	set := mustIndicators(t, s)
	index := risingIndex()

	first, err := EvaluateHawk(s, set, index, true)
	require.NoError(t, err)
	second, err := EvaluateHawk(s, set, index, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
