package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TadawulScout/internal/model"
)

func TestAnalyze_ComposesFullReport(t *testing.T) {
	sec := Security{Company: "Saudi Aramco", Symbol: "2222", Sector: "Energy"}
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	report, err := Analyze(sec, breakoutSeries(), risingIndex(), true, now)
	require.NoError(t, err)

	assert.Equal(t, "Saudi Aramco", report.Company)
	assert.Equal(t, "2222", report.Symbol)
	assert.Equal(t, "Energy", report.Sector)
	assert.Equal(t, now, report.Timestamp)

	assert.Equal(t, model.SignalBuy, report.Hawk.Signal)
	assert.Equal(t, model.SignalBuy, report.Quick.Signal)

	// Plan is a linear function of the final close (107).
	assert.Equal(t, 107.00, report.EntryExit.CurrentPrice)
	assert.Equal(t, 106.47, report.EntryExit.EntryPrice)
	assert.Equal(t, 101.65, report.EntryExit.StopLoss)

	// Snapshot carries the final-bar indicator values.
	assert.InDelta(t, 60.0, report.Indicators.RSI, 1e-9)
	assert.Equal(t, int64(3000), report.Indicators.Volume)
	assert.Equal(t, int64(2000), report.Indicators.OBV)
}

func TestAnalyze_ShortSeriesProducesNoPartialReport(t *testing.T) {
	sec := Security{Company: "Test", Symbol: "0000", Sector: "Test"}
	closes := make([]float64, 50)
	volumes := make([]float64, 50)
	for i := range closes {
		closes[i] = 100
		volumes[i] = 1
	}

	report, err := Analyze(sec, buildSeries(closes, volumes), risingIndex(), true, time.Now())
	require.ErrorIs(t, err, model.ErrInsufficientHistory)
	assert.Nil(t, report)
}

func TestAnalyze_ShortIndexProducesNoPartialReport(t *testing.T) {
	sec := Security{Company: "Test", Symbol: "0000", Sector: "Test"}
	short := buildSeries([]float64{1, 2, 3}, []float64{1, 1, 1})

	report, err := Analyze(sec, breakoutSeries(), short, true, time.Now())
	require.ErrorIs(t, err, model.ErrInsufficientHistory)
	assert.Nil(t, report)
}
