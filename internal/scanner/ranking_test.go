package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TadawulScout/internal/model"
)

func reportWith(symbol string, hawkPct, quickPct float64) model.AnalysisReport {
	return model.AnalysisReport{
		Symbol: symbol,
		Hawk:   model.StrategyResult{Percentage: hawkPct},
		Quick:  model.StrategyResult{Percentage: quickPct},
	}
}

func symbols(reports []model.AnalysisReport) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.Symbol
	}
	return out
}

func TestTopByHawk_RanksDescendingWithStableTies(t *testing.T) {
	reports := []model.AnalysisReport{
		reportWith("A", 77.8, 50),
		reportWith("B", 88.9, 50),
		reportWith("C", 77.8, 50),
		reportWith("D", 100.0, 50),
		reportWith("E", 77.8, 50),
	}

	top := TopByHawk(reports, 4)
	// Ties (A, C, E at 77.8) keep scan order.
	assert.Equal(t, []string{"D", "B", "A", "C"}, symbols(top))
	// Input order untouched.
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, symbols(reports))
}

func TestTopByQuick_TruncatesToN(t *testing.T) {
	reports := []model.AnalysisReport{
		reportWith("A", 0, 25),
		reportWith("B", 0, 75),
	}

	top := TopByQuick(reports, 20)
	assert.Len(t, top, 2)
	assert.Equal(t, []string{"B", "A"}, symbols(top))

	assert.Empty(t, TopByQuick(nil, 20))
}
