package scanner

import (
	"sort"

	"TadawulScout/internal/model"
)

// TopByHawk ranks reports by Hawk percentage descending and returns the
// first n. The sort is stable: ties keep scan (registry) order.
func TopByHawk(reports []model.AnalysisReport, n int) []model.AnalysisReport {
	return top(reports, n, func(r model.AnalysisReport) float64 { return r.Hawk.Percentage })
}

// TopByQuick ranks reports by Quick percentage descending and returns the
// first n. The sort is stable: ties keep scan (registry) order.
func TopByQuick(reports []model.AnalysisReport, n int) []model.AnalysisReport {
	return top(reports, n, func(r model.AnalysisReport) float64 { return r.Quick.Percentage })
}

func top(reports []model.AnalysisReport, n int, key func(model.AnalysisReport) float64) []model.AnalysisReport {
	ranked := make([]model.AnalysisReport, len(reports))
	copy(ranked, reports)
	sort.SliceStable(ranked, func(i, j int) bool { return key(ranked[i]) > key(ranked[j]) })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
