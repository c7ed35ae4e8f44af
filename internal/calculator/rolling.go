package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// rollingMean computes the trailing arithmetic mean over a fixed window.
// Positions before the window fills are NaN.
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Mean(values[i-window+1:i+1], nil)
	}
	return out
}

// rollingStd computes the trailing sample standard deviation (n-1 in the
// denominator) over a fixed window. Positions before the window fills
// are NaN.
func rollingStd(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.StdDev(values[i-window+1:i+1], nil)
	}
	return out
}

// ema computes the exponential moving average with smoothing factor
// alpha = 2/(span+1), seeded by the first value. Defined at every bar.
func ema(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
