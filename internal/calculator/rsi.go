package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// relativeStrengthIndex computes RSI over simple rolling means of gains
// and losses (not Wilder smoothing). The first close has no delta, so the
// value is defined from index `period` onward and NaN before that.
//
// When the average loss over the window is exactly zero the relative
// strength is unbounded and RSI is defined as 100.
func relativeStrengthIndex(closes []float64, period int) []float64 {
	n := len(closes)
	out := make([]float64, n)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}
	for i := 0; i < n; i++ {
		if i < period {
			out[i] = math.NaN()
			continue
		}
		avgGain := stat.Mean(gains[i-period+1:i+1], nil)
		avgLoss := stat.Mean(losses[i-period+1:i+1], nil)
		if avgLoss == 0 {
			out[i] = 100.0
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}
