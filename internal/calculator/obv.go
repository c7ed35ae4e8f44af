package calculator

// onBalanceVolume accumulates signed volume bar over bar: +volume when the
// close rose, -volume when it fell, 0 when unchanged. The first bar has no
// prior delta and contributes 0. The running total is carried across the
// whole series, so OBV is defined at every bar.
func onBalanceVolume(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	var total float64
	for i := range closes {
		if i > 0 {
			switch {
			case closes[i] > closes[i-1]:
				total += volumes[i]
			case closes[i] < closes[i-1]:
				total -= volumes[i]
			}
		}
		out[i] = total
	}
	return out
}
