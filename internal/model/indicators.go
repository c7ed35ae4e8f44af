package model

// IndicatorSet holds the derived indicator columns of a PriceSeries.
// Every column is positional: one value per bar, math.NaN() where the
// indicator's window is not yet filled. Downstream consumers only read
// the last position, which the 200-bar precondition guarantees is defined.
type IndicatorSet struct {
	MA20  []float64
	MA50  []float64
	MA100 []float64
	MA200 []float64

	RSI []float64 // RSI(14), simple rolling gain/loss averages

	MACD   []float64 // EMA12(close) - EMA26(close)
	Signal []float64 // EMA9 of the MACD line

	BBMiddle []float64 // 20-period MA
	BBUpper  []float64 // middle + 2 * sample std-dev
	BBLower  []float64 // middle - 2 * sample std-dev

	OBV        []float64 // cumulative signed volume
	VolumeMA20 []float64
}

// IndicatorSnapshot carries the latest-bar indicator values for display,
// rounded the way reports serialize them.
type IndicatorSnapshot struct {
	RSI        float64 `json:"rsi"`
	MACD       float64 `json:"macd"`
	SignalLine float64 `json:"signal_line"`
	MA20       float64 `json:"ma20"`
	MA50       float64 `json:"ma50"`
	MA100      float64 `json:"ma100"`
	MA200      float64 `json:"ma200"`
	UpperBand  float64 `json:"upper_band"`
	MiddleBand float64 `json:"middle_band"`
	LowerBand  float64 `json:"lower_band"`
	OBV        int64   `json:"obv"`
	Volume     int64   `json:"volume"`
	VolumeMA20 int64   `json:"volume_ma20"`
}
