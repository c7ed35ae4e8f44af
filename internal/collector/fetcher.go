package collector

import (
	"time"

	"TadawulScout/internal/model"
)

// Fetcher defines the interface for retrieving historical daily bars from
// an external data provider.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.Bar, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Bars maps symbol to a canned series. Symbols without an entry fall
	// back to Default; a nil Default reports data unavailable.
	Bars    map[string][]model.Bar
	Default []model.Bar
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	if m.Default != nil {
		return m.Default, nil
	}
	return nil, model.ErrDataUnavailable
}

// GenerateBars builds a deterministic gently rising series, one bar per
// day ending today. Useful as mock data.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Now().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
