package model

import "time"

// Bar represents a single daily candlestick for one security.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the chronologically ordered bar history of one security.
// It is built once per analysis and never mutated afterwards.
type PriceSeries struct {
	Symbol string
	Bars   []Bar
}

// Len returns the number of bars in the series.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar. The series must be non-empty.
func (s *PriceSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }

// Closes returns the close column of the series.
func (s *PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high column of the series.
func (s *PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

// Volumes returns the volume column of the series.
func (s *PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}

// Validate checks the series invariants: non-empty, strictly increasing
// dates and non-negative prices/volumes.
func (s *PriceSeries) Validate() error {
	if len(s.Bars) == 0 {
		return ErrInvalidInput
	}
	for i, b := range s.Bars {
		if b.Open < 0 || b.High < 0 || b.Low < 0 || b.Close < 0 || b.Volume < 0 {
			return ErrInvalidInput
		}
		if i > 0 && !s.Bars[i-1].Date.Before(b.Date) {
			return ErrInvalidInput
		}
	}
	return nil
}
