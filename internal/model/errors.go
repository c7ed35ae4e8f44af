package model

import "errors"

// Evaluation error taxonomy. Callers distinguish outcomes with errors.Is;
// none of these is ever fatal for a whole scan; the affected security is
// simply omitted from the results.
var (
	// ErrInsufficientHistory means a series is too short for the largest
	// indicator window (200 bars), or the reference index has fewer than
	// 5 bars.
	ErrInsufficientHistory = errors.New("insufficient price history")

	// ErrInvalidInput means malformed input: empty series, non-increasing
	// bar dates, negative fields or a non-positive current price.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable means the external data provider returned nothing
	// for a symbol.
	ErrDataUnavailable = errors.New("data unavailable")
)
