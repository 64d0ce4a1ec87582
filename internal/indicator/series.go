// Package indicator computes technical indicators over an OHLCV bar
// series. Every function is a pure transform: inputs are never mutated,
// outputs are freshly allocated, and repeated calls over the same input
// yield identical results.
//
// Result series are positionally aligned with their input: index i of a
// result always corresponds to bar i. Positions without enough lookback
// carry NaN rather than shortening the slice; use IsDefined to check.
package indicator

import (
	"errors"
	"math"

	"CoinScope/internal/model"
)

var (
	// ErrInvalidWindow reports a non-positive window or lookback parameter.
	ErrInvalidWindow = errors.New("window must be positive")

	// ErrEmptySeries reports an input with zero points where at least one
	// is required.
	ErrEmptySeries = errors.New("empty input series")
)

// Undefined returns the marker carried by positions lacking lookback.
func Undefined() float64 { return math.NaN() }

// IsDefined reports whether v carries a computed value. NaN never
// compares equal to itself, so callers must use this instead of ==.
func IsDefined(v float64) bool { return !math.IsNaN(v) }

// Closes extracts the close prices from a bar series.
func Closes(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func undefinedSeries(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
