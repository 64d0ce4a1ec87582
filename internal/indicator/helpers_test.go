package indicator

import (
	"math"
	"time"

	"CoinScope/internal/model"
)

// flatBars builds n identical bars; tests poke individual bars to plant
// pivots.
func flatBars(n int, high, low, close float64) []model.OHLCV {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time:   base.AddDate(0, 0, i),
			Open:   close,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: 1000,
		}
	}
	return bars
}

func countUndefined(s []float64) int {
	n := 0
	for _, v := range s {
		if !IsDefined(v) {
			n++
		}
	}
	return n
}

func almostEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// seriesEq compares two series treating undefined positions as equal.
func seriesEq(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch {
		case !IsDefined(a[i]) && !IsDefined(b[i]):
		case IsDefined(a[i]) && IsDefined(b[i]) && a[i] == b[i]:
		default:
			return false
		}
	}
	return true
}
