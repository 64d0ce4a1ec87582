package analysis

import "CoinScope/internal/model"

// ComparePerformance normalizes each coin's close series to percent
// change from its first bar, for comparing coins over one timeframe.
// Coins with no usable baseline (empty series or zero first close) are
// skipped.
func ComparePerformance(bySymbol map[string][]model.OHLCV) map[string][]float64 {
	out := make(map[string][]float64, len(bySymbol))
	for symbol, bars := range bySymbol {
		if len(bars) == 0 || bars[0].Close == 0 {
			continue
		}
		base := bars[0].Close
		changes := make([]float64, len(bars))
		for i, b := range bars {
			changes[i] = (b.Close - base) / base * 100
		}
		out[symbol] = changes
	}
	return out
}
