package indicator

// EMA computes the exponential moving average with smoothing factor
// 2/(window+1). The seed is the simple mean of the first window defined
// values; positions before the seed stay undefined.
//
// Leading undefined input values are skipped, so the operator applies
// to the defined suffix of any series (the MACD signal line feeds a
// NaN-prefixed series through here).
func EMA(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	out := undefinedSeries(len(values))

	start := 0
	for start < len(values) && !IsDefined(values[start]) {
		start++
	}
	if len(values)-start < window {
		return out, nil
	}

	sum := 0.0
	for i := start; i < start+window; i++ {
		sum += values[i]
	}
	seed := start + window - 1
	out[seed] = sum / float64(window)

	alpha := 2.0 / (float64(window) + 1.0)
	for i := seed + 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
