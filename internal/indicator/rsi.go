package indicator

// DefaultRSIWindow is the conventional RSI period.
const DefaultRSIWindow = 14

// RSI computes the Wilder-smoothed relative strength index. The delta
// at index 0 consumes one bar, so the first window positions are
// undefined and the seed lands at index window. Fewer than window+1
// points yield an all-undefined series; an empty input is an error.
//
// Edge policy: zero average loss with positive average gain saturates
// at 100; a flat stretch where both averages are zero reads as a
// neutral 50.
func RSI(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	out := undefinedSeries(len(values))
	if len(values) < window+1 {
		return out, nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = rsiValue(avgGain, avgLoss)

	for i := window + 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
