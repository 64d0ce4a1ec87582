package indicator

import "math"

// SMA computes the simple moving average of values over the given
// window. The first window-1 positions are undefined. A window longer
// than the input is a data condition, not an error: it yields an
// all-undefined series.
func SMA(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	out := undefinedSeries(len(values))
	if window > len(values) {
		return out, nil
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out, nil
}

// RollingStdDev computes the population standard deviation over a
// trailing window (dividing by window, consistent with the SMA mean).
// Undefined positions follow the same rule as SMA.
func RollingStdDev(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	out := undefinedSeries(len(values))
	for i := window - 1; i < len(values); i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += values[j]
		}
		mean /= float64(window)

		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := values[j] - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(window))
	}
	return out, nil
}
