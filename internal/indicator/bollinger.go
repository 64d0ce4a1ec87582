package indicator

import "CoinScope/internal/model"

// Default Bollinger parameters.
const (
	DefaultBollingerWindow = 20
	DefaultBollingerMult   = 2.0
)

// Bollinger computes the Bollinger bands: the middle band is the SMA,
// the upper and lower bands sit mult standard deviations away. All
// three series share the SMA's undefined prefix, and at every defined
// position lower <= middle <= upper.
func Bollinger(values []float64, window int, mult float64) (model.BandSeries, error) {
	middle, err := SMA(values, window)
	if err != nil {
		return model.BandSeries{}, err
	}
	stddev, err := RollingStdDev(values, window)
	if err != nil {
		return model.BandSeries{}, err
	}

	upper := make([]float64, len(values))
	lower := make([]float64, len(values))
	for i := range values {
		upper[i] = middle[i] + mult*stddev[i]
		lower[i] = middle[i] - mult*stddev[i]
	}
	return model.BandSeries{Upper: upper, Middle: middle, Lower: lower}, nil
}
