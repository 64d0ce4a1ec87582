package indicator

import "CoinScope/internal/model"

// Default MACD parameters.
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACD computes the MACD line (fast EMA minus slow EMA), the signal
// line (an EMA over the defined suffix of the MACD line) and the
// histogram (line minus signal). A position is defined only where both
// operands of its subtraction are; every series is recomputed from the
// full input, never from partial EMA state.
func MACD(values []float64, fast, slow, signal int) (model.MACDSeries, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return model.MACDSeries{}, ErrInvalidWindow
	}

	fastEMA, err := EMA(values, fast)
	if err != nil {
		return model.MACDSeries{}, err
	}
	slowEMA, err := EMA(values, slow)
	if err != nil {
		return model.MACDSeries{}, err
	}

	// NaN propagates through the subtraction, keeping the undefined
	// prefix of the longer EMA.
	line := make([]float64, len(values))
	for i := range values {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine, err := EMA(line, signal)
	if err != nil {
		return model.MACDSeries{}, err
	}

	histogram := make([]float64, len(values))
	for i := range values {
		histogram[i] = line[i] - signalLine[i]
	}
	return model.MACDSeries{Line: line, Signal: signalLine, Histogram: histogram}, nil
}
