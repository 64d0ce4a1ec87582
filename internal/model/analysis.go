package model

import "time"

// BandSeries holds the three Bollinger band series, each aligned 1:1
// with the input bars.
type BandSeries struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// MACDSeries holds the MACD line, its signal line and the histogram,
// each aligned 1:1 with the input bars.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// Analysis is the full result of one indicator pass over a bar series.
// Every series has exactly len(Bars) entries; positions without enough
// lookback carry the undefined marker (NaN).
type Analysis struct {
	Symbol     string
	Bars       []OHLCV
	Stats      *MarketStats
	MAShort    []float64
	MALong     []float64
	EMA        []float64
	Bollinger  BandSeries
	RSI        []float64
	MACD       MACDSeries
	Levels     LevelSet
	ComputedAt time.Time
}

// CurrentClose returns the close of the most recent bar.
func (a *Analysis) CurrentClose() float64 {
	if len(a.Bars) == 0 {
		return 0
	}
	return a.Bars[len(a.Bars)-1].Close
}
