package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// MarketStats holds exchange-level statistics for a coin. These come
// straight from the data source and are not derived from bars.
type MarketStats struct {
	CurrentPrice float64
	Change24hPct float64
	High24h      float64
	Low24h       float64
	AllTimeHigh  float64
	AllTimeLow   float64
	MarketCap    float64
	Volume24h    float64
}
