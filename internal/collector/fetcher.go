package collector

import "CoinScope/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchBars returns up to days daily bars in chronological order.
	FetchBars(symbol string, days int) ([]model.OHLCV, error)
	// FetchMarketStats returns exchange-level statistics for a coin.
	FetchMarketStats(symbol string) (*model.MarketStats, error)
	Name() string
}
