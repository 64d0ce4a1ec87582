package collector

import (
	"fmt"
	"log"
	"math"
	"time"

	"CoinScope/internal/indicator"
	"CoinScope/internal/model"
)

// Params carries the engine configuration for one analysis pass.
type Params struct {
	HistoryDays      int
	MAShortWindow    int
	MALongWindow     int
	EMAWindow        int
	BollingerWindow  int
	BollingerMult    float64
	RSIWindow        int
	MACDFast         int
	MACDSlow         int
	MACDSignal       int
	PivotLookback    int
	ClusterTolerance float64
	MaxLevelsPerSide int
}

// DefaultParams returns the documented defaults for every indicator.
func DefaultParams() Params {
	return Params{
		HistoryDays:      180,
		MAShortWindow:    20,
		MALongWindow:     50,
		EMAWindow:        20,
		BollingerWindow:  indicator.DefaultBollingerWindow,
		BollingerMult:    indicator.DefaultBollingerMult,
		RSIWindow:        indicator.DefaultRSIWindow,
		MACDFast:         indicator.DefaultMACDFast,
		MACDSlow:         indicator.DefaultMACDSlow,
		MACDSignal:       indicator.DefaultMACDSignal,
		PivotLookback:    indicator.DefaultPivotLookback,
		ClusterTolerance: indicator.DefaultClusterTolerance,
		MaxLevelsPerSide: indicator.DefaultMaxLevelsPerSide,
	}
}

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
	Params  Params
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, params Params) *Collector {
	return &Collector{Fetcher: fetcher, Params: params}
}

// Collect fetches one coin's bar series and runs the full indicator
// pass over it. Market stats are best-effort: their absence degrades
// the report, not the analysis.
func (c *Collector) Collect(symbol string) (*model.Analysis, error) {
	bars, err := c.Fetcher.FetchBars(symbol, c.Params.HistoryDays)
	if err != nil {
		return nil, fmt.Errorf("fetch bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", symbol)
	}

	a, err := Compute(symbol, bars, c.Params)
	if err != nil {
		return nil, err
	}

	if stats, err := c.Fetcher.FetchMarketStats(symbol); err != nil {
		log.Printf("[WARN] market stats for %s unavailable: %v", symbol, err)
	} else {
		a.Stats = stats
	}
	return a, nil
}

// Compute runs every configured indicator over a frozen bar series.
// The series is read-only for the duration of the pass; each indicator
// writes to its own freshly allocated output.
func Compute(symbol string, bars []model.OHLCV, p Params) (*model.Analysis, error) {
	closes := indicator.Closes(bars)
	a := &model.Analysis{
		Symbol:     symbol,
		Bars:       bars,
		ComputedAt: time.Now(),
	}

	var err error
	if a.MAShort, err = indicator.SMA(closes, p.MAShortWindow); err != nil {
		return nil, fmt.Errorf("sma(%d): %w", p.MAShortWindow, err)
	}
	if a.MALong, err = indicator.SMA(closes, p.MALongWindow); err != nil {
		return nil, fmt.Errorf("sma(%d): %w", p.MALongWindow, err)
	}
	if a.EMA, err = indicator.EMA(closes, p.EMAWindow); err != nil {
		return nil, fmt.Errorf("ema(%d): %w", p.EMAWindow, err)
	}
	if a.Bollinger, err = indicator.Bollinger(closes, p.BollingerWindow, p.BollingerMult); err != nil {
		return nil, fmt.Errorf("bollinger(%d, %.2f): %w", p.BollingerWindow, p.BollingerMult, err)
	}
	if a.RSI, err = indicator.RSI(closes, p.RSIWindow); err != nil {
		return nil, fmt.Errorf("rsi(%d): %w", p.RSIWindow, err)
	}
	if a.MACD, err = indicator.MACD(closes, p.MACDFast, p.MACDSlow, p.MACDSignal); err != nil {
		return nil, fmt.Errorf("macd(%d,%d,%d): %w", p.MACDFast, p.MACDSlow, p.MACDSignal, err)
	}
	if a.Levels, err = indicator.FindLevels(bars, p.PivotLookback, p.ClusterTolerance, p.MaxLevelsPerSide); err != nil {
		return nil, fmt.Errorf("levels(%d): %w", p.PivotLookback, err)
	}
	return a, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Stats *model.MarketStats
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ string, days int) ([]model.OHLCV, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchMarketStats(_ string) (*model.MarketStats, error) {
	if m.Stats != nil {
		return m.Stats, nil
	}
	return &model.MarketStats{CurrentPrice: m.Price}, nil
}

// GenerateMockBars produces a deterministic wavy series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Now().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + 0.02*math.Sin(float64(i)/5) + 0.001*float64(i%11))
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
