package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"CoinScope/internal/model"
)

// DefaultCoinGeckoURL is the public API endpoint.
const DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

// CoinGeckoFetcher implements Fetcher using the CoinGecko REST API.
// Symbols are CoinGecko coin ids ("bitcoin", "dogecoin", ...).
type CoinGeckoFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, apiKey, proxyURL string) *CoinGeckoFetcher {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

func (f *CoinGeckoFetcher) get(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("coingecko decode: %w", err)
	}
	return nil
}

// FetchBars combines the /ohlc endpoint (candles without volume) with
// /market_chart total_volumes, matching each candle to the latest
// volume sample at or before its timestamp.
func (f *CoinGeckoFetcher) FetchBars(symbol string, days int) ([]model.OHLCV, error) {
	id := url.PathEscape(strings.ToLower(symbol))

	// [[ts_ms, open, high, low, close], ...]
	var raw [][]float64
	endpoint := fmt.Sprintf("%s/coins/%s/ohlc?vs_currency=usd&days=%d", f.BaseURL, id, days)
	if err := f.get(endpoint, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("coingecko: no ohlc data for %s", symbol)
	}

	var chart struct {
		TotalVolumes [][]float64 `json:"total_volumes"`
	}
	endpoint = fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily", f.BaseURL, id, days)
	if err := f.get(endpoint, &chart); err != nil {
		return nil, err
	}

	bars := make([]model.OHLCV, 0, len(raw))
	for _, row := range raw {
		if len(row) < 5 {
			continue
		}
		bars = append(bars, model.OHLCV{
			Time:  time.UnixMilli(int64(row[0])),
			Open:  row[1],
			High:  row[2],
			Low:   row[3],
			Close: row[4],
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	fillVolumes(bars, chart.TotalVolumes)

	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// fillVolumes walks two time-sorted lists, assigning each bar the most
// recent volume sample not after it.
func fillVolumes(bars []model.OHLCV, volumes [][]float64) {
	sort.Slice(volumes, func(i, j int) bool { return volumes[i][0] < volumes[j][0] })
	v := 0
	for i := range bars {
		ts := float64(bars[i].Time.UnixMilli())
		for v+1 < len(volumes) && volumes[v+1][0] <= ts {
			v++
		}
		if v < len(volumes) && len(volumes[v]) >= 2 && volumes[v][0] <= ts {
			bars[i].Volume = volumes[v][1]
		}
	}
}

// coinMarket is the relevant slice of the /coins/markets response.
type coinMarket struct {
	CurrentPrice float64 `json:"current_price"`
	Change24hPct float64 `json:"price_change_percentage_24h"`
	High24h      float64 `json:"high_24h"`
	Low24h       float64 `json:"low_24h"`
	ATH          float64 `json:"ath"`
	ATL          float64 `json:"atl"`
	MarketCap    float64 `json:"market_cap"`
	TotalVolume  float64 `json:"total_volume"`
}

func (f *CoinGeckoFetcher) FetchMarketStats(symbol string) (*model.MarketStats, error) {
	id := strings.ToLower(symbol)
	endpoint := fmt.Sprintf("%s/coins/markets?vs_currency=usd&ids=%s", f.BaseURL, url.QueryEscape(id))

	var markets []coinMarket
	if err := f.get(endpoint, &markets); err != nil {
		return nil, err
	}
	if len(markets) == 0 {
		return nil, fmt.Errorf("coingecko: unknown coin %q", symbol)
	}
	m := markets[0]
	return &model.MarketStats{
		CurrentPrice: m.CurrentPrice,
		Change24hPct: m.Change24hPct,
		High24h:      m.High24h,
		Low24h:       m.Low24h,
		AllTimeHigh:  m.ATH,
		AllTimeLow:   m.ATL,
		MarketCap:    m.MarketCap,
		Volume24h:    m.TotalVolume,
	}, nil
}
