package notifier

import (
	"math"
	"strings"
	"testing"
	"time"

	"CoinScope/internal/model"
)

func reportFixture() (*model.Analysis, *model.Summary) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, 3)
	for i := range bars {
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Close: 64000}
	}
	a := &model.Analysis{
		Symbol:  "bitcoin",
		Bars:    bars,
		MAShort: []float64{math.NaN(), math.NaN(), 64230},
		MALong:  []float64{math.NaN(), math.NaN(), 61050},
		RSI:     []float64{math.NaN(), math.NaN(), 62},
		Levels: model.LevelSet{
			Supports: []model.Level{
				{Kind: model.LevelSupport, Value: 61500, Strength: 2, LastTouchIndex: 1},
			},
			Resistances: []model.Level{
				{Kind: model.LevelResistance, Value: 66000, Strength: 1, LastTouchIndex: 2},
			},
		},
	}
	a.MACD.Histogram = []float64{math.NaN(), math.NaN(), 12.5}
	s := &model.Summary{
		Symbol:   "bitcoin",
		Price:    64000,
		Trend:    model.TrendBullish,
		RSI:      62,
		RSIZone:  model.RSINeutral,
		Momentum: model.MomentumUp,
	}
	return a, s
}

func TestFormatAnalysisReport(t *testing.T) {
	a, s := reportFixture()
	got := FormatAnalysisReport(a, s)

	for _, want := range []string{
		"Bitcoin",
		"Price: $64000",
		"Trend: <b>BULLISH</b> (MA $64230 > $61050)",
		"RSI: 62 — NEUTRAL",
		"MACD momentum: UP",
		"Support: $61500 (2 touches)",
		"Resistance: $66000 (1 touches)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestFormatAnalysisReport_UndefinedRSI(t *testing.T) {
	a, s := reportFixture()
	a.RSI = []float64{math.NaN(), math.NaN(), math.NaN()}
	s.RSI = math.NaN()

	got := FormatAnalysisReport(a, s)
	if !strings.Contains(got, "RSI: not enough data yet") {
		t.Errorf("expected the not-enough-data line:\n%s", got)
	}
}

func TestTrendDetail(t *testing.T) {
	a, _ := reportFixture()
	if got := trendDetail(a); got != "$64230 > $61050" {
		t.Errorf("trend detail: got %q", got)
	}

	a.MALong = []float64{math.NaN(), math.NaN(), math.NaN()}
	if got := trendDetail(a); got != "insufficient data" {
		t.Errorf("undefined long MA: got %q", got)
	}
}

func TestFormatLevels(t *testing.T) {
	empty := FormatLevels(&model.LevelSet{})
	if !strings.Contains(empty, "no clear levels detected") {
		t.Errorf("empty set: %q", empty)
	}

	set := &model.LevelSet{
		Supports: []model.Level{
			{Kind: model.LevelSupport, Value: 90, Strength: 3, LastTouchIndex: 7},
		},
	}
	got := FormatLevels(set)
	if !strings.Contains(got, "Support: $90.00 (3 touches)") {
		t.Errorf("non-empty set: %q", got)
	}
}

func TestFormatAlert_EventTypes(t *testing.T) {
	tests := []struct {
		eventType string
		want      string
	}{
		{"RSI_OVERBOUGHT", "overbought"},
		{"RSI_OVERSOLD", "oversold"},
		{"NEAR_SUPPORT", "near support"},
		{"NEAR_RESISTANCE", "near resistance"},
		{"SOMETHING_ELSE", "SOMETHING_ELSE"},
	}
	for _, tt := range tests {
		got := FormatAlert("bitcoin", tt.eventType, 64000, 75)
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s: %q does not mention %q", tt.eventType, got, tt.want)
		}
		if !strings.Contains(got, "Bitcoin") {
			t.Errorf("%s: %q does not name the coin", tt.eventType, got)
		}
	}
}

func TestFormatWatchlist(t *testing.T) {
	if got := FormatWatchlist(nil); !strings.Contains(got, "empty") {
		t.Errorf("empty watchlist: %q", got)
	}
	got := FormatWatchlist([]string{"bitcoin", "shiba-inu"})
	if !strings.Contains(got, "Bitcoin") || !strings.Contains(got, "Shiba Inu") {
		t.Errorf("watchlist names: %q", got)
	}
}

func TestFormatComparison_BestFirst(t *testing.T) {
	got := FormatComparison(map[string][]float64{
		"bitcoin":  {0, 2, 5.5},
		"ethereum": {0, -1, 12.25},
		"dogecoin": {0, 3, -8},
	})
	eth := strings.Index(got, "Ethereum: +12.25%")
	btc := strings.Index(got, "Bitcoin: +5.50%")
	doge := strings.Index(got, "Dogecoin: -8.00%")
	if eth == -1 || btc == -1 || doge == -1 {
		t.Fatalf("missing rows:\n%s", got)
	}
	if !(eth < btc && btc < doge) {
		t.Errorf("rows not ordered best first:\n%s", got)
	}

	if got := FormatComparison(nil); !strings.Contains(got, "No comparable data") {
		t.Errorf("empty comparison: %q", got)
	}
}
