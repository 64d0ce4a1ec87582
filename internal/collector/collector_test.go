package collector

import (
	"testing"

	"CoinScope/internal/indicator"
)

func TestCollect_SeriesAlignedWithBars(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 50000}, DefaultParams())
	a, err := col.Collect("bitcoin")
	if err != nil {
		t.Fatal(err)
	}

	n := len(a.Bars)
	if n != col.Params.HistoryDays {
		t.Fatalf("expected %d bars, got %d", col.Params.HistoryDays, n)
	}
	series := map[string][]float64{
		"ma_short":    a.MAShort,
		"ma_long":     a.MALong,
		"ema":         a.EMA,
		"boll_upper":  a.Bollinger.Upper,
		"boll_middle": a.Bollinger.Middle,
		"boll_lower":  a.Bollinger.Lower,
		"rsi":         a.RSI,
		"macd_line":   a.MACD.Line,
		"macd_signal": a.MACD.Signal,
		"macd_hist":   a.MACD.Histogram,
	}
	for name, s := range series {
		if len(s) != n {
			t.Errorf("%s: len %d, not aligned with %d bars", name, len(s), n)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	bars := GenerateMockBars(3000, 120)
	p := DefaultParams()

	a, err := Compute("ethereum", bars, p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute("ethereum", bars, p)
	if err != nil {
		t.Fatal(err)
	}
	pairs := [][2][]float64{
		{a.MAShort, b.MAShort},
		{a.MALong, b.MALong},
		{a.EMA, b.EMA},
		{a.RSI, b.RSI},
		{a.MACD.Histogram, b.MACD.Histogram},
		{a.Bollinger.Upper, b.Bollinger.Upper},
	}
	for i, pair := range pairs {
		x, y := pair[0], pair[1]
		for j := range x {
			defX, defY := indicator.IsDefined(x[j]), indicator.IsDefined(y[j])
			if defX != defY || (defX && x[j] != y[j]) {
				t.Fatalf("series %d differs at %d: %v vs %v", i, j, x[j], y[j])
			}
		}
	}
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	bars := GenerateMockBars(100, 60)
	before := make([]float64, len(bars))
	for i, b := range bars {
		before[i] = b.Close
	}
	if _, err := Compute("bitcoin", bars, DefaultParams()); err != nil {
		t.Fatal(err)
	}
	for i, b := range bars {
		if b.Close != before[i] {
			t.Fatalf("input bar %d mutated", i)
		}
	}
}

func TestCompute_InvalidParamsFailFast(t *testing.T) {
	p := DefaultParams()
	p.RSIWindow = 0
	if _, err := Compute("bitcoin", GenerateMockBars(100, 60), p); err == nil {
		t.Fatal("expected parameter validation error")
	}
}
