package analysis

import (
	"math"
	"testing"
	"time"

	"CoinScope/internal/model"
)

func analysisFixture(closes []float64) *model.Analysis {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c}
	}
	return &model.Analysis{Symbol: "bitcoin", Bars: bars}
}

func TestSummarize_TrendFromMAAlignment(t *testing.T) {
	tests := []struct {
		name            string
		maShort, maLong float64
		want            model.Trend
	}{
		{"bullish", 105, 100, model.TrendBullish},
		{"bearish", 95, 100, model.TrendBearish},
		{"flat", 100, 100, model.TrendSideways},
	}
	for _, tt := range tests {
		a := analysisFixture([]float64{100, 101, 102})
		a.MAShort = []float64{math.NaN(), math.NaN(), tt.maShort}
		a.MALong = []float64{math.NaN(), math.NaN(), tt.maLong}
		s := Summarize(a)
		if s.Trend != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, s.Trend, tt.want)
		}
	}
}

func TestSummarize_RSIZones(t *testing.T) {
	tests := []struct {
		rsi  float64
		want model.RSIZone
	}{
		{85, model.RSIOverbought},
		{25, model.RSIOversold},
		{50, model.RSINeutral},
		{70, model.RSINeutral},
		{30, model.RSINeutral},
	}
	for _, tt := range tests {
		a := analysisFixture([]float64{100, 101})
		a.RSI = []float64{math.NaN(), tt.rsi}
		s := Summarize(a)
		if s.RSIZone != tt.want {
			t.Errorf("rsi %.0f: got %s, want %s", tt.rsi, s.RSIZone, tt.want)
		}
		if s.RSI != tt.rsi {
			t.Errorf("rsi %.0f: summary carries %v", tt.rsi, s.RSI)
		}
	}
}

func TestSummarize_UndefinedIndicatorsStayNeutral(t *testing.T) {
	a := analysisFixture([]float64{100})
	a.MAShort = []float64{math.NaN()}
	a.MALong = []float64{math.NaN()}
	a.RSI = []float64{math.NaN()}
	a.MACD.Histogram = []float64{math.NaN()}

	s := Summarize(a)
	if s.Trend != model.TrendSideways || s.RSIZone != model.RSINeutral || s.Momentum != model.MomentumFlat {
		t.Errorf("expected neutral summary for undefined indicators, got %+v", s)
	}
}

func TestSummarize_MACDMomentum(t *testing.T) {
	a := analysisFixture([]float64{100, 101})
	a.MACD.Histogram = []float64{math.NaN(), 0.7}
	if s := Summarize(a); s.Momentum != model.MomentumUp {
		t.Errorf("positive histogram: got %s", s.Momentum)
	}
	a.MACD.Histogram = []float64{math.NaN(), -0.7}
	if s := Summarize(a); s.Momentum != model.MomentumDown {
		t.Errorf("negative histogram: got %s", s.Momentum)
	}
}

func TestSummarize_NearestLevels(t *testing.T) {
	a := analysisFixture([]float64{100, 100, 100})
	a.Levels = model.LevelSet{
		Supports: []model.Level{
			{Kind: model.LevelSupport, Value: 80, Strength: 3},
			{Kind: model.LevelSupport, Value: 95, Strength: 1},
		},
		Resistances: []model.Level{
			{Kind: model.LevelResistance, Value: 120, Strength: 2},
			{Kind: model.LevelResistance, Value: 104, Strength: 1},
		},
	}
	s := Summarize(a)
	if s.NearestSupport == nil || s.NearestSupport.Value != 95 {
		t.Errorf("nearest support: got %+v, want 95", s.NearestSupport)
	}
	if s.NearestResistance == nil || s.NearestResistance.Value != 104 {
		t.Errorf("nearest resistance: got %+v, want 104", s.NearestResistance)
	}
}
