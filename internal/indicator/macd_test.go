package indicator

import (
	"errors"
	"testing"
)

func TestMACD_HistogramIdentity(t *testing.T) {
	m, err := MACD(wavyValues(80), DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	if err != nil {
		t.Fatal(err)
	}
	for i := range m.Histogram {
		lineOK := IsDefined(m.Line[i])
		sigOK := IsDefined(m.Signal[i])
		if lineOK && sigOK {
			if m.Histogram[i] != m.Line[i]-m.Signal[i] {
				t.Errorf("index %d: histogram %v != line-signal %v", i, m.Histogram[i], m.Line[i]-m.Signal[i])
			}
		} else if IsDefined(m.Histogram[i]) {
			t.Errorf("index %d: histogram defined while an operand is not", i)
		}
	}
}

func TestMACD_UndefinedAlignment(t *testing.T) {
	m, err := MACD(wavyValues(80), 12, 26, 9)
	if err != nil {
		t.Fatal(err)
	}
	// Line picks up the slow EMA's prefix: defined from index 25.
	if got := countUndefined(m.Line); got != 25 {
		t.Errorf("line: %d undefined, want 25", got)
	}
	// Signal seeds 9 defined line values later: defined from index 33.
	if got := countUndefined(m.Signal); got != 33 {
		t.Errorf("signal: %d undefined, want 33", got)
	}
	if got := countUndefined(m.Histogram); got != 33 {
		t.Errorf("histogram: %d undefined, want 33", got)
	}
}

func TestMACD_ConstantSeriesIsZero(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = 1234.5
	}
	m, err := MACD(values, 12, 26, 9)
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if IsDefined(m.Histogram[i]) && !almostEq(m.Histogram[i], 0) {
			t.Errorf("index %d: histogram %v, want 0", i, m.Histogram[i])
		}
	}
}

func TestMACD_InvalidWindows(t *testing.T) {
	values := wavyValues(40)
	for _, p := range [][3]int{{0, 26, 9}, {12, 0, 9}, {12, 26, -1}} {
		if _, err := MACD(values, p[0], p[1], p[2]); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("params %v: expected ErrInvalidWindow, got %v", p, err)
		}
	}
}

func TestMACD_Idempotent(t *testing.T) {
	values := wavyValues(80)
	a, err := MACD(values, 12, 26, 9)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MACD(values, 12, 26, 9)
	if err != nil {
		t.Fatal(err)
	}
	if !seriesEq(a.Line, b.Line) || !seriesEq(a.Signal, b.Signal) || !seriesEq(a.Histogram, b.Histogram) {
		t.Error("repeated MACD over the same input differs")
	}
}
