// Package analysis distills computed indicator series into the
// headline readout shown in reports and alert checks.
package analysis

import (
	"CoinScope/internal/indicator"
	"CoinScope/internal/model"
)

// RSI thresholds for the overbought/oversold zones.
const (
	DefaultRSIOverbought = 70.0
	DefaultRSIOversold   = 30.0
)

// LastDefined returns the most recent defined value of a series, or
// the undefined marker when the series has none.
func LastDefined(series []float64) float64 {
	for i := len(series) - 1; i >= 0; i-- {
		if indicator.IsDefined(series[i]) {
			return series[i]
		}
	}
	return indicator.Undefined()
}

// Summarize reads the latest values of a full Analysis: trend from the
// moving-average alignment, RSI zone, MACD momentum and the nearest
// level on each side. Indicators still inside their lookback prefix
// fall back to the neutral reading.
func Summarize(a *model.Analysis) *model.Summary {
	s := &model.Summary{
		Symbol:   a.Symbol,
		Price:    a.CurrentClose(),
		Trend:    model.TrendSideways,
		RSI:      indicator.Undefined(),
		RSIZone:  model.RSINeutral,
		Momentum: model.MomentumFlat,
	}

	maShort := LastDefined(a.MAShort)
	maLong := LastDefined(a.MALong)
	if indicator.IsDefined(maShort) && indicator.IsDefined(maLong) {
		switch {
		case maShort > maLong:
			s.Trend = model.TrendBullish
		case maShort < maLong:
			s.Trend = model.TrendBearish
		}
	}

	if rsi := LastDefined(a.RSI); indicator.IsDefined(rsi) {
		s.RSI = rsi
		switch {
		case rsi > DefaultRSIOverbought:
			s.RSIZone = model.RSIOverbought
		case rsi < DefaultRSIOversold:
			s.RSIZone = model.RSIOversold
		}
	}

	if hist := LastDefined(a.MACD.Histogram); indicator.IsDefined(hist) {
		switch {
		case hist > 0:
			s.Momentum = model.MomentumUp
		case hist < 0:
			s.Momentum = model.MomentumDown
		}
	}

	s.NearestSupport = nearestBelow(a.Levels.Supports, s.Price)
	s.NearestResistance = nearestAbove(a.Levels.Resistances, s.Price)
	return s
}

// nearestBelow picks the support closest under the price.
func nearestBelow(levels []model.Level, price float64) *model.Level {
	var best *model.Level
	for i := range levels {
		l := &levels[i]
		if l.Value >= price {
			continue
		}
		if best == nil || l.Value > best.Value {
			best = l
		}
	}
	return best
}

// nearestAbove picks the resistance closest over the price.
func nearestAbove(levels []model.Level, price float64) *model.Level {
	var best *model.Level
	for i := range levels {
		l := &levels[i]
		if l.Value <= price {
			continue
		}
		if best == nil || l.Value < best.Value {
			best = l
		}
	}
	return best
}
