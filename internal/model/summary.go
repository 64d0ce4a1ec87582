package model

// Trend describes the moving-average alignment.
type Trend string

const (
	TrendBullish  Trend = "BULLISH"
	TrendBearish  Trend = "BEARISH"
	TrendSideways Trend = "SIDEWAYS"
)

// RSIZone buckets the latest RSI reading.
type RSIZone string

const (
	RSIOverbought RSIZone = "OVERBOUGHT"
	RSIOversold   RSIZone = "OVERSOLD"
	RSINeutral    RSIZone = "NEUTRAL"
)

// Momentum is the sign of the latest MACD histogram value.
type Momentum string

const (
	MomentumUp   Momentum = "UP"
	MomentumDown Momentum = "DOWN"
	MomentumFlat Momentum = "FLAT"
)

// Summary is the headline readout distilled from a full Analysis.
type Summary struct {
	Symbol            string
	Price             float64
	Trend             Trend
	RSI               float64
	RSIZone           RSIZone
	Momentum          Momentum
	NearestSupport    *Level
	NearestResistance *Level
}
