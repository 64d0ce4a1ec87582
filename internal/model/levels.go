package model

// LevelKind classifies a price level relative to the current price.
type LevelKind string

const (
	LevelSupport    LevelKind = "SUPPORT"
	LevelResistance LevelKind = "RESISTANCE"
)

// Level is a detected support or resistance price. Strength is the
// number of swing points merged into the level's cluster;
// LastTouchIndex is the most recent bar index that contributed to it.
type Level struct {
	Kind           LevelKind
	Value          float64
	Strength       int
	LastTouchIndex int
}

// LevelSet holds the detected levels for one bar series snapshot.
// Supports sit below the current close, resistances above. Both sides
// are sorted by descending strength, ties broken by recency.
type LevelSet struct {
	Supports    []Level
	Resistances []Level
}
