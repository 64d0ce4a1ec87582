package recorder

// AnalysisSnapshot holds the latest values of one analysis pass, ready
// for persistence. Undefined indicator values arrive as NaN and are
// stored as NULL.
type AnalysisSnapshot struct {
	RunID           string
	Symbol          string
	Price           float64
	MAShort         float64
	MALong          float64
	EMA             float64
	BollUpper       float64
	BollMiddle      float64
	BollLower       float64
	RSI             float64
	MACDLine        float64
	MACDSignal      float64
	MACDHistogram   float64
	TopSupport      float64
	TopResistance   float64
	SupportCount    int
	ResistanceCount int
	Trend           string
}

// AlertEvent records a triggered alert.
type AlertEvent struct {
	RunID     string
	Symbol    string
	EventType string // "RSI_OVERBOUGHT", "RSI_OVERSOLD", "NEAR_SUPPORT", "NEAR_RESISTANCE"
	Price     float64
	Value     float64
	Note      string
}

// Recorder persists historical analysis data.
type Recorder interface {
	RecordAnalysis(snap *AnalysisSnapshot) error
	RecordAlert(evt *AlertEvent) error
	Close() error
}
