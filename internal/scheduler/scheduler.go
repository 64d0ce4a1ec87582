package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"CoinScope/internal/analysis"
	"CoinScope/internal/collector"
	"CoinScope/internal/indicator"
	"CoinScope/internal/model"
	"CoinScope/internal/notifier"
	"CoinScope/internal/recorder"
	"CoinScope/internal/watchlist"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// compareDays is the timeframe for /compare, matching the 30-day
// comparison report.
const compareDays = 30

// AlertThresholds configures the alert task.
type AlertThresholds struct {
	RSIOverbought  float64
	RSIOversold    float64
	LevelProximity float64 // fraction of price
}

// Scheduler manages all cron tasks and user commands.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Watchlist  *watchlist.Manager
	Notifier   *notifier.TelegramNotifier
	Recorder   recorder.Recorder
	Thresholds AlertThresholds
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, wm *watchlist.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder, thresholds AlertThresholds) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Watchlist:  wm,
		Notifier:   tn,
		Recorder:   rec,
		Thresholds: thresholds,
		Ctx:        ctx,
	}
}

// RegisterAll registers the periodic analysis and alert tasks.
func (s *Scheduler) RegisterAll(analysisCron, alertCron string) error {
	if _, err := s.Cron.AddFunc(analysisCron, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	if _, err := s.Cron.AddFunc(alertCron, s.alertTask); err != nil {
		return fmt.Errorf("register alert task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAnalysisNow executes the analysis task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunAnalysisNow() {
	s.analysisTask()
}

// analysisTask analyzes every watched coin, reports it and records a
// snapshot. One run id ties the pass's snapshots together.
func (s *Scheduler) analysisTask() {
	log.Println("[INFO] running analysis task")
	runID := uuid.NewString()

	for _, symbol := range s.Watchlist.Symbols() {
		a, err := s.Collector.Collect(symbol)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", symbol, err)
			s.trySend(fmt.Sprintf("❌ Analysis of %s failed: %v", symbol, err))
			continue
		}
		sum := analysis.Summarize(a)
		s.trySend(notifier.FormatAnalysisReport(a, sum))

		if err := s.Recorder.RecordAnalysis(buildSnapshot(runID, a, sum)); err != nil {
			log.Printf("[ERROR] record analysis for %s: %v", symbol, err)
		}
	}
}

// alertTask checks every watched coin against the alert thresholds.
func (s *Scheduler) alertTask() {
	log.Println("[INFO] running alert check")
	runID := uuid.NewString()

	for _, symbol := range s.Watchlist.Symbols() {
		a, err := s.Collector.Collect(symbol)
		if err != nil {
			log.Printf("[ERROR] alert check %s: %v", symbol, err)
			continue
		}
		sum := analysis.Summarize(a)
		for _, evt := range s.checkAlerts(sum) {
			evt.RunID = runID
			s.trySend(notifier.FormatAlert(evt.Symbol, evt.EventType, evt.Price, evt.Value))
			if err := s.Recorder.RecordAlert(evt); err != nil {
				log.Printf("[ERROR] record alert for %s: %v", symbol, err)
			}
		}
	}
}

// checkAlerts derives alert events from a summary using the configured
// thresholds. An RSI still inside its lookback prefix triggers nothing.
func (s *Scheduler) checkAlerts(sum *model.Summary) []*recorder.AlertEvent {
	var events []*recorder.AlertEvent

	if indicator.IsDefined(sum.RSI) {
		switch {
		case sum.RSI > s.Thresholds.RSIOverbought:
			events = append(events, &recorder.AlertEvent{
				Symbol: sum.Symbol, EventType: "RSI_OVERBOUGHT", Price: sum.Price, Value: sum.RSI,
			})
		case sum.RSI < s.Thresholds.RSIOversold:
			events = append(events, &recorder.AlertEvent{
				Symbol: sum.Symbol, EventType: "RSI_OVERSOLD", Price: sum.Price, Value: sum.RSI,
			})
		}
	}

	band := s.Thresholds.LevelProximity * sum.Price
	if l := sum.NearestSupport; l != nil && sum.Price-l.Value <= band {
		events = append(events, &recorder.AlertEvent{
			Symbol: sum.Symbol, EventType: "NEAR_SUPPORT", Price: sum.Price, Value: l.Value,
			Note: fmt.Sprintf("strength %d", l.Strength),
		})
	}
	if l := sum.NearestResistance; l != nil && l.Value-sum.Price <= band {
		events = append(events, &recorder.AlertEvent{
			Symbol: sum.Symbol, EventType: "NEAR_RESISTANCE", Price: sum.Price, Value: l.Value,
			Note: fmt.Sprintf("strength %d", l.Strength),
		})
	}
	return events
}

// HandleCommand serves Telegram commands. The returned string is sent
// back as the reply; empty means no reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/help", "/start":
		return helpText
	case "/list":
		return notifier.FormatWatchlist(s.Watchlist.Symbols())
	case "/watch":
		if len(fields) < 2 {
			return "Usage: /watch <coin-id>"
		}
		if s.Watchlist.Add(fields[1]) {
			return fmt.Sprintf("Added %s to the watchlist.", strings.ToLower(fields[1]))
		}
		return fmt.Sprintf("%s is already watched.", strings.ToLower(fields[1]))
	case "/unwatch":
		if len(fields) < 2 {
			return "Usage: /unwatch <coin-id>"
		}
		if s.Watchlist.Remove(fields[1]) {
			return fmt.Sprintf("Removed %s from the watchlist.", strings.ToLower(fields[1]))
		}
		return fmt.Sprintf("%s is not on the watchlist.", strings.ToLower(fields[1]))
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze <coin-id>"
		}
		return s.analyzeOne(fields[1])
	case "/levels":
		if len(fields) < 2 {
			return "Usage: /levels <coin-id>"
		}
		return s.levelsOne(fields[1])
	case "/compare":
		if len(fields) < 3 {
			return "Usage: /compare <coin-id> <coin-id> [...]"
		}
		return s.compare(fields[1:])
	}
	return "Unknown command. Try /help"
}

func (s *Scheduler) analyzeOne(symbol string) string {
	a, err := s.Collector.Collect(strings.ToLower(symbol))
	if err != nil {
		return fmt.Sprintf("❌ Analysis of %s failed: %v", symbol, err)
	}
	return notifier.FormatAnalysisReport(a, analysis.Summarize(a))
}

func (s *Scheduler) levelsOne(symbol string) string {
	a, err := s.Collector.Collect(strings.ToLower(symbol))
	if err != nil {
		return fmt.Sprintf("❌ Level detection for %s failed: %v", symbol, err)
	}
	return notifier.FormatLevels(&a.Levels)
}

func (s *Scheduler) compare(symbols []string) string {
	bySymbol := make(map[string][]model.OHLCV, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToLower(symbol)
		bars, err := s.Collector.Fetcher.FetchBars(symbol, compareDays)
		if err != nil {
			log.Printf("[WARN] compare fetch %s: %v", symbol, err)
			continue
		}
		bySymbol[symbol] = bars
	}
	return notifier.FormatComparison(analysis.ComparePerformance(bySymbol))
}

// trySend delivers a message with retries; failures are logged, never fatal.
func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

// buildSnapshot flattens an analysis into its latest values for storage.
func buildSnapshot(runID string, a *model.Analysis, sum *model.Summary) *recorder.AnalysisSnapshot {
	snap := &recorder.AnalysisSnapshot{
		RunID:           runID,
		Symbol:          a.Symbol,
		Price:           sum.Price,
		MAShort:         analysis.LastDefined(a.MAShort),
		MALong:          analysis.LastDefined(a.MALong),
		EMA:             analysis.LastDefined(a.EMA),
		BollUpper:       analysis.LastDefined(a.Bollinger.Upper),
		BollMiddle:      analysis.LastDefined(a.Bollinger.Middle),
		BollLower:       analysis.LastDefined(a.Bollinger.Lower),
		RSI:             analysis.LastDefined(a.RSI),
		MACDLine:        analysis.LastDefined(a.MACD.Line),
		MACDSignal:      analysis.LastDefined(a.MACD.Signal),
		MACDHistogram:   analysis.LastDefined(a.MACD.Histogram),
		TopSupport:      indicator.Undefined(),
		TopResistance:   indicator.Undefined(),
		SupportCount:    len(a.Levels.Supports),
		ResistanceCount: len(a.Levels.Resistances),
		Trend:           string(sum.Trend),
	}
	if sum.NearestSupport != nil {
		snap.TopSupport = sum.NearestSupport.Value
	}
	if sum.NearestResistance != nil {
		snap.TopResistance = sum.NearestResistance.Value
	}
	return snap
}

const helpText = `🤖 <b>CoinScope commands</b>
/analyze &lt;coin-id&gt; — full technical analysis
/levels &lt;coin-id&gt; — support/resistance levels
/compare &lt;coin&gt; &lt;coin&gt; [...] — 30-day performance
/watch &lt;coin-id&gt; — add a coin to the watchlist
/unwatch &lt;coin-id&gt; — remove a coin
/list — show the watchlist
/help — this message`
