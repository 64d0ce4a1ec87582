package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"CoinScope/internal/analysis"
	"CoinScope/internal/indicator"
	"CoinScope/internal/model"
)

// FormatAnalysisReport renders a full analysis into a Telegram message.
func FormatAnalysisReport(a *model.Analysis, s *model.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", coinName(a.Symbol), time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Price: %s\n", money(s.Price)))
	if a.Stats != nil {
		b.WriteString(fmt.Sprintf("24h: %+.2f%% (H %s / L %s)\n",
			a.Stats.Change24hPct, money(a.Stats.High24h), money(a.Stats.Low24h)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Trend: <b>%s</b> (MA %s)\n", s.Trend, trendDetail(a)))
	if indicator.IsDefined(analysis.LastDefined(a.RSI)) {
		b.WriteString(fmt.Sprintf("RSI: %.0f — %s\n", s.RSI, s.RSIZone))
	} else {
		b.WriteString("RSI: not enough data yet\n")
	}
	b.WriteString(fmt.Sprintf("MACD momentum: %s\n", s.Momentum))

	if mid := analysis.LastDefined(a.Bollinger.Middle); indicator.IsDefined(mid) {
		b.WriteString(fmt.Sprintf("Bollinger: %s / %s / %s\n",
			money(analysis.LastDefined(a.Bollinger.Lower)),
			money(mid),
			money(analysis.LastDefined(a.Bollinger.Upper))))
	}

	b.WriteString("\n")
	b.WriteString(FormatLevels(&a.Levels))

	if a.Stats != nil {
		b.WriteString("\n📈 <b>Market</b>\n")
		b.WriteString(fmt.Sprintf("Market cap: %s\n", money(a.Stats.MarketCap)))
		b.WriteString(fmt.Sprintf("24h volume: %s\n", money(a.Stats.Volume24h)))
		b.WriteString(fmt.Sprintf("ATH %s | ATL %s\n", money(a.Stats.AllTimeHigh), money(a.Stats.AllTimeLow)))
	}
	return b.String()
}

// FormatLevels renders a level set as threshold annotations.
func FormatLevels(set *model.LevelSet) string {
	var b strings.Builder
	b.WriteString("🧱 <b>Key Levels</b>\n")
	if len(set.Supports) == 0 && len(set.Resistances) == 0 {
		b.WriteString("no clear levels detected\n")
		return b.String()
	}
	for _, l := range set.Resistances {
		b.WriteString(fmt.Sprintf("Resistance: %s (%d touches)\n", money(l.Value), l.Strength))
	}
	for _, l := range set.Supports {
		b.WriteString(fmt.Sprintf("Support: %s (%d touches)\n", money(l.Value), l.Strength))
	}
	return b.String()
}

// FormatAlert renders a triggered alert.
func FormatAlert(symbol, eventType string, price, value float64) string {
	switch eventType {
	case "RSI_OVERBOUGHT":
		return fmt.Sprintf("⚠️ <b>%s overbought</b>\nRSI %.0f at %s — consider taking profit", coinName(symbol), value, money(price))
	case "RSI_OVERSOLD":
		return fmt.Sprintf("🎣 <b>%s oversold</b>\nRSI %.0f at %s — potential entry zone", coinName(symbol), value, money(price))
	case "NEAR_SUPPORT":
		return fmt.Sprintf("🟢 <b>%s near support</b>\nPrice %s approaching %s", coinName(symbol), money(price), money(value))
	case "NEAR_RESISTANCE":
		return fmt.Sprintf("🔴 <b>%s near resistance</b>\nPrice %s approaching %s", coinName(symbol), money(price), money(value))
	}
	return fmt.Sprintf("🔔 <b>%s</b>: %s at %s", coinName(symbol), eventType, money(price))
}

// FormatWatchlist renders the watched symbols.
func FormatWatchlist(symbols []string) string {
	if len(symbols) == 0 {
		return "Watchlist is empty. Add a coin with /watch &lt;coin&gt;"
	}
	var b strings.Builder
	b.WriteString("👀 <b>Watchlist</b>\n")
	for _, s := range symbols {
		b.WriteString(fmt.Sprintf("• %s\n", coinName(s)))
	}
	return b.String()
}

// FormatComparison renders total percent change per coin over the
// compared timeframe, best performer first.
func FormatComparison(changes map[string][]float64) string {
	if len(changes) == 0 {
		return "No comparable data."
	}
	type row struct {
		symbol string
		change float64
	}
	rows := make([]row, 0, len(changes))
	for symbol, series := range changes {
		if len(series) == 0 {
			continue
		}
		rows = append(rows, row{symbol, series[len(series)-1]})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].change > rows[j].change })

	var b strings.Builder
	b.WriteString("🏁 <b>Performance Comparison</b>\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s: %+.2f%%\n", coinName(r.symbol), r.change))
	}
	return b.String()
}

// trendDetail renders the moving averages behind the trend readout,
// e.g. "$64230 > $61050".
func trendDetail(a *model.Analysis) string {
	short := analysis.LastDefined(a.MAShort)
	long := analysis.LastDefined(a.MALong)
	if !indicator.IsDefined(short) || !indicator.IsDefined(long) {
		return "insufficient data"
	}
	op := "="
	switch {
	case short > long:
		op = ">"
	case short < long:
		op = "<"
	}
	return fmt.Sprintf("%s %s %s", money(short), op, money(long))
}

// coinName formats a coin id ("shiba-inu") into a readable name.
func coinName(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func money(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("$%.0f", v)
	}
	if v >= 1 {
		return fmt.Sprintf("$%.2f", v)
	}
	return fmt.Sprintf("$%.6f", v)
}
