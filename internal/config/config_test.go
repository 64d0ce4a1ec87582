package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Indicators.BollingerWindow != 20 || cfg.Indicators.BollingerMult != 2.0 {
		t.Errorf("bollinger defaults: %+v", cfg.Indicators)
	}
	if cfg.Indicators.RSIWindow != 14 {
		t.Errorf("rsi default: %d", cfg.Indicators.RSIWindow)
	}
	if cfg.Indicators.MACDFast != 12 || cfg.Indicators.MACDSlow != 26 || cfg.Indicators.MACDSignal != 9 {
		t.Errorf("macd defaults: %+v", cfg.Indicators)
	}
	if cfg.Indicators.PivotLookback != 5 || cfg.Indicators.ClusterTolerance != 0.005 || cfg.Indicators.MaxLevelsPerSide != 3 {
		t.Errorf("level defaults: %+v", cfg.Indicators)
	}
	if len(cfg.Watchlist.Symbols) != 1 || cfg.Watchlist.Symbols[0] != "bitcoin" {
		t.Errorf("watchlist default: %v", cfg.Watchlist.Symbols)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
indicators:
  rsi_window: 7
  pivot_lookback: 3
watchlist:
  symbols: [dogecoin, pepe]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Indicators.RSIWindow != 7 {
		t.Errorf("rsi_window: got %d, want 7", cfg.Indicators.RSIWindow)
	}
	if cfg.Indicators.PivotLookback != 3 {
		t.Errorf("pivot_lookback: got %d, want 3", cfg.Indicators.PivotLookback)
	}
	if len(cfg.Watchlist.Symbols) != 2 {
		t.Errorf("symbols: %v", cfg.Watchlist.Symbols)
	}
	// Untouched fields keep defaults.
	if cfg.Indicators.MACDSlow != 26 {
		t.Errorf("macd_slow default lost: %d", cfg.Indicators.MACDSlow)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok-from-env")
	t.Setenv("WATCH_SYMBOLS", "bitcoin, ethereum")

	cfg, err := Load(writeConfig(t, `
telegram:
  bot_token: tok-from-file
  chat_id: "42"
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Telegram.BotToken != "tok-from-env" {
		t.Errorf("env override lost: %s", cfg.Telegram.BotToken)
	}
	if len(cfg.Watchlist.Symbols) != 2 || cfg.Watchlist.Symbols[1] != "ethereum" {
		t.Errorf("WATCH_SYMBOLS parsing: %v", cfg.Watchlist.Symbols)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		cfg.Telegram.BotToken = "tok"
		cfg.Telegram.ChatID = "42"
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := valid()
	cfg.Telegram.BotToken = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing bot token accepted")
	}

	cfg = valid()
	cfg.Indicators.RSIWindow = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative rsi window accepted")
	}

	cfg = valid()
	cfg.Indicators.MACDFast = 30
	if err := cfg.Validate(); err == nil {
		t.Error("fast >= slow accepted")
	}

	cfg = valid()
	cfg.Indicators.ClusterTolerance = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("tolerance >= 1 accepted")
	}
}
