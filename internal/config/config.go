package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL     string `yaml:"base_url"`
		APIKey      string `yaml:"api_key"`
		HistoryDays int    `yaml:"history_days"`
	} `yaml:"data_source"`
	Indicators struct {
		MAShortWindow    int     `yaml:"ma_short_window"`
		MALongWindow     int     `yaml:"ma_long_window"`
		EMAWindow        int     `yaml:"ema_window"`
		BollingerWindow  int     `yaml:"bollinger_window"`
		BollingerMult    float64 `yaml:"bollinger_mult"`
		RSIWindow        int     `yaml:"rsi_window"`
		MACDFast         int     `yaml:"macd_fast"`
		MACDSlow         int     `yaml:"macd_slow"`
		MACDSignal       int     `yaml:"macd_signal"`
		PivotLookback    int     `yaml:"pivot_lookback"`
		ClusterTolerance float64 `yaml:"cluster_tolerance"`
		MaxLevelsPerSide int     `yaml:"max_levels_per_side"`
	} `yaml:"indicators"`
	Alerts struct {
		RSIOverbought  float64 `yaml:"rsi_overbought"`
		RSIOversold    float64 `yaml:"rsi_oversold"`
		LevelProximity float64 `yaml:"level_proximity"`
	} `yaml:"alerts"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"`
		AlertCron    string `yaml:"alert_cron"`
	} `yaml:"schedule"`
	Watchlist struct {
		StateFile string   `yaml:"state_file"`
		Symbols   []string `yaml:"symbols"`
	} `yaml:"watchlist"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_ANALYSIS"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_SYMBOLS"); v != "" {
		cfg.Watchlist.Symbols = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Watchlist.Symbols = append(cfg.Watchlist.Symbols, s)
			}
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DataSource.HistoryDays == 0 {
		cfg.DataSource.HistoryDays = 180
	}

	ind := &cfg.Indicators
	if ind.MAShortWindow == 0 {
		ind.MAShortWindow = 20
	}
	if ind.MALongWindow == 0 {
		ind.MALongWindow = 50
	}
	if ind.EMAWindow == 0 {
		ind.EMAWindow = 20
	}
	if ind.BollingerWindow == 0 {
		ind.BollingerWindow = 20
	}
	if ind.BollingerMult == 0 {
		ind.BollingerMult = 2.0
	}
	if ind.RSIWindow == 0 {
		ind.RSIWindow = 14
	}
	if ind.MACDFast == 0 {
		ind.MACDFast = 12
	}
	if ind.MACDSlow == 0 {
		ind.MACDSlow = 26
	}
	if ind.MACDSignal == 0 {
		ind.MACDSignal = 9
	}
	if ind.PivotLookback == 0 {
		ind.PivotLookback = 5
	}
	if ind.ClusterTolerance == 0 {
		ind.ClusterTolerance = 0.005
	}
	if ind.MaxLevelsPerSide == 0 {
		ind.MaxLevelsPerSide = 3
	}

	if cfg.Alerts.RSIOverbought == 0 {
		cfg.Alerts.RSIOverbought = 70
	}
	if cfg.Alerts.RSIOversold == 0 {
		cfg.Alerts.RSIOversold = 30
	}
	if cfg.Alerts.LevelProximity == 0 {
		cfg.Alerts.LevelProximity = 0.01
	}

	if cfg.Schedule.AnalysisCron == "" {
		cfg.Schedule.AnalysisCron = "0 0 8 * * *"
	}
	if cfg.Schedule.AlertCron == "" {
		cfg.Schedule.AlertCron = "0 0 * * * *"
	}

	if len(cfg.Watchlist.Symbols) == 0 {
		cfg.Watchlist.Symbols = []string{"bitcoin"}
	}
	if cfg.Watchlist.StateFile == "" {
		cfg.Watchlist.StateFile = "data/watchlist.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/coinscope.db"
	}
}

// Validate checks that all required fields are set and every indicator
// parameter is usable.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.HistoryDays <= 0 {
		return fmt.Errorf("data_source.history_days must be positive")
	}

	ind := c.Indicators
	for name, w := range map[string]int{
		"ma_short_window":     ind.MAShortWindow,
		"ma_long_window":      ind.MALongWindow,
		"ema_window":          ind.EMAWindow,
		"bollinger_window":    ind.BollingerWindow,
		"rsi_window":          ind.RSIWindow,
		"macd_fast":           ind.MACDFast,
		"macd_slow":           ind.MACDSlow,
		"macd_signal":         ind.MACDSignal,
		"pivot_lookback":      ind.PivotLookback,
		"max_levels_per_side": ind.MaxLevelsPerSide,
	} {
		if w <= 0 {
			return fmt.Errorf("indicators.%s must be positive", name)
		}
	}
	if ind.MACDFast >= ind.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be smaller than macd_slow")
	}
	if ind.BollingerMult <= 0 {
		return fmt.Errorf("indicators.bollinger_mult must be positive")
	}
	if ind.ClusterTolerance <= 0 || ind.ClusterTolerance >= 1 {
		return fmt.Errorf("indicators.cluster_tolerance must be a fraction in (0, 1)")
	}
	if c.Alerts.RSIOversold >= c.Alerts.RSIOverbought {
		return fmt.Errorf("alerts.rsi_oversold must be below rsi_overbought")
	}
	return nil
}
