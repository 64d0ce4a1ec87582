package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CoinScope/internal/collector"
	"CoinScope/internal/config"
	"CoinScope/internal/notifier"
	"CoinScope/internal/recorder"
	"CoinScope/internal/scheduler"
	"CoinScope/internal/watchlist"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CoinScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("MOCK_DATA") == "true" {
		fetcher = &collector.MockFetcher{Price: 50000}
	} else {
		fetcher = collector.NewCoinGeckoFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, paramsFromConfig(cfg))

	// Init watchlist manager
	wm, err := watchlist.NewManager(cfg.Watchlist.StateFile, cfg.Watchlist.Symbols)
	if err != nil {
		log.Fatalf("[FATAL] init watchlist: %v", err)
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, wm, tn, rec, scheduler.AlertThresholds{
		RSIOverbought:  cfg.Alerts.RSIOverbought,
		RSIOversold:    cfg.Alerts.RSIOversold,
		LevelProximity: cfg.Alerts.LevelProximity,
	})
	if err := sched.RegisterAll(cfg.Schedule.AnalysisCron, cfg.Schedule.AlertCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis task now")
		go sched.RunAnalysisNow()
	}

	log.Println("[INFO] CoinScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CoinScope stopped")
}

func paramsFromConfig(cfg *config.Config) collector.Params {
	return collector.Params{
		HistoryDays:      cfg.DataSource.HistoryDays,
		MAShortWindow:    cfg.Indicators.MAShortWindow,
		MALongWindow:     cfg.Indicators.MALongWindow,
		EMAWindow:        cfg.Indicators.EMAWindow,
		BollingerWindow:  cfg.Indicators.BollingerWindow,
		BollingerMult:    cfg.Indicators.BollingerMult,
		RSIWindow:        cfg.Indicators.RSIWindow,
		MACDFast:         cfg.Indicators.MACDFast,
		MACDSlow:         cfg.Indicators.MACDSlow,
		MACDSignal:       cfg.Indicators.MACDSignal,
		PivotLookback:    cfg.Indicators.PivotLookback,
		ClusterTolerance: cfg.Indicators.ClusterTolerance,
		MaxLevelsPerSide: cfg.Indicators.MaxLevelsPerSide,
	}
}
