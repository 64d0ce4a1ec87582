package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			run_id           TEXT NOT NULL,
			symbol           TEXT NOT NULL,
			price            REAL,
			ma_short         REAL,
			ma_long          REAL,
			ema              REAL,
			boll_upper       REAL,
			boll_middle      REAL,
			boll_lower       REAL,
			rsi              REAL,
			macd_line        REAL,
			macd_signal      REAL,
			macd_histogram   REAL,
			top_support      REAL,
			top_resistance   REAL,
			support_count    INTEGER,
			resistance_count INTEGER,
			trend            TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON analysis_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS alert_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			run_id     TEXT NOT NULL,
			symbol     TEXT NOT NULL,
			event_type TEXT,
			price      REAL,
			value      REAL,
			note       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alert_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps the undefined marker to SQL NULL.
func nullable(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) RecordAnalysis(snap *AnalysisSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, run_id, symbol, price,
		 ma_short, ma_long, ema,
		 boll_upper, boll_middle, boll_lower,
		 rsi, macd_line, macd_signal, macd_histogram,
		 top_support, top_resistance, support_count, resistance_count, trend)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.RunID, snap.Symbol, snap.Price,
		nullable(snap.MAShort), nullable(snap.MALong), nullable(snap.EMA),
		nullable(snap.BollUpper), nullable(snap.BollMiddle), nullable(snap.BollLower),
		nullable(snap.RSI), nullable(snap.MACDLine), nullable(snap.MACDSignal), nullable(snap.MACDHistogram),
		nullable(snap.TopSupport), nullable(snap.TopResistance),
		snap.SupportCount, snap.ResistanceCount, snap.Trend,
	)
	return err
}

func (r *SQLiteRecorder) RecordAlert(evt *AlertEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO alert_events
		(timestamp, run_id, symbol, event_type, price, value, note)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.RunID, evt.Symbol, evt.EventType,
		evt.Price, nullable(evt.Value), evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
