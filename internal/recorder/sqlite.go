package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"InsiderScope/internal/analysis"
	"InsiderScope/internal/model"
)

// SQLiteRecorder persists analysis runs to a SQLite database.
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

	// WAL mode for better concurrent read performance (dashboards read while
	// the analyzer writes).
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
		`CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			timestamp  INTEGER NOT NULL,
			ticker     TEXT,
			num_actors INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS group_summaries (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			grouping  TEXT,
			group_key TEXT,
			horizon   INTEGER,
			mean      REAL,
			median    REAL,
			count     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_run ON group_summaries(run_id)`,

		`CREATE TABLE IF NOT EXISTS significance_results (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			horizon        INTEGER,
			primary_mean   REAL,
			primary_count  INTEGER,
			other_mean     REAL,
			other_count    INTEGER,
			t_statistic    REAL,
			p_value        REAL,
			significant    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_significance_run ON significance_results(run_id)`,

		`CREATE TABLE IF NOT EXISTS lag_correlations (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       TEXT NOT NULL,
			lag_days     INTEGER,
			correlation  REAL,
			pair_count   INTEGER,
			insufficient INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lag_run ON lag_correlations(run_id)`,

		`CREATE TABLE IF NOT EXISTS car_points (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			category    TEXT,
			event_count INTEGER,
			offset_day  INTEGER,
			mean_cum    REAL,
			std_error   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_car_run ON car_points(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun writes the full result set in one transaction.
func (r *SQLiteRecorder) RecordRun(result *analysis.Result) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runID := uuid.NewString()
	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO runs (id, timestamp, ticker, num_actors) VALUES (?,?,?,?)`,
		runID, time.Now().Unix(), result.Ticker, len(result.Classification)); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	groups := []struct {
		grouping  string
		summaries []model.GroupSummary
	}{
		{"category", result.CategorySummaries},
		{"actor_class", result.ClassSummaries},
		{"quarter", result.QuarterlySummaries},
	}
	for _, g := range groups {
		for _, s := range g.summaries {
			if _, err := tx.Exec(`INSERT INTO group_summaries
				(run_id, grouping, group_key, horizon, mean, median, count)
				VALUES (?,?,?,?,?,?,?)`,
				runID, g.grouping, s.GroupKey, s.Horizon, s.Mean, s.Median, s.Count); err != nil {
				return "", fmt.Errorf("insert summary: %w", err)
			}
		}
	}

	for _, sig := range result.Significance {
		if _, err := tx.Exec(`INSERT INTO significance_results
			(run_id, horizon, primary_mean, primary_count, other_mean, other_count, t_statistic, p_value, significant)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			runID, sig.Horizon, sig.PrimaryMean, sig.PrimaryCount,
			sig.OtherMean, sig.OtherCount, sig.TStatistic, sig.PValue, boolToInt(sig.Significant)); err != nil {
			return "", fmt.Errorf("insert significance: %w", err)
		}
	}

	for _, lc := range result.LagCorrelations {
		if _, err := tx.Exec(`INSERT INTO lag_correlations
			(run_id, lag_days, correlation, pair_count, insufficient)
			VALUES (?,?,?,?,?)`,
			runID, lc.LagDays, lc.Correlation, lc.PairCount, boolToInt(lc.Insufficient)); err != nil {
			return "", fmt.Errorf("insert lag correlation: %w", err)
		}
	}

	if result.CAR != nil {
		for _, p := range result.CAR.Points {
			if _, err := tx.Exec(`INSERT INTO car_points
				(run_id, category, event_count, offset_day, mean_cum, std_error)
				VALUES (?,?,?,?,?,?)`,
				runID, result.CAR.Category, result.CAR.EventCount,
				p.OffsetDay, p.MeanCumReturn, p.StdError); err != nil {
				return "", fmt.Errorf("insert car point: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
