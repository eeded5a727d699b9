package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"InsiderScope/internal/analysis"
	"InsiderScope/internal/config"
	"InsiderScope/internal/loader"
	"InsiderScope/internal/observer"
	"InsiderScope/internal/recorder"
	"InsiderScope/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] InsiderScope starting...")

	// Local .env overrides are optional.
	_ = godotenv.Load()

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

	run := func() {
		if err := runAnalysis(cfg, rec); err != nil {
			log.Printf("[ERROR] analysis: %v", err)
		}
	}

	if cfg.Schedule.AnalysisCron == "" {
		// One-shot mode.
		if err := runAnalysis(cfg, rec); err != nil {
			log.Fatalf("[FATAL] analysis: %v", err)
		}
		return
	}

	// Watch mode: re-run the analysis on a schedule as the data gatherer
	// refreshes the CSVs.
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Schedule.AnalysisCron, run); err != nil {
		log.Fatalf("[FATAL] register analysis cron: %v", err)
	}
	c.Start()
	defer c.Stop()
	log.Printf("[INFO] scheduled analysis: %s", cfg.Schedule.AnalysisCron)

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, running analysis now")
		go run()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

func runAnalysis(cfg *config.Config, rec recorder.Recorder) error {
	started := time.Now()
	base := filepath.Join(cfg.Data.Dir, cfg.Data.Ticker)

	series, err := loader.LoadPrices(filepath.Join(base, "stock_prices.csv"), cfg.Data.Ticker)
	if err != nil {
		return fmt.Errorf("load prices: %w", err)
	}
	table, err := loader.LoadEvents(filepath.Join(base, "insider_holdings"), cfg.Data.Ticker)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	log.Printf("[INFO] loaded %d price days, %d events for %s",
		len(series.Points), len(table.Events), cfg.Data.Ticker)

	var sentiment map[time.Time]float64
	if cfg.Data.Sentiment != "" {
		sentiment, err = loader.LoadSentiment(cfg.Data.Sentiment)
		if err != nil {
			log.Printf("[WARN] load sentiment: %v, skipping lag analysis", err)
			sentiment = nil
		}
	}

	opts := analysis.Options{
		Horizons:          cfg.Analysis.Horizons,
		Keywords:          cfg.Analysis.Keywords,
		MinGroupSize:      cfg.Analysis.MinGroupSize,
		SignificanceLevel: cfg.Analysis.SignificanceLevel,
		CARDaysBefore:     cfg.Analysis.CARDaysBefore,
		CARDaysAfter:      cfg.Analysis.CARDaysAfter,
		CARMinEvents:      cfg.Analysis.CARMinEvents,
		CARCategory:       cfg.Analysis.CARCategory,
		MaxLag:            cfg.Analysis.MaxLag,
	}
	result, err := analysis.Run(table, series, sentiment, opts, observer.LogObserver{})
	if err != nil {
		return err
	}

	fmt.Print(report.Format(result))

	runID, err := rec.RecordRun(result)
	if err != nil {
		log.Printf("[ERROR] record run: %v", err)
	} else if runID != "" {
		log.Printf("[INFO] recorded run %s", runID)
	}

	log.Printf("[INFO] analysis finished in %s", time.Since(started).Round(time.Millisecond))
	return nil
}
