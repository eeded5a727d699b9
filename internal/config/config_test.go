package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Analysis.Horizons; len(got) != 4 || got[0] != 1 || got[3] != 30 {
		t.Errorf("horizons = %v, want [1 5 10 30]", got)
	}
	if cfg.Analysis.MinGroupSize != 5 || cfg.Analysis.SignificanceLevel != 0.05 {
		t.Errorf("min=%d alpha=%v", cfg.Analysis.MinGroupSize, cfg.Analysis.SignificanceLevel)
	}
	if cfg.Analysis.CARDaysBefore != 5 || cfg.Analysis.CARDaysAfter != 15 || cfg.Analysis.CARMinEvents != 3 {
		t.Errorf("CAR defaults: %+v", cfg.Analysis)
	}
	if cfg.Analysis.MaxLag != 3 || cfg.Data.Dir != "data" {
		t.Errorf("max_lag=%d dir=%q", cfg.Analysis.MaxLag, cfg.Data.Dir)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "data:\n  ticker: MSFT\nanalysis:\n  horizons: [2, 7]\n  min_group_size: 8\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TICKER", "AAPL")
	t.Setenv("HORIZONS", "3, 9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Ticker != "AAPL" {
		t.Errorf("env should override file ticker, got %q", cfg.Data.Ticker)
	}
	if len(cfg.Analysis.Horizons) != 2 || cfg.Analysis.Horizons[0] != 3 || cfg.Analysis.Horizons[1] != 9 {
		t.Errorf("horizons = %v, want [3 9]", cfg.Analysis.Horizons)
	}
	if cfg.Analysis.MinGroupSize != 8 {
		t.Errorf("min_group_size = %d, want 8 from file", cfg.Analysis.MinGroupSize)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "none.yaml"))
		cfg.Data.Ticker = "AAPL"
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Data.Ticker = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing ticker accepted")
	}

	cfg = base()
	cfg.Analysis.Horizons = []int{5, -1}
	if err := cfg.Validate(); err == nil {
		t.Error("negative horizon accepted")
	}

	cfg = base()
	cfg.Analysis.SignificanceLevel = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("significance level over 1 accepted")
	}

	cfg = base()
	cfg.Analysis.MinGroupSize = 1
	if err := cfg.Validate(); err == nil {
		t.Error("min group size of 1 accepted")
	}
}
