package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		Ticker    string `yaml:"ticker"`
		Dir       string `yaml:"dir"`       // root data dir; prices/events live under <dir>/<ticker>/
		Sentiment string `yaml:"sentiment"` // optional date,score CSV for lag analysis
	} `yaml:"data"`
	Analysis struct {
		Horizons          []int    `yaml:"horizons"`
		Keywords          []string `yaml:"keywords"`
		MinGroupSize      int      `yaml:"min_group_size"`
		SignificanceLevel float64  `yaml:"significance_level"`
		CARDaysBefore     int      `yaml:"car_days_before"`
		CARDaysAfter      int      `yaml:"car_days_after"`
		CARMinEvents      int      `yaml:"car_min_events"`
		CARCategory       string   `yaml:"car_category"`
		MaxLag            int      `yaml:"max_lag"`
	} `yaml:"analysis"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"` // empty = run once and exit
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty = no recording
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; env and defaults still
// apply.
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
	if v := os.Getenv("TICKER"); v != "" {
		cfg.Data.Ticker = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("SENTIMENT_FILE"); v != "" {
		cfg.Data.Sentiment = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("ANALYSIS_CRON"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("HORIZONS"); v != "" {
		if horizons, err := parseIntList(v); err == nil {
			cfg.Analysis.Horizons = horizons
		}
	}

	// Defaults
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if len(cfg.Analysis.Horizons) == 0 {
		cfg.Analysis.Horizons = []int{1, 5, 10, 30}
	}
	if cfg.Analysis.MinGroupSize == 0 {
		cfg.Analysis.MinGroupSize = 5
	}
	if cfg.Analysis.SignificanceLevel == 0 {
		cfg.Analysis.SignificanceLevel = 0.05
	}
	if cfg.Analysis.CARDaysBefore == 0 {
		cfg.Analysis.CARDaysBefore = 5
	}
	if cfg.Analysis.CARDaysAfter == 0 {
		cfg.Analysis.CARDaysAfter = 15
	}
	if cfg.Analysis.CARMinEvents == 0 {
		cfg.Analysis.CARMinEvents = 3
	}
	if cfg.Analysis.CARCategory == "" {
		cfg.Analysis.CARCategory = "Sale"
	}
	if cfg.Analysis.MaxLag == 0 {
		cfg.Analysis.MaxLag = 3
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Data.Ticker == "" {
		return fmt.Errorf("data.ticker is required")
	}
	for _, h := range c.Analysis.Horizons {
		if h <= 0 {
			return fmt.Errorf("analysis.horizons must be positive, got %d", h)
		}
	}
	if c.Analysis.MinGroupSize < 2 {
		return fmt.Errorf("analysis.min_group_size must be at least 2")
	}
	if c.Analysis.SignificanceLevel <= 0 || c.Analysis.SignificanceLevel >= 1 {
		return fmt.Errorf("analysis.significance_level must be in (0, 1)")
	}
	if c.Analysis.CARDaysBefore < 0 || c.Analysis.CARDaysAfter <= 0 {
		return fmt.Errorf("analysis.car window must be non-negative before and positive after")
	}
	if c.Analysis.MaxLag < 0 {
		return fmt.Errorf("analysis.max_lag must not be negative")
	}
	return nil
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
