package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/incident-report-analysis/internal/domain"
)

// Config holds all analysis settings, populated from environment variables.
type Config struct {
	DatasetURL   string
	DatasetLabel string
	HTTPTimeout  time.Duration

	LogLevel  string
	LogFormat string

	// SignificanceLevel is the alpha used to flag months whose share is
	// significantly lower than the reference month's.
	SignificanceLevel float64

	// ReferenceMonth optionally pins the z-test reference ("Jan".."Dec").
	// Empty means "use the month with the most incidents".
	ReferenceMonth string

	// OutputPath is where the rendered report goes; "-" means stdout.
	OutputPath string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid HTTP_TIMEOUT")
	}

	alpha, err := parseSignificanceLevel()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatasetURL:        envOrDefault("DATASET_URL", "https://data.example.gov/api/views/incident-reports/rows.csv"),
		DatasetLabel:      envOrDefault("DATASET_LABEL", "public incident reports"),
		HTTPTimeout:       timeout,
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "json"),
		SignificanceLevel: alpha,
		ReferenceMonth:    os.Getenv("REFERENCE_MONTH"),
		OutputPath:        envOrDefault("OUTPUT_PATH", "-"),
	}

	if cfg.DatasetURL == "" {
		return nil, errors.New("DATASET_URL is required")
	}
	if cfg.ReferenceMonth != "" && !domain.ValidMonth(cfg.ReferenceMonth) {
		return nil, fmt.Errorf("invalid REFERENCE_MONTH %q: want a three-letter month like Jul", cfg.ReferenceMonth)
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OUTPUT_PATH is required")
	}

	return cfg, nil
}

func parseSignificanceLevel() (float64, error) {
	s := envOrDefault("SIGNIFICANCE_LEVEL", "0.05")
	alpha, err := strconv.ParseFloat(s, 64)
	if err != nil || alpha <= 0 || alpha >= 1 {
		return 0, errors.New("invalid SIGNIFICANCE_LEVEL: want a value in (0, 1)")
	}
	return alpha, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
