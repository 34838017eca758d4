package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://data.example.gov/api/views/incident-reports/rows.csv", cfg.DatasetURL)
	assert.Equal(t, "public incident reports", cfg.DatasetLabel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 0.05, cfg.SignificanceLevel)
	assert.Empty(t, cfg.ReferenceMonth)
	assert.Equal(t, "-", cfg.OutputPath)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATASET_URL", "https://example.org/incidents.csv")
	t.Setenv("DATASET_LABEL", "city incident extract")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SIGNIFICANCE_LEVEL", "0.01")
	t.Setenv("REFERENCE_MONTH", "Jul")
	t.Setenv("OUTPUT_PATH", "report.txt")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/incidents.csv", cfg.DatasetURL)
	assert.Equal(t, "city incident extract", cfg.DatasetLabel)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 0.01, cfg.SignificanceLevel)
	assert.Equal(t, "Jul", cfg.ReferenceMonth)
	assert.Equal(t, "report.txt", cfg.OutputPath)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timeout", "HTTP_TIMEOUT", "soon"},
		{"negative timeout", "HTTP_TIMEOUT", "-1s"},
		{"alpha not a number", "SIGNIFICANCE_LEVEL", "five percent"},
		{"alpha zero", "SIGNIFICANCE_LEVEL", "0"},
		{"alpha too large", "SIGNIFICANCE_LEVEL", "1.5"},
		{"unknown reference month", "REFERENCE_MONTH", "July"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
