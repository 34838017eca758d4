package observability

import (
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersAll(t *testing.T) {
	m := NewMetrics()

	m.RowsFetched.Add(120)
	m.RowsDropped.Inc()
	m.RowsAnalyzed.Add(119)
	m.RunSucceeded.Set(1)

	assert.Equal(t, 120.0, testutil.ToFloat64(m.RowsFetched))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RowsDropped))
	assert.Equal(t, 119.0, testutil.ToFloat64(m.RowsAnalyzed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunSucceeded))

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}

func TestNewMetricsForTesting_NoRegistry(t *testing.T) {
	m := NewMetricsForTesting()
	assert.Nil(t, m.Gatherer())

	// LogSummary must be a no-op rather than a panic without a registry.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	LogSummary(logger, m.Gatherer())
}

func TestLogSummary_GathersRegistry(t *testing.T) {
	m := NewMetrics()
	m.RowsFetched.Add(3)
	m.FetchDuration.Observe(0.2)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	LogSummary(logger, m.Gatherer())
}
