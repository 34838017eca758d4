package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// LogSummary gathers the run registry and logs one line per metric. This is
// the batch stand-in for a /metrics scrape: a single-pass process has nothing
// listening by the time the numbers are interesting.
func LogSummary(logger *slog.Logger, gatherer prometheus.Gatherer) {
	if gatherer == nil {
		return
	}

	families, err := gatherer.Gather()
	if err != nil {
		logger.Warn("gather metrics failed", "error", err)
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				logger.Info("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				logger.Info("metric", "name", mf.GetName(), "value", m.GetGauge().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				logger.Info("metric", "name", mf.GetName(),
					"count", h.GetSampleCount(), "sum_seconds", h.GetSampleSum())
			default:
				// Only the three types above are registered.
			}
		}
	}
}
