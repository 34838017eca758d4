package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for one
// analysis run. The process is single-pass, so instead of a scrape endpoint
// the final values are logged at exit via LogSummary.
type Metrics struct {
	RowsFetched  prometheus.Counter
	RowsDropped  prometheus.Counter
	RowsAnalyzed prometheus.Counter

	FetchDuration    prometheus.Histogram
	AnalysisDuration prometheus.Histogram

	RunSucceeded prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates all run metrics on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RowsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_analysis",
			Name:      "rows_fetched_total",
			Help:      "Raw CSV rows acquired from the dataset source.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_analysis",
			Name:      "rows_dropped_total",
			Help:      "Rows discarded during cleaning.",
		}),
		RowsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_analysis",
			Name:      "rows_analyzed_total",
			Help:      "Cleaned rows that entered the analysis pass.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "incident_analysis",
			Name:      "fetch_duration_seconds",
			Help:      "Time spent acquiring and decoding the dataset.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "incident_analysis",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent cleaning, testing, and fitting.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		RunSucceeded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_analysis",
			Name:      "run_succeeded",
			Help:      "1 when the run produced a report, 0 otherwise.",
		}),
		registry: reg,
	}

	reg.MustRegister(
		m.RowsFetched,
		m.RowsDropped,
		m.RowsAnalyzed,
		m.FetchDuration,
		m.AnalysisDuration,
		m.RunSucceeded,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics so parallel tests never
// collide on registration.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsFetched:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_analysis", Name: "rows_fetched_total"}),
		RowsDropped:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_analysis", Name: "rows_dropped_total"}),
		RowsAnalyzed:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_analysis", Name: "rows_analyzed_total"}),
		FetchDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "incident_analysis", Name: "fetch_duration_seconds"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "incident_analysis", Name: "analysis_duration_seconds"}),
		RunSucceeded:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "incident_analysis", Name: "run_succeeded"}),
	}
}

// Gatherer exposes the run registry for the end-of-run summary. Nil for
// metrics built with NewMetricsForTesting.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m.registry == nil {
		return nil
	}
	return m.registry
}
