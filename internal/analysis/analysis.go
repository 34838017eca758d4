package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/incident-report-analysis/internal/domain"
	"github.com/couchcryptid/incident-report-analysis/internal/observability"
	"github.com/couchcryptid/incident-report-analysis/internal/report"
	"github.com/couchcryptid/incident-report-analysis/internal/stats"
)

// Fetcher acquires the raw dataset rows.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.RawIncidentRecord, error)
}

// Options tune one analysis run.
type Options struct {
	DatasetLabel string
	RunID        string

	// Alpha is the significance level for the narrative month flags.
	Alpha float64

	// ReferenceMonth pins the z-test reference; empty means the month with
	// the most incidents.
	ReferenceMonth string
}

// Runner executes the single fetch-clean-analyze pass.
type Runner struct {
	fetcher Fetcher
	logger  *slog.Logger
	metrics *observability.Metrics
	opts    Options
}

// New creates a Runner with the given source and observability.
func New(f Fetcher, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Runner {
	return &Runner{
		fetcher: f,
		logger:  logger,
		metrics: metrics,
		opts:    opts,
	}
}

// Run performs one complete analysis pass and returns the assembled report.
func (r *Runner) Run(ctx context.Context) (*report.Report, error) {
	fetchStart := time.Now()
	raws, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	r.metrics.FetchDuration.Observe(time.Since(fetchStart).Seconds())
	r.metrics.RowsFetched.Add(float64(len(raws)))
	r.logger.Info("dataset fetched", "rows", len(raws))

	analysisStart := time.Now()

	incidents, dropped := domain.CleanRecords(raws)
	r.metrics.RowsDropped.Add(float64(dropped))
	r.metrics.RowsAnalyzed.Add(float64(len(incidents)))
	if dropped > 0 {
		r.logger.Warn("rows dropped during cleaning", "dropped", dropped, "kept", len(incidents))
	}

	rep := report.New(r.opts.DatasetLabel, r.opts.RunID)
	rep.RowsFetched = len(raws)
	rep.RowsDropped = dropped
	rep.RowsAnalyzed = len(incidents)
	rep.Alpha = r.opts.Alpha

	months := make([]string, len(incidents))
	brackets := make([]string, len(incidents))
	for i, inc := range incidents {
		months[i] = inc.Month
		brackets[i] = inc.AgeBracket
	}

	monthCounts := stats.Tally(months, domain.MonthOrder())
	rep.MonthHistogram = report.Histogram{Title: "Incidents per month", Bins: monthCounts}
	rep.AgeHistogram = report.Histogram{
		Title: "Incidents per age bracket",
		Bins:  stats.Tally(brackets, domain.AgeBracketOrder()),
	}

	reference, err := r.pickReference(monthCounts)
	if err != nil {
		return nil, err
	}
	rep.Reference = reference.Label
	r.logger.Info("reference month selected", "month", reference.Label, "count", reference.Count)

	rep.ZTest, err = stats.ProportionZTestTable(monthCounts, reference.Label)
	if err != nil {
		return nil, fmt.Errorf("proportion z-test: %w", err)
	}

	r.fitRegression(rep, incidents)

	r.metrics.AnalysisDuration.Observe(time.Since(analysisStart).Seconds())
	r.logger.Info("analysis complete",
		"reference", rep.Reference,
		"months_tested", len(rep.ZTest),
		"regression_fitted", rep.Regression != nil,
	)
	return rep, nil
}

// pickReference resolves the configured override or falls back to the peak month.
func (r *Runner) pickReference(monthCounts []stats.CategoryCount) (stats.CategoryCount, error) {
	if r.opts.ReferenceMonth == "" {
		best, err := stats.MaxCount(monthCounts)
		if err != nil {
			return stats.CategoryCount{}, fmt.Errorf("pick reference month: %w", err)
		}
		return best, nil
	}

	for _, c := range monthCounts {
		if c.Label == r.opts.ReferenceMonth {
			return c, nil
		}
	}
	return stats.CategoryCount{}, fmt.Errorf("pick reference month: %w: %q not tallied",
		stats.ErrInvalidInput, r.opts.ReferenceMonth)
}

// fitRegression regresses injuries on age-bracket midpoint over the rows with
// a known bracket. A degenerate fit is reported, not fatal: the month table is
// the run's contract, the regression is narrative enrichment.
func (r *Runner) fitRegression(rep *report.Report, incidents []domain.Incident) {
	var xs, ys []float64
	for _, inc := range incidents {
		if !inc.HasMidpoint {
			continue
		}
		xs = append(xs, inc.AgeMidpoint)
		ys = append(ys, float64(inc.Injuries))
	}

	model, err := stats.LinearFit(xs, ys)
	if err != nil {
		rep.RegressionNote = err.Error()
		r.logger.Warn("regression skipped", "error", err, "usable_rows", len(xs))
		return
	}
	rep.Regression = &model
}
