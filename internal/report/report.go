package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/couchcryptid/incident-report-analysis/internal/stats"
)

const barWidth = 40

// Histogram is one tallied distribution ready for text rendering.
type Histogram struct {
	Title string
	Bins  []stats.CategoryCount
}

// Report is the assembled output of one analysis run.
type Report struct {
	GeneratedAt  time.Time
	RunID        string
	DatasetLabel string

	RowsFetched  int
	RowsDropped  int
	RowsAnalyzed int

	MonthHistogram Histogram
	AgeHistogram   Histogram

	// Z-test section.
	Reference string
	Alpha     float64
	ZTest     []stats.ProportionTestResult

	// Regression section. Regression is nil when the fit was skipped;
	// RegressionNote then says why.
	Regression     *stats.LinearModel
	RegressionNote string
}

// New creates a report shell stamped with the current time.
func New(datasetLabel, runID string) *Report {
	return &Report{
		GeneratedAt:  clock.Now().UTC(),
		RunID:        runID,
		DatasetLabel: datasetLabel,
	}
}

// Render writes the full fixed-width text report.
func (r *Report) Render(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Incident Report Analysis ===\n")
	fmt.Fprintf(&b, "Dataset:   %s\n", r.DatasetLabel)
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Run:       %s\n", r.RunID)
	fmt.Fprintf(&b, "Rows:      %d fetched, %d dropped, %d analyzed\n",
		r.RowsFetched, r.RowsDropped, r.RowsAnalyzed)

	renderHistogram(&b, r.MonthHistogram)
	renderHistogram(&b, r.AgeHistogram)
	r.renderZTest(&b)
	r.renderRegression(&b)

	fmt.Fprintf(&b, "\n--- Conclusions ---\n")
	for _, c := range r.Conclusions() {
		fmt.Fprintf(&b, "  - %s\n", c)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderHistogram(b *strings.Builder, h Histogram) {
	fmt.Fprintf(b, "\n--- %s ---\n", h.Title)

	maxCount := 0
	for _, bin := range h.Bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}

	for _, bin := range h.Bins {
		bar := ""
		if maxCount > 0 {
			n := bin.Count * barWidth / maxCount
			if bin.Count > 0 && n == 0 {
				n = 1 // keep non-empty bins visible
			}
			bar = strings.Repeat("#", n)
		}
		fmt.Fprintf(b, "  %-6s %6d  %s\n", bin.Label, bin.Count, bar)
	}
}

func (r *Report) renderZTest(b *strings.Builder) {
	fmt.Fprintf(b, "\n--- Share vs %s (one-tailed z-test, alpha=%.2g) ---\n", r.Reference, r.Alpha)
	fmt.Fprintf(b, "  %-6s %8s %10s\n", "month", "count", "p-value")
	for _, row := range r.ZTest {
		marker := ""
		switch {
		case row.Label == r.Reference:
			marker = "  (ref)"
		case row.PValue < r.Alpha:
			marker = "  *"
		}
		fmt.Fprintf(b, "  %-6s %8d %10.4f%s\n", row.Label, row.Count, row.PValue, marker)
	}
	fmt.Fprintf(b, "  * share significantly lower than %s at alpha=%.2g\n", r.Reference, r.Alpha)
}

func (r *Report) renderRegression(b *strings.Builder) {
	fmt.Fprintf(b, "\n--- Injuries vs age midpoint (least squares) ---\n")
	if r.Regression == nil {
		fmt.Fprintf(b, "  not fitted: %s\n", r.RegressionNote)
		return
	}
	m := r.Regression
	fmt.Fprintf(b, "  injuries = %.4f * age + %.4f   (n=%d, R²=%.4f)\n",
		m.Slope, m.Intercept, m.N, m.R2)
}

// Conclusions produces the narrative summary lines.
func (r *Report) Conclusions() []string {
	var out []string

	var lower []string
	for _, row := range r.ZTest {
		if row.Label != r.Reference && row.PValue < r.Alpha {
			lower = append(lower, row.Label)
		}
	}
	switch {
	case r.Reference == "":
		out = append(out, "no month share test was performed")
	case len(lower) == 0:
		out = append(out, fmt.Sprintf("no month has a share significantly lower than %s at alpha=%.2g", r.Reference, r.Alpha))
	default:
		out = append(out, fmt.Sprintf("incident share is significantly lower than %s (alpha=%.2g) in: %s",
			r.Reference, r.Alpha, strings.Join(lower, ", ")))
	}

	if r.Regression != nil {
		direction := "rises"
		if r.Regression.Slope < 0 {
			direction = "falls"
		} else if r.Regression.Slope == 0 {
			direction = "is flat"
		}
		out = append(out, fmt.Sprintf("injury count %s with age (slope %.4f per year, R²=%.4f over %d incidents)",
			direction, r.Regression.Slope, r.Regression.R2, r.Regression.N))
	} else if r.RegressionNote != "" {
		out = append(out, "injuries-vs-age regression skipped: "+r.RegressionNote)
	}

	if r.RowsDropped > 0 {
		out = append(out, fmt.Sprintf("%d of %d rows were dropped during cleaning", r.RowsDropped, r.RowsFetched))
	}

	return out
}
