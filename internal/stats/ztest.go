package stats

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput marks malformed or degenerate input: zero total,
	// a negative count, a missing reference label, or a duplicate label.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateVariance marks a reference proportion of 0 or 1, which
	// makes the standard error under the null exactly zero.
	ErrDegenerateVariance = errors.New("degenerate variance")
)

// CategoryCount pairs a category label with the number of events observed in it.
type CategoryCount struct {
	Label string
	Count int
}

// ProportionTestResult is one row of the z-test table. PValue is the lower-tail
// standard-normal probability, or exactly 1.0 for the reference row (sentinel
// meaning "no test performed").
type ProportionTestResult struct {
	Label  string
	Count  int
	PValue float64
}

// ProportionZTestTable tests each category's share of the total against the
// reference category's share, one-tailed in the "lower" direction: the p-value
// is small when a category is much rarer than the reference and near 1 when it
// is at least as common.
//
// The variance under the null is estimated from the reference proportion alone,
// not pooled across both proportions; this is deliberately weaker than a
// textbook two-sample proportion test and should not be used as one.
//
// Results come back in input order. The reference row carries PValue = 1.0.
func ProportionZTestTable(counts []CategoryCount, reference string) ([]ProportionTestResult, error) {
	total := 0
	refCount := -1
	seen := make(map[string]struct{}, len(counts))
	for _, c := range counts {
		if c.Count < 0 {
			return nil, fmt.Errorf("%w: negative count %d for %q", ErrInvalidInput, c.Count, c.Label)
		}
		if _, dup := seen[c.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidInput, c.Label)
		}
		seen[c.Label] = struct{}{}
		total += c.Count
		if c.Label == reference {
			refCount = c.Count
		}
	}

	if refCount < 0 {
		return nil, fmt.Errorf("%w: reference label %q not present", ErrInvalidInput, reference)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: total count is zero", ErrInvalidInput)
	}

	pRef := float64(refCount) / float64(total)
	if pRef == 0 || pRef == 1 {
		return nil, fmt.Errorf("%w: reference proportion is %g", ErrDegenerateVariance, pRef)
	}
	se := math.Sqrt(pRef * (1 - pRef) / float64(total))

	results := make([]ProportionTestResult, len(counts))
	for i, c := range counts {
		if c.Label == reference {
			results[i] = ProportionTestResult{Label: c.Label, Count: c.Count, PValue: 1.0}
			continue
		}
		pc := float64(c.Count) / float64(total)
		z := (pc - pRef) / se
		results[i] = ProportionTestResult{Label: c.Label, Count: c.Count, PValue: normalCDF(z)}
	}
	return results, nil
}

// normalCDF is Φ(z), the standard-normal lower-tail cumulative probability.
func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}
