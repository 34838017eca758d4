package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportionZTestTable(t *testing.T) {
	t.Run("skewed summer peak", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Jan", Count: 10},
			{Label: "Feb", Count: 10},
			{Label: "Jul", Count: 100},
		}

		results, err := ProportionZTestTable(counts, "Jul")
		require.NoError(t, err)
		require.Len(t, results, 3)

		// p_ref = 100/120, se = sqrt(p_ref*(1-p_ref)/120) ≈ 0.0340,
		// z for Jan ≈ -22.05, so Φ(z) is indistinguishable from zero.
		assert.Equal(t, "Jan", results[0].Label)
		assert.Equal(t, 10, results[0].Count)
		assert.Less(t, results[0].PValue, 1e-10)

		assert.Less(t, results[1].PValue, 1e-10)

		assert.Equal(t, "Jul", results[2].Label)
		assert.Equal(t, 1.0, results[2].PValue)
	})

	t.Run("preserves input order and length", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Dec", Count: 3},
			{Label: "Mar", Count: 7},
			{Label: "Aug", Count: 5},
			{Label: "Jan", Count: 1},
		}

		results, err := ProportionZTestTable(counts, "Mar")
		require.NoError(t, err)
		require.Len(t, results, len(counts))
		for i := range counts {
			assert.Equal(t, counts[i].Label, results[i].Label)
			assert.Equal(t, counts[i].Count, results[i].Count)
		}
	})

	t.Run("p-values bounded and directional", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "below", Count: 5},
			{Label: "ref", Count: 20},
			{Label: "above", Count: 30},
			{Label: "equal", Count: 20},
		}

		results, err := ProportionZTestTable(counts, "ref")
		require.NoError(t, err)

		for _, r := range results {
			assert.GreaterOrEqual(t, r.PValue, 0.0)
			assert.LessOrEqual(t, r.PValue, 1.0)
		}
		assert.Less(t, results[0].PValue, 0.5, "rarer than reference")
		assert.Equal(t, 1.0, results[1].PValue, "reference sentinel")
		assert.Greater(t, results[2].PValue, 0.5, "more common than reference")
		// Equal share sits exactly at the center of the null.
		assert.InDelta(t, 0.5, results[3].PValue, 1e-12)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Apr", Count: 13},
			{Label: "May", Count: 29},
			{Label: "Jun", Count: 8},
		}

		first, err := ProportionZTestTable(counts, "May")
		require.NoError(t, err)
		second, err := ProportionZTestTable(counts, "May")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("zero-count non-reference categories allowed", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Oct", Count: 0},
			{Label: "Nov", Count: 12},
		}

		results, err := ProportionZTestTable(counts, "Nov")
		require.NoError(t, err)
		assert.Less(t, results[0].PValue, 0.5)
	})

	t.Run("missing reference", func(t *testing.T) {
		counts := []CategoryCount{{Label: "Jan", Count: 4}}

		_, err := ProportionZTestTable(counts, "Sep")
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "Sep")
	})

	t.Run("zero total", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Jan", Count: 0},
			{Label: "Feb", Count: 0},
		}

		_, err := ProportionZTestTable(counts, "Jan")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ProportionZTestTable(nil, "Jan")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative count", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Jan", Count: -1},
			{Label: "Feb", Count: 10},
		}

		_, err := ProportionZTestTable(counts, "Feb")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate label", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Jan", Count: 3},
			{Label: "Jan", Count: 5},
		}

		_, err := ProportionZTestTable(counts, "Jan")
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("reference holds entire total", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "Jul", Count: 50},
			{Label: "Aug", Count: 0},
		}

		_, err := ProportionZTestTable(counts, "Jul")
		require.ErrorIs(t, err, ErrDegenerateVariance)
	})

	t.Run("no NaN or Inf leaks", func(t *testing.T) {
		counts := []CategoryCount{
			{Label: "a", Count: 1},
			{Label: "b", Count: 99999},
		}

		results, err := ProportionZTestTable(counts, "b")
		require.NoError(t, err)
		for _, r := range results {
			assert.False(t, math.IsNaN(r.PValue))
			assert.False(t, math.IsInf(r.PValue, 0))
		}
	})
}

func TestNormalCDF(t *testing.T) {
	tests := []struct {
		name     string
		z        float64
		expected float64
		delta    float64
	}{
		{"center", 0, 0.5, 1e-12},
		{"one sigma below", -1, 0.158655, 1e-6},
		{"one sigma above", 1, 0.841345, 1e-6},
		{"1.96 below", -1.96, 0.024998, 1e-6},
		{"far below", -8, 0, 1e-12},
		{"far above", 8, 1, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, normalCDF(tt.z), tt.delta)
		})
	}
}
