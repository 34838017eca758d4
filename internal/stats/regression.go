package stats

import "fmt"

// LinearModel is a fitted single-variable least-squares line y = Slope*x + Intercept.
type LinearModel struct {
	Slope     float64
	Intercept float64
	R2        float64
	N         int
}

// LinearFit fits an ordinary least-squares line through the (x, y) pairs.
// It fails when the slices differ in length, fewer than two points are given,
// or x has zero variance (a vertical fit has no defined slope).
func LinearFit(xs, ys []float64) (LinearModel, error) {
	if len(xs) != len(ys) {
		return LinearModel{}, fmt.Errorf("%w: %d x values vs %d y values", ErrInvalidInput, len(xs), len(ys))
	}
	n := len(xs)
	if n < 2 {
		return LinearModel{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInput, n)
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy, syy float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	if sxx == 0 {
		return LinearModel{}, fmt.Errorf("%w: zero variance in x", ErrInvalidInput)
	}

	slope := sxy / sxx
	model := LinearModel{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		N:         n,
	}
	// R² is 1 when y is constant: the fit (a flat line) explains everything there is.
	if syy == 0 {
		model.R2 = 1
	} else {
		model.R2 = (sxy * sxy) / (sxx * syy)
	}
	return model, nil
}
