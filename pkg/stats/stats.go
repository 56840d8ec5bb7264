// Package stats holds the numeric helpers shared by the learners, the sampler
// and the CLI reports. Most of the work is delegated to gonum.
package stats

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrTooFewLevels is returned when an evenly spaced grid needs more points.
	ErrTooFewLevels = errors.New("stats: at least two levels are required")
	// ErrKnotMismatch is returned when interpolation knots and values differ in length.
	ErrKnotMismatch = errors.New("stats: knots and values differ in length")
	// ErrUnsortedKnots is returned when interpolation knots are not strictly increasing.
	ErrUnsortedKnots = errors.New("stats: knots not strictly increasing")
)

// Levels returns the sorted distinct values of x.
func Levels(x []float64) []float64 {
	out := slices.Clone(x)
	slices.Sort(out)
	return slices.Compact(out)
}

// Nearest returns the element of levels closest to v. Ties go to the lower level.
func Nearest(v float64, levels []float64) float64 {
	best := levels[0]
	for _, l := range levels[1:] {
		if math.Abs(l-v) < math.Abs(best-v) {
			best = l
		}
	}
	return best
}

// Linspace returns n evenly spaced values over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrTooFewLevels
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// Interp evaluates the piecewise-linear function through (xs, ys) at x.
// xs must be strictly increasing. Outside [xs[0], xs[len-1]] the end values
// are returned; the function never extrapolates.
func Interp(x float64, xs, ys []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrTooFewLevels
	}
	if len(xs) != len(ys) {
		return 0, ErrKnotMismatch
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return 0, ErrUnsortedKnots
		}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, err
	}
	return pl.Predict(x), nil
}

// WeightedQuantile returns the smallest value of sorted whose cumulative
// weight reaches p of the total weight. At p >= 1 it is the largest value
// with positive weight.
func WeightedQuantile(p float64, sorted, weights []float64) float64 {
	if p >= 1 {
		for i := len(weights) - 1; i > 0; i-- {
			if weights[i] > 0 {
				return sorted[i]
			}
		}
		return sorted[0]
	}
	return stat.Quantile(p, stat.Empirical, sorted, weights)
}

// Summary holds the moments reported when comparing two columns.
type Summary struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Describe summarises x. An empty slice yields a zero Summary.
func Describe(x []float64) Summary {
	if len(x) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		std = 0
	}
	return Summary{Mean: mean, Std: std, Min: floats.Min(x), Max: floats.Max(x)}
}

// Correlation computes the Pearson correlation between x and y.
// Zero-variance inputs yield 0 instead of NaN.
func Correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	c := stat.Correlation(x, y, nil)
	if math.IsNaN(c) {
		return 0
	}
	return c
}
