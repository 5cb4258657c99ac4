package microbench

import (
	"fmt"
	"math"
	"slices"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
)

// SweepPoint is one input of a scaling sweep. Size is the problem size the
// argument represents (slice length, key count, ...).
type SweepPoint[A any] struct {
	Size int
	Arg  A
}

// ScalingPoint is the measured result for one sweep input.
type ScalingPoint struct {
	Size   int
	Result Result
}

// ScalingFit is a power-law fit avg_ns ≈ C · size^Exponent.
type ScalingFit struct {
	Exponent  float64 // 1.0 = linear, 2.0 = quadratic, ~0 = constant
	Intercept float64 // ln(C)
	RSquared  float64 // Goodness of fit in log-log space (1.0 = perfect)
}

// Sweep benchmarks fn once per point, in order, with the same iteration count.
// Points are run sequentially; the first error aborts the sweep.
func Sweep[A, T any](fn func(A) T, points []SweepPoint[A], iterations uint64, opts ...Option) ([]ScalingPoint, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: sweep has no points", ErrInvalidConfiguration)
	}

	results := make([]ScalingPoint, 0, len(points))
	for _, p := range points {
		r, err := BenchmarkWithArg(fn, p.Arg, iterations, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed at size=%d: %w", p.Size, err)
		}
		results = append(results, ScalingPoint{Size: p.Size, Result: r})
	}

	return results, nil
}

// FitScaling fits ln(avg_ns) = Intercept + Exponent·ln(size) by least squares.
//
// Points with a non-positive size or a zero average carry no information on
// a log scale and are skipped. At least two usable points with distinct
// sizes are required.
func FitScaling(points []ScalingPoint) (ScalingFit, error) {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Size <= 0 || p.Result.AvgNs == 0 {
			continue
		}
		xs = append(xs, math.Log(float64(p.Size)))
		ys = append(ys, math.Log(float64(p.Result.AvgNs)))
	}

	if len(xs) < 2 {
		return ScalingFit{}, fmt.Errorf("%w: need at least 2 usable points, got %d", ErrInvalidConfiguration, len(xs))
	}
	if slices.Min(xs) == slices.Max(xs) {
		return ScalingFit{}, fmt.Errorf("%w: sweep sizes must differ", ErrInvalidConfiguration)
	}

	weights := make([]float64, len(xs))
	for i := range weights {
		weights[i] = 1
	}
	line := fit.PolynomialRegression(xs, ys, weights, 1)

	return ScalingFit{
		Exponent:  line.Coefficients[1],
		Intercept: line.Coefficients[0],
		RSquared:  rSquared(xs, ys, line.F),
	}, nil
}

// rSquared is the coefficient of determination of f over (xs, ys). A flat
// response is explained perfectly by any flat line and reports 1.
func rSquared(xs, ys []float64, f func(float64) float64) float64 {
	mean := stats.Mean(ys)

	var ssRes, ssTot float64
	for i := range xs {
		ssRes += (ys[i] - f(xs[i])) * (ys[i] - f(xs[i]))
		ssTot += (ys[i] - mean) * (ys[i] - mean)
	}

	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

// Predict returns the fitted average nanoseconds per call at size.
func (f ScalingFit) Predict(size int) float64 {
	if size <= 0 {
		return 0
	}
	return math.Exp(f.Intercept + f.Exponent*math.Log(float64(size)))
}
