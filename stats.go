package microbench

import (
	"fmt"
	"math"
	"math/big"
)

// Aggregate reduces raw per-window nanosecond totals to per-invocation
// statistics. Each raw sample covers perSample invocations; iterations is
// echoed into the result unchanged.
//
//	avg      = (sum(samples) / len(samples)) / perSample
//	min, max = min(samples) / perSample, max(samples) / perSample
//	variance = (Σ(sample - avgRaw)² / len(samples)) / perSample²
//
// Variance is the population variance, accumulated in arbitrary precision
// so that squared nanosecond differences cannot overflow. Dividing by
// perSample² assumes per-call costs inside a window are independent; it
// underestimates the true per-call variance when they are correlated
// (warm caches, batching).
//
// A single sample always yields zero variance. Callers should read that as
// "confidence unknown", not "perfectly consistent".
//
// Aggregate is pure: the same input always produces the same Result.
func Aggregate(samples []uint64, perSample, iterations uint64) (Result, error) {
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("%w: no samples to aggregate", ErrInvalidConfiguration)
	}
	if perSample == 0 {
		return Result{}, fmt.Errorf("%w: zero invocations per sample", ErrInvalidConfiguration)
	}

	minRaw, maxRaw := samples[0], samples[0]
	total := new(big.Int)
	var v big.Int
	for _, s := range samples {
		minRaw = min(minRaw, s)
		maxRaw = max(maxRaw, s)
		total.Add(total, v.SetUint64(s))
	}

	n := new(big.Int).SetUint64(uint64(len(samples)))
	avgRaw := new(big.Int).Quo(total, n)

	sumSquares := new(big.Int)
	var diff big.Int
	for _, s := range samples {
		diff.Sub(v.SetUint64(s), avgRaw)
		sumSquares.Add(sumSquares, diff.Mul(&diff, &diff))
	}

	per := new(big.Int).SetUint64(perSample)
	variance := sumSquares.Quo(sumSquares, n)
	variance.Quo(variance, per.Mul(per, per))

	return Result{
		Iterations: iterations,
		TotalNs:    saturate(total),
		AvgNs:      avgRaw.Uint64() / perSample,
		MinNs:      minRaw / perSample,
		MaxNs:      maxRaw / perSample,
		VarianceNs: saturate(variance),
	}, nil
}

// saturate converts a non-negative big.Int to uint64, clamping at MaxUint64.
func saturate(x *big.Int) uint64 {
	if !x.IsUint64() {
		return math.MaxUint64
	}
	return x.Uint64()
}

// StdDevNs returns the per-invocation standard deviation in nanoseconds.
func (r Result) StdDevNs() float64 {
	return math.Sqrt(float64(r.VarianceNs))
}

// CV returns the coefficient of variation as a percentage (standard
// deviation over mean). Lower is more consistent. Zero when AvgNs is zero.
func (r Result) CV() float64 {
	if r.AvgNs == 0 {
		return 0
	}
	return r.StdDevNs() / float64(r.AvgNs) * 100
}
