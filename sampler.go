package microbench

import (
	"errors"
	"fmt"
)

const (
	// maxWarmup caps the untimed warm-up invocations.
	maxWarmup = 100

	// maxSamples caps the number of timed windows; minSamples is the floor.
	maxSamples = 10
	minSamples = 1

	// iterationsPerWindow is the target window size used to derive the
	// number of samples before clamping.
	iterationsPerWindow = 100
)

// SamplePlan describes how a requested iteration count is split into a
// warm-up phase and a series of equally sized timed windows.
type SamplePlan struct {
	Iterations uint64 // Requested invocations, echoed into the Result
	Warmup     uint64 // Untimed invocations before the first window
	Samples    uint64 // Number of timed windows
	PerSample  uint64 // Invocations inside each window
}

// PlanSamples partitions iterations into warm-up and sample windows.
//
//	warmup    = min(iterations/10, 100)
//	samples   = clamp(iterations/100, 1, 10)
//	perSample = iterations / samples
//
// Iteration counts that are not a multiple of samples leave a remainder
// that is never executed; at most samples-1 invocations are dropped.
func PlanSamples(iterations uint64) (SamplePlan, error) {
	if iterations == 0 {
		return SamplePlan{}, fmt.Errorf("%w: iterations must be at least 1", ErrInvalidConfiguration)
	}

	samples := min(max(iterations/iterationsPerWindow, minSamples), maxSamples)
	plan := SamplePlan{
		Iterations: iterations,
		Warmup:     min(iterations/10, maxWarmup),
		Samples:    samples,
		PerSample:  iterations / samples,
	}

	// Unreachable for iterations >= 1 since samples <= iterations.
	if plan.PerSample == 0 {
		return SamplePlan{}, fmt.Errorf("%w: %d iterations over %d samples leaves empty windows",
			ErrInvalidConfiguration, iterations, samples)
	}

	return plan, nil
}

// sample executes the warm-up phase and then the timed windows described by
// plan, returning one raw elapsed-nanosecond total per window.
//
// Every value fn produces, including error values, goes through BlackBox.
// A clock that fails to start aborts the run before the window is recorded;
// nothing is retried.
func sample[T any](fn func() T, plan SamplePlan, clock Clock) ([]uint64, error) {
	for i := uint64(0); i < plan.Warmup; i++ {
		result := fn()
		BlackBox(&result)
	}

	samples := make([]uint64, 0, plan.Samples)
	for s := uint64(0); s < plan.Samples; s++ {
		if err := clock.Start(); err != nil {
			if !errors.Is(err, ErrClockUnavailable) {
				err = fmt.Errorf("%w: %w", ErrClockUnavailable, err)
			}
			return nil, err
		}

		for i := uint64(0); i < plan.PerSample; i++ {
			result := fn()
			BlackBox(&result)
		}

		samples = append(samples, clock.ElapsedNanoseconds())
	}

	return samples, nil
}
