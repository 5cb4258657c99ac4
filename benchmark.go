package microbench

import (
	"fmt"
	"log/slog"
	"time"
)

// Result is the per-invocation summary of one benchmark call.
// It is a value type and is never mutated after it is returned.
type Result struct {
	Iterations uint64 // Requested invocations represented by this result
	TotalNs    uint64 // Sum of raw window timings (diagnostic, not normalised)
	AvgNs      uint64 // Mean nanoseconds per invocation
	MinNs      uint64 // Best window, per invocation
	MaxNs      uint64 // Worst window, per invocation
	VarianceNs uint64 // Population variance per invocation (ns²)
}

// Avg returns AvgNs as a time.Duration.
func (r Result) Avg() time.Duration { return time.Duration(r.AvgNs) }

// Min returns MinNs as a time.Duration.
func (r Result) Min() time.Duration { return time.Duration(r.MinNs) }

// Max returns MaxNs as a time.Duration.
func (r Result) Max() time.Duration { return time.Duration(r.MaxNs) }

// String formats the result as "{avg} ns avg ({total} ns total, n={iterations})".
func (r Result) String() string {
	return fmt.Sprintf("%d ns avg (%d ns total, n=%d)", r.AvgNs, r.TotalNs, r.Iterations)
}

// config controls a single benchmark call. It is built fresh from options on
// every call; nothing is kept between calls.
type config struct {
	clock  ClockFactory
	logger *slog.Logger
}

// Option customises a benchmark call.
type Option func(*config)

// WithClock replaces the platform monotonic clock. The factory is invoked
// once per benchmark call.
func WithClock(factory ClockFactory) Option {
	return func(c *config) {
		if factory != nil {
			c.clock = factory
		}
	}
}

// WithLogger sets the logger used for debug output. Nothing is logged while
// a sample window is open.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		clock:  NewMonotonicClock,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Benchmark times fn over iterations invocations and returns per-invocation
// statistics. iterations must be at least 1.
//
// Errors wrap ErrInvalidConfiguration or ErrClockUnavailable. No partial
// result is returned on error.
func Benchmark[T any](fn func() T, iterations uint64, opts ...Option) (Result, error) {
	cfg := newConfig(opts)

	plan, err := PlanSamples(iterations)
	if err != nil {
		return Result{}, err
	}

	cfg.logger.Debug("benchmark plan",
		"iterations", plan.Iterations,
		"warmup", plan.Warmup,
		"samples", plan.Samples,
		"per_sample", plan.PerSample)

	samples, err := sample(fn, plan, cfg.clock())
	if err != nil {
		return Result{}, fmt.Errorf("sampling %d iterations: %w", iterations, err)
	}

	result, err := Aggregate(samples, plan.PerSample, plan.Iterations)
	if err != nil {
		return Result{}, err
	}

	cfg.logger.Debug("benchmark complete",
		"avg_ns", result.AvgNs,
		"min_ns", result.MinNs,
		"max_ns", result.MaxNs,
		"cv_pct", result.CV())

	return result, nil
}

// BenchmarkWithArg times fn(arg). The argument is captured once and reused
// for every invocation, so no per-call allocation leaks into the timings.
// Functions that mutate arg must tolerate repeated calls on the same value.
func BenchmarkWithArg[A, T any](fn func(A) T, arg A, iterations uint64, opts ...Option) (Result, error) {
	return Benchmark(func() T { return fn(arg) }, iterations, opts...)
}
