// Package microbench is a micro-benchmark harness that defends its numbers
// against dead-code elimination, cold caches, and sampling noise.
//
// # Overview
//
// The harness times a callable many times and reduces the raw timings to
// per-invocation statistics (mean, min, max, variance, coefficient of
// variation). Two results can be compared to get a speedup ratio.
//
// Execution of a single benchmark is strictly synchronous and
// single-threaded:
//
//	warm-up   min(iterations/10, 100) untimed calls
//	sampling  clamp(iterations/100, 1, 10) timed windows, iterations/samples calls each
//	reduction population statistics normalised to one call
//
// CRITICAL: Results depend on the build. Binaries built with
// -gcflags=all="-N -l" or with -race measure the instrumentation, not the
// code under test.
//
// # Architecture
//
// The package components:
//
//   - Clock       - monotonic timer, fails with ErrClockUnavailable
//   - BlackBox    - optimisation barrier applied to every result
//   - Sampler     - warm-up plus timed windows (PlanSamples)
//   - Aggregate   - per-invocation statistics from raw windows
//   - Compare     - speedup ratio between two results
//   - Suite       - named cases run in order, with registered pairs
//   - Sweep       - one function across growing inputs (FitScaling)
//   - assertions  - test helpers for result invariants and scaling
//
// # Quick Start
//
//	fast, err := microbench.Benchmark(func() int { return 42 }, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data := make([]int, 10_000)
//	slow, err := microbench.BenchmarkWithArg(sum, data, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cmp := microbench.Compare("fast", fast, "slow", slow)
//	fmt.Println(cmp) // fast is 3120.55x faster
//
// # Statistics
//
// Each raw sample covers PerSample invocations. Averages and extremes are
// divided by PerSample; variance is divided by PerSample². That scaling
// assumes independent per-call costs inside a window, so it is an
// approximation that underestimates spread when calls are correlated.
//
// With fewer than 100 iterations there is a single window and the variance
// is zero. Treat that as unknown confidence, not as a perfectly stable
// measurement.
//
// # Coefficient of Variation
//
// Result.CV reports the standard deviation as a percentage of the mean:
//   - CV < 1%:  very stable
//   - CV < 5%:  usable for comparisons
//   - CV ≥ 10%: noisy, rerun on a quieter machine or raise iterations
//
// # Concurrency
//
// The harness keeps no global state; every call owns its clock and its
// samples, so calling it from several goroutines is memory safe. It is not
// measurement safe: concurrent benchmarks on one machine skew each other's
// caches and frequency scaling. Serialising runs is the caller's decision.
//
// # Testing
//
//	func TestSum(t *testing.T) {
//	    r, err := microbench.BenchmarkWithArg(sum, data, 1000)
//	    require.NoError(t, err)
//	    microbench.AssertResultInvariants(t, r)
//	}
package microbench
