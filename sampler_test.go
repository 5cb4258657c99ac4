package microbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlanSamples verifies warm-up and window partitioning at the boundaries.
func TestPlanSamples(t *testing.T) {
	tests := []struct {
		name       string
		iterations uint64
		want       SamplePlan
	}{
		{"single call", 1, SamplePlan{Iterations: 1, Warmup: 0, Samples: 1, PerSample: 1}},
		{"below one window", 99, SamplePlan{Iterations: 99, Warmup: 9, Samples: 1, PerSample: 99}},
		{"exactly one window", 100, SamplePlan{Iterations: 100, Warmup: 10, Samples: 1, PerSample: 100}},
		{"two windows", 250, SamplePlan{Iterations: 250, Warmup: 25, Samples: 2, PerSample: 125}},
		{"ten windows", 1000, SamplePlan{Iterations: 1000, Warmup: 100, Samples: 10, PerSample: 100}},
		{"uneven remainder", 1005, SamplePlan{Iterations: 1005, Warmup: 100, Samples: 10, PerSample: 100}},
		{"clamped", 10_000, SamplePlan{Iterations: 10_000, Warmup: 100, Samples: 10, PerSample: 1000}},
		{"huge", math.MaxUint64, SamplePlan{Iterations: math.MaxUint64, Warmup: 100, Samples: 10, PerSample: math.MaxUint64 / 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanSamples(tt.iterations)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan)
		})
	}
}

// TestPlanSamples_SingleWindowBelow100 verifies iterations 1..99 always use one window.
func TestPlanSamples_SingleWindowBelow100(t *testing.T) {
	for n := uint64(1); n < 100; n++ {
		plan, err := PlanSamples(n)
		require.NoError(t, err)
		require.Equal(t, uint64(1), plan.Samples, "iterations=%d", n)
		require.Equal(t, n, plan.PerSample, "iterations=%d", n)
		require.NotZero(t, plan.PerSample)
	}
}

// TestPlanSamples_Zero verifies zero iterations is rejected.
func TestPlanSamples_Zero(t *testing.T) {
	_, err := PlanSamples(0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

// TestSample_InvocationCounts verifies warm-up plus timed calls and one Start per window.
func TestSample_InvocationCounts(t *testing.T) {
	tests := []struct {
		iterations uint64
		wantCalls  uint64
	}{
		{1, 1},
		{50, 5 + 50},
		{1000, 100 + 1000},
		{1005, 100 + 1000},
		{5000, 100 + 5000},
	}

	for _, tt := range tests {
		plan, err := PlanSamples(tt.iterations)
		require.NoError(t, err)

		factory, _, made := newStepClock(1)
		clock := factory()

		var calls uint64
		samples, err := sample(func() uint64 { calls++; return calls }, plan, clock)
		require.NoError(t, err)

		assert.Equal(t, tt.wantCalls, calls, "iterations=%d", tt.iterations)
		assert.Len(t, samples, int(plan.Samples))
		assert.Equal(t, int(plan.Samples), (*made)[0].starts)
	}
}

// TestSample_WarmupIsUntimed verifies warm-up work never lands in a window.
func TestSample_WarmupIsUntimed(t *testing.T) {
	plan, err := PlanSamples(1000)
	require.NoError(t, err)

	factory, units, _ := newStepClock(7)
	samples, err := sample(func() uint64 { *units++; return *units }, plan, factory())
	require.NoError(t, err)

	for i, s := range samples {
		assert.Equal(t, plan.PerSample*7, s, "window %d", i)
	}
}

// TestSample_ClockFailureBeforeAnySample verifies no timed call runs once Start fails.
func TestSample_ClockFailureBeforeAnySample(t *testing.T) {
	plan, err := PlanSamples(1000)
	require.NoError(t, err)

	var calls uint64
	samples, err := sample(func() uint64 { calls++; return calls }, plan, failingClock{err: ErrClockUnavailable})

	assert.ErrorIs(t, err, ErrClockUnavailable)
	assert.Nil(t, samples)
	assert.Equal(t, plan.Warmup, calls, "only warm-up calls may run")
}
