package microbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuite_Run verifies cases run in order and registered pairs are compared.
func TestSuite_Run(t *testing.T) {
	factory, units, _ := newStepClock(1)

	cheap := func() uint64 { *units++; return *units }
	costly := func(n uint64) uint64 { *units += n; return *units }

	s := NewSuite()
	require.NoError(t, s.Add(NewCase("cheap", cheap)))
	require.NoError(t, s.Add(NewCaseWithArg("costly", costly, uint64(8))))
	require.NoError(t, s.Compare("costly", "cheap"))
	assert.Equal(t, 2, s.Len())

	report, err := s.Run(1000, WithClock(factory))
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "cheap", report.Results[0].Name)
	assert.Equal(t, "costly", report.Results[1].Name)
	assert.Equal(t, uint64(1), report.Results[0].Result.AvgNs)
	assert.Equal(t, uint64(8), report.Results[1].Result.AvgNs)

	require.Len(t, report.Comparisons, 1)
	c := report.Comparisons[0]
	assert.Equal(t, "cheap", c.Faster)
	assert.InDelta(t, 8.0, c.SpeedupRatio, 1e-12)

	r, ok := report.Lookup("costly")
	assert.True(t, ok)
	assert.Equal(t, uint64(8), r.AvgNs)

	_, ok = report.Lookup("missing")
	assert.False(t, ok)

	PrintAnalysis(t, report)
}

// TestSuite_Registration verifies invalid registrations are rejected.
func TestSuite_Registration(t *testing.T) {
	s := NewSuite()
	fn := func() int { return 1 }

	require.NoError(t, s.Add(NewCase("a", fn)))

	assert.ErrorIs(t, s.Add(NewCase("a", fn)), ErrInvalidConfiguration, "duplicate")
	assert.ErrorIs(t, s.Add(NewCase("", fn)), ErrInvalidConfiguration, "empty name")
	assert.ErrorIs(t, s.Add(Case{Name: "bare"}), ErrInvalidConfiguration, "no function")
	assert.ErrorIs(t, s.Compare("a", "b"), ErrInvalidConfiguration, "unknown pair member")
	assert.Equal(t, 1, s.Len())
}

// TestSuite_RunErrors verifies empty suites and failing cases abort without partial output.
func TestSuite_RunErrors(t *testing.T) {
	_, err := NewSuite().Run(100)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	s := NewSuite()
	require.NoError(t, s.Add(NewCase("only", func() int { return 1 })))

	report, err := s.Run(0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), `case "only"`)
	assert.Empty(t, report.Results)

	failing := func() Clock { return failingClock{err: ErrClockUnavailable} }
	_, err = s.Run(100, WithClock(failing))
	assert.ErrorIs(t, err, ErrClockUnavailable)
}
