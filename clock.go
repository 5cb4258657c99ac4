package microbench

// Clock is a monotonic, high-resolution timer.
//
// Start may be called once per sample window; ElapsedNanoseconds reports the
// time since the most recent successful Start. A Clock is owned by a single
// benchmark call and is never shared or cached between calls.
type Clock interface {
	Start() error
	ElapsedNanoseconds() uint64
}

// ClockFactory builds a fresh Clock for one benchmark call.
type ClockFactory func() Clock

// NewMonotonicClock returns the platform's monotonic clock.
func NewMonotonicClock() Clock {
	return newPlatformClock()
}
