//go:build !linux

package microbench

import "time"

// runtimeClock uses the monotonic reading carried by time.Time.
// It cannot fail to start.
type runtimeClock struct {
	start time.Time
}

func newPlatformClock() Clock {
	return &runtimeClock{}
}

func (c *runtimeClock) Start() error {
	c.start = time.Now()
	return nil
}

func (c *runtimeClock) ElapsedNanoseconds() uint64 {
	elapsed := time.Since(c.start)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed)
}
