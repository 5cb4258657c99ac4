package microbench

import "errors"

var (
	// ErrInvalidConfiguration reports a benchmark request that cannot be
	// sampled: zero iterations, an empty sample set, or a zero-sized window.
	ErrInvalidConfiguration = errors.New("invalid benchmark configuration")

	// ErrClockUnavailable reports that the high-resolution timer could not
	// be started. It is fatal to the current benchmark and never retried.
	ErrClockUnavailable = errors.New("clock unavailable")
)
