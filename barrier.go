package microbench

import "runtime"

// BlackBox forces *v to be treated as observed so the compiler cannot drop
// the computation that produced it, or hoist that computation out of a loop.
//
// It cannot be inlined, so the escape of v into an opaque call survives
// optimisation; runtime.KeepAlive pins the pointee until the call returns.
// It never fails and does not allocate.
//
//go:noinline
func BlackBox[T any](v *T) {
	runtime.KeepAlive(v)
}
