package microbench

import (
	"fmt"
	"math"
)

// Comparison describes how two results relate. It is derived on demand and
// holds plain values only; formatting is left to Report or the caller.
type Comparison struct {
	Faster         string  // Label of the result with the lower AvgNs
	Slower         string  // Label of the other result
	SpeedupRatio   float64 // Slower.AvgNs / Faster.AvgNs, always >= 1
	AbsoluteDiffNs uint64  // Slower.AvgNs - Faster.AvgNs
	PercentDiff    float64 // AbsoluteDiffNs as a percentage of Slower.AvgNs
}

// Compare determines which of two results is faster by mean per-invocation
// time. Ties report a = faster with a ratio of exactly 1.0.
//
// Swapping the arguments swaps the labels and leaves every number unchanged.
//
// Edge cases: a zero-time faster result against a non-zero slower one yields
// +Inf; two zero-time results compare as a tie.
func Compare(nameA string, a Result, nameB string, b Result) Comparison {
	fasterName, faster, slowerName, slower := nameA, a, nameB, b
	if b.AvgNs < a.AvgNs {
		fasterName, faster, slowerName, slower = nameB, b, nameA, a
	}

	diff := slower.AvgNs - faster.AvgNs

	var ratio float64
	switch {
	case diff == 0:
		ratio = 1.0
	case faster.AvgNs == 0:
		ratio = math.Inf(1)
	default:
		ratio = float64(slower.AvgNs) / float64(faster.AvgNs)
	}

	var percent float64
	if slower.AvgNs > 0 {
		percent = float64(diff) / float64(slower.AvgNs) * 100
	}

	return Comparison{
		Faster:         fasterName,
		Slower:         slowerName,
		SpeedupRatio:   ratio,
		AbsoluteDiffNs: diff,
		PercentDiff:    percent,
	}
}

// IsTie reports whether both results had the same mean.
func (c Comparison) IsTie() bool {
	return c.AbsoluteDiffNs == 0
}

// Report renders the comparison as a single line, for example
//
//	fast is 12.40x faster than slow (1134 ns/op, 91.9%)
func (c Comparison) Report() string {
	return fmt.Sprintf("%s is %.2fx faster than %s (%d ns/op, %.1f%%)",
		c.Faster, c.SpeedupRatio, c.Slower, c.AbsoluteDiffNs, c.PercentDiff)
}

// String implements fmt.Stringer with the short "{faster} is {ratio}x faster" form.
func (c Comparison) String() string {
	return fmt.Sprintf("%s is %.2fx faster", c.Faster, c.SpeedupRatio)
}
