package microbench

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for measurement quality checks.
type AssertionConfig struct {
	// Maximum coefficient of variation in percent (CV > this value fails)
	MaxCV float64

	// Minimum speedup ratio for AssertFaster
	MinSpeedup float64

	// Allowed distance of the scaling exponent from 1.0 for AssertLinearScaling
	ScalingTolerance float64

	// Minimum R² of a scaling fit
	MinRSquared float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxCV:            10.0, // 10% spread
		MinSpeedup:       1.0,  // Any strict win
		ScalingTolerance: 0.35, // Exponent within [0.65, 1.35]
		MinRSquared:      0.90, // 90% of log-log variance explained
	}
}

// AssertResultInvariants verifies the structural properties every Result
// must satisfy: at least one iteration and MinNs <= AvgNs <= MaxNs.
func AssertResultInvariants(t testing.TB, r Result) {
	t.Helper()

	if r.Iterations == 0 {
		t.Errorf("Result has zero iterations: %+v", r)
	}

	if r.MinNs > r.AvgNs || r.AvgNs > r.MaxNs {
		t.Errorf("Ordering violated: min=%d avg=%d max=%d (want min <= avg <= max)",
			r.MinNs, r.AvgNs, r.MaxNs)
		return
	}

	if r.MinNs == r.MaxNs && r.VarianceNs != 0 {
		t.Errorf("Identical windows but variance=%d", r.VarianceNs)
	}

	t.Logf("✓ Invariants hold: min=%d ≤ avg=%d ≤ max=%d ns, var=%d ns²",
		r.MinNs, r.AvgNs, r.MaxNs, r.VarianceNs)
}

// AssertStable verifies the coefficient of variation is within cfg.MaxCV.
//
// A single-window result always has CV = 0 and passes; that says nothing
// about stability.
func AssertStable(t testing.TB, r Result, cfg AssertionConfig) {
	t.Helper()

	cv := r.CV()
	if cv > cfg.MaxCV {
		t.Errorf("Measurement too noisy: CV = %.2f%% (max: %.2f%%)\n"+
			"Raise iterations or run on a quieter machine.",
			cv, cfg.MaxCV)
		return
	}

	t.Logf("✓ Stable: CV = %.2f%% (threshold: %.2f%%)", cv, cfg.MaxCV)
}

// AssertFaster verifies that name won the comparison by at least cfg.MinSpeedup.
func AssertFaster(t testing.TB, c Comparison, name string, cfg AssertionConfig) {
	t.Helper()

	if c.Faster != name {
		t.Errorf("Expected %q to be faster, but %s", name, c.Report())
		return
	}

	if c.IsTie() || c.SpeedupRatio < cfg.MinSpeedup {
		t.Errorf("Speedup too small: %.2fx (min: %.2fx)", c.SpeedupRatio, cfg.MinSpeedup)
		return
	}

	t.Logf("✓ %s", c.Report())
}

// AssertLinearScaling verifies an O(n) payload: 10x the input should cost
// roughly 10x the time, i.e. the fitted exponent is close to 1.
//
// Mathematical property:
//
//	avg(k·n) / avg(n) ≈ k   ⇔   |Exponent - 1| ≤ tolerance
func AssertLinearScaling(t testing.TB, fit ScalingFit, cfg AssertionConfig) {
	t.Helper()

	if math.Abs(fit.Exponent-1) > cfg.ScalingTolerance {
		t.Errorf("Scaling not linear: exponent = %.3f (want 1 ± %.2f), R² = %.4f",
			fit.Exponent, cfg.ScalingTolerance, fit.RSquared)
		return
	}

	if fit.RSquared < cfg.MinRSquared {
		t.Errorf("Poor scaling fit: R² = %.4f (min: %.4f)\n"+
			"Power-law model doesn't explain the data. Check for measurement noise.",
			fit.RSquared, cfg.MinRSquared)
		return
	}

	t.Logf("✓ Linear scaling: exponent = %.3f, R² = %.4f", fit.Exponent, fit.RSquared)
}

// PrintAnalysis outputs a result table and the suite comparisons to the test log.
func PrintAnalysis(t testing.TB, report SuiteReport) {
	t.Helper()

	t.Logf("\n=== Benchmark Analysis ===")
	t.Logf("  %-20s %12s %12s %12s %8s", "Case", "Avg ns", "Min ns", "Max ns", "CV")
	t.Logf("  %-20s %12s %12s %12s %8s", "----", "------", "------", "------", "--")
	for _, nr := range report.Results {
		r := nr.Result
		t.Logf("  %-20s %12d %12d %12d %7.2f%%", nr.Name, r.AvgNs, r.MinNs, r.MaxNs, r.CV())
	}

	if len(report.Comparisons) == 0 {
		return
	}

	t.Logf("\nComparisons:")
	for _, c := range report.Comparisons {
		t.Logf("  %s", c.Report())
	}

	t.Logf("\nInterpretation:")
	for _, nr := range report.Results {
		cv := nr.Result.CV()
		switch {
		case nr.Result.MinNs == nr.Result.MaxNs && nr.Result.VarianceNs == 0:
			t.Logf("  ? %s: no spread observed (single window or identical windows)", nr.Name)
		case cv < 1:
			t.Logf("  ✓ %s: very stable (CV < 1%%)", nr.Name)
		case cv < 5:
			t.Logf("  ✓ %s: usable for comparisons (CV < 5%%)", nr.Name)
		case cv < 10:
			t.Logf("  ⚠ %s: moderate noise (CV < 10%%)", nr.Name)
		default:
			t.Logf("  ✗ %s: noisy (CV ≥ 10%%) - rerun or raise iterations", nr.Name)
		}
	}
}
