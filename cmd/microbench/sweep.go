package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alexshd/microbench"
	"github.com/alexshd/microbench/internal/payloads"
)

func newSweepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Measure how sum-of-slice scales with input size",
		Long: `Benchmarks SumSlice at size/100, size/10 and size elements and fits
avg_ns = C * size^k in log-log space. An O(n) function should give k close to 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings()
			if s.Size < 100 {
				return fmt.Errorf("%w: sweep needs size >= 100, got %d", microbench.ErrInvalidConfiguration, s.Size)
			}

			var points []microbench.SweepPoint[[]int]
			for _, n := range []int{s.Size / 100, s.Size / 10, s.Size} {
				points = append(points, microbench.SweepPoint[[]int]{Size: n, Arg: payloads.Ints(n, seed)})
			}

			a.logger.Info("running sweep",
				"points", len(points),
				"iterations", humanize.Comma(clampInt64(s.Iterations)))

			results, err := microbench.Sweep(payloads.SumSlice, points, s.Iterations, microbench.WithLogger(a.logger))
			if err != nil {
				return err
			}

			fit, err := microbench.FitScaling(results)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSweep(results))
			fmt.Fprintf(out, "exponent=%.3f r²=%.4f (%s)\n", fit.Exponent, fit.RSquared, classify(fit))
			return nil
		},
	}
}

// classify names the complexity class closest to the fitted exponent.
func classify(fit microbench.ScalingFit) string {
	tol := microbench.DefaultAssertionConfig().ScalingTolerance
	switch {
	case math.Abs(fit.Exponent) <= tol:
		return "constant"
	case math.Abs(fit.Exponent-1) <= tol:
		return "linear"
	case math.Abs(fit.Exponent-2) <= tol:
		return "quadratic"
	default:
		return "unclassified"
	}
}
