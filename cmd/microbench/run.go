package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/microbench"
	"github.com/alexshd/microbench/internal/payloads"
)

const (
	fibN      = 20
	seed      = 42
	logEveryN = 100
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the built-in payload suite and print speedups",
		Long: `Runs every built-in payload with the same iteration count, in order,
then compares the registered pairs.

Quadratic payloads (bubble sort) use size/100 elements so a default run
finishes in seconds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings()
			if s.Size < 1 {
				return fmt.Errorf("%w: size must be at least 1, got %d", microbench.ErrInvalidConfiguration, s.Size)
			}

			suite, err := buildSuite(s.Size)
			if err != nil {
				return err
			}

			a.logger.Info("running suite",
				"cases", suite.Len(),
				"iterations", humanize.Comma(clampInt64(s.Iterations)),
				"size", humanize.Comma(int64(s.Size)))

			report, err := suite.Run(s.Iterations, microbench.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderResults(report.Results))
			for _, c := range report.Comparisons {
				fmt.Fprintln(out, c.String())
			}
			return nil
		},
	}
}

// buildSuite registers the payload cases. Inputs are generated once here and
// reused for every invocation.
func buildSuite(size int) (*microbench.Suite, error) {
	ints := payloads.Ints(size, seed)
	small := payloads.Ints(max(size/100, 16), seed)
	data := payloads.Bytes(size, seed)
	search := payloads.WorstCaseSearch(size)
	sampled := payloads.NewSampledLogger(
		slog.New(tint.NewHandler(io.Discard, &tint.Options{NoColor: true})), logEveryN)

	suite := microbench.NewSuite()
	cases := []microbench.Case{
		microbench.NewCase("const", func() int { return 42 }),
		microbench.NewCaseWithArg("sum/slice", payloads.SumSlice, ints),
		microbench.NewCaseWithArg("fib/recursive", payloads.FibRecursive, fibN),
		microbench.NewCaseWithArg("fib/iterative", payloads.FibIterative, fibN),
		microbench.NewCaseWithArg("sort/bubble", payloads.BubbleSort, small),
		microbench.NewCaseWithArg("sort/std", payloads.StdSort, small),
		microbench.NewCaseWithArg("hash/xxhash", payloads.HashXX, data),
		microbench.NewCaseWithArg("hash/fnv", payloads.HashFNV, data),
		microbench.NewCaseWithArg("search/naive", payloads.NaiveSearch, search),
		microbench.NewCaseWithArg("search/std", payloads.StdSearch, search),
		microbench.NewCase("log/sampled", func() bool { return sampled.Log("tick") }),
	}
	for _, c := range cases {
		if err := suite.Add(c); err != nil {
			return nil, err
		}
	}

	pairs := [][2]string{
		{"const", "sum/slice"},
		{"fib/iterative", "fib/recursive"},
		{"sort/std", "sort/bubble"},
		{"hash/xxhash", "hash/fnv"},
		{"search/std", "search/naive"},
	}
	for _, p := range pairs {
		if err := suite.Compare(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return suite, nil
}
