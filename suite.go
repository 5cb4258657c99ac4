package microbench

import (
	"fmt"
)

// Case is a named function under test, bound to its argument (if any) at
// construction time.
type Case struct {
	Name string
	run  func(iterations uint64, opts ...Option) (Result, error)
}

// NewCase wraps a nullary function as a suite case.
func NewCase[T any](name string, fn func() T) Case {
	return Case{
		Name: name,
		run: func(iterations uint64, opts ...Option) (Result, error) {
			return Benchmark(fn, iterations, opts...)
		},
	}
}

// NewCaseWithArg wraps a unary function as a suite case. arg is captured
// once and reused for every invocation of every run.
func NewCaseWithArg[A, T any](name string, fn func(A) T, arg A) Case {
	return Case{
		Name: name,
		run: func(iterations uint64, opts ...Option) (Result, error) {
			return BenchmarkWithArg(fn, arg, iterations, opts...)
		},
	}
}

// NamedResult pairs a case name with its result.
type NamedResult struct {
	Name   string
	Result Result
}

// SuiteReport contains the results of every case, in registration order,
// and one Comparison per registered pair.
type SuiteReport struct {
	Results     []NamedResult
	Comparisons []Comparison
}

// Lookup returns the result recorded for name.
func (r SuiteReport) Lookup(name string) (Result, bool) {
	for _, nr := range r.Results {
		if nr.Name == name {
			return nr.Result, true
		}
	}
	return Result{}, false
}

// Suite runs a fixed set of cases one after another and compares the pairs
// registered with Compare. A Suite only holds case definitions; results live
// in the SuiteReport returned by Run.
//
// A Suite is not safe for concurrent mutation. Run never executes two cases
// at once.
type Suite struct {
	cases []Case
	index map[string]int
	pairs [][2]string
}

// NewSuite creates an empty suite.
func NewSuite() *Suite {
	return &Suite{
		index: make(map[string]int),
	}
}

// Add registers a case. Names must be non-empty and unique.
func (s *Suite) Add(c Case) error {
	if c.Name == "" {
		return fmt.Errorf("%w: case name must not be empty", ErrInvalidConfiguration)
	}
	if c.run == nil {
		return fmt.Errorf("%w: case %q has no function (use NewCase)", ErrInvalidConfiguration, c.Name)
	}
	if _, exists := s.index[c.Name]; exists {
		return fmt.Errorf("%w: duplicate case %q", ErrInvalidConfiguration, c.Name)
	}

	s.index[c.Name] = len(s.cases)
	s.cases = append(s.cases, c)
	return nil
}

// Compare registers a pair of already added cases to be compared after Run.
func (s *Suite) Compare(a, b string) error {
	for _, name := range []string{a, b} {
		if _, ok := s.index[name]; !ok {
			return fmt.Errorf("%w: unknown case %q", ErrInvalidConfiguration, name)
		}
	}
	s.pairs = append(s.pairs, [2]string{a, b})
	return nil
}

// Len returns the number of registered cases.
func (s *Suite) Len() int {
	return len(s.cases)
}

// Run benchmarks every case with the same iteration count and options.
// The first failing case aborts the run; no partial report is returned.
func (s *Suite) Run(iterations uint64, opts ...Option) (SuiteReport, error) {
	if len(s.cases) == 0 {
		return SuiteReport{}, fmt.Errorf("%w: suite has no cases", ErrInvalidConfiguration)
	}

	logger := newConfig(opts).logger
	report := SuiteReport{
		Results: make([]NamedResult, 0, len(s.cases)),
	}

	for _, c := range s.cases {
		logger.Debug("running case", "case", c.Name, "iterations", iterations)

		result, err := c.run(iterations, opts...)
		if err != nil {
			return SuiteReport{}, fmt.Errorf("case %q: %w", c.Name, err)
		}
		report.Results = append(report.Results, NamedResult{Name: c.Name, Result: result})
	}

	for _, p := range s.pairs {
		a := report.Results[s.index[p[0]]]
		b := report.Results[s.index[p[1]]]
		report.Comparisons = append(report.Comparisons, Compare(a.Name, a.Result, b.Name, b.Result))
	}

	return report, nil
}
