package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/microbench"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunCmd(t *testing.T) {
	out, logs, err := execute(t, "run", "--iterations", "200", "--size", "256")
	require.NoError(t, err)

	for _, name := range []string{"const", "sum/slice", "fib/recursive", "sort/bubble", "hash/xxhash", "search/naive", "log/sampled"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "CASE")
	assert.Contains(t, out, "ITERATIONS")
	assert.Contains(t, out, "fib/iterative is")
	assert.Contains(t, out, "x faster")
	assert.Contains(t, logs, "running suite")
	assert.Contains(t, logs, "cases=11")
}

func TestRunCmd_DebugLogging(t *testing.T) {
	_, logs, err := execute(t, "run", "--iterations", "100", "--size", "64", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, logs, "benchmark plan")
	assert.Contains(t, logs, "case=fib/recursive")
}

func TestRunCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero iterations", []string{"run", "--iterations", "0", "--size", "64"}},
		{"zero size", []string{"run", "--iterations", "100", "--size", "0"}},
		{"bad log level", []string{"run", "--log-level", "loud"}},
		{"sweep too small", []string{"sweep", "--iterations", "100", "--size", "50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, microbench.ErrInvalidConfiguration)
			assert.Empty(t, out, "no partial report on error")
		})
	}
}

func TestSweepCmd(t *testing.T) {
	out, _, err := execute(t, "sweep", "--iterations", "100", "--size", "1000")
	require.NoError(t, err)

	assert.Contains(t, out, "SIZE")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "exponent=")
	assert.Contains(t, out, "r²=")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "microbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 0\nsize: 64\n"), 0o600))

	_, _, err := execute(t, "run", "--config", path)
	assert.ErrorIs(t, err, microbench.ErrInvalidConfiguration)

	// Flags win over the file.
	out, _, err := execute(t, "run", "--config", path, "--iterations", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "sum/slice")
}

func TestConfigFile_Missing(t *testing.T) {
	_, _, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, microbench.ErrInvalidConfiguration)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MICROBENCH_ITERATIONS", "0")
	t.Setenv("MICROBENCH_SIZE", "64")

	_, _, err := execute(t, "run")
	assert.ErrorIs(t, err, microbench.ErrInvalidConfiguration)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		exponent float64
		want     string
	}{
		{0.05, "constant"},
		{0.98, "linear"},
		{2.1, "quadratic"},
		{3.0, "unclassified"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(microbench.ScalingFit{Exponent: tt.exponent}), "exponent %.2f", tt.exponent)
	}
}

// TestMain_ExitCode verifies a harness error exits non-zero and success exits zero.
func TestMain_ExitCode(t *testing.T) {
	origExit, origArgs := exit, os.Args
	t.Cleanup(func() { exit, os.Args = origExit, origArgs })

	var code int
	exit = func(c int) { code = c }

	os.Args = []string{"microbench", "run", "--iterations", "0", "--size", "64"}
	code = -1
	main()
	assert.Equal(t, 1, code)

	os.Args = []string{"microbench", "run", "--iterations", "100", "--size", "64", "--log-level", "error"}
	code = -1
	main()
	assert.Equal(t, 0, code)
}
