// Command microbench runs the built-in payload suite and scaling sweep on top
// of the microbench harness.
package main

import (
	"log/slog"
	"os"
)

var exit = os.Exit

func main() {
	exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		slog.Error("microbench failed", "err", err)
		return 1
	}
	return 0
}
