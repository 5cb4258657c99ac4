package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexshd/microbench"
)

const envPrefix = "MICROBENCH"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

// settings is the resolved configuration: flags over env over config file
// over defaults.
type settings struct {
	Iterations uint64
	Size       int
	LogLevel   string
}

func (a *app) settings() settings {
	return settings{
		Iterations: a.v.GetUint64("iterations"),
		Size:       a.v.GetInt("size"),
		LogLevel:   a.v.GetString("log_level"),
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "microbench",
		Short: "Micro-benchmark harness with warm-up, windowed sampling and speedup reports",
		Long: `microbench times small functions many times, guards every result against
dead-code elimination, and reports per-call mean, min, max, standard deviation
and coefficient of variation.

Build without -race and without -gcflags="-N -l"; instrumented binaries
measure the instrumentation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), a.settings().LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			slog.SetDefault(logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.Uint64("iterations", 10_000, "invocations per case")
	flags.Int("size", 10_000, "input size for data-dependent payloads")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	bindFlags(a.v, flags, map[string]string{
		"iterations": "iterations",
		"size":       "size",
		"log_level":  "log-level",
	})

	root.AddCommand(newRunCmd(a), newSweepCmd(a))
	return root
}

// bindFlags maps config keys to flag names. Unknown flags are a programming
// error.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// loadConfig reads the optional config file and enables MICROBENCH_* env
// overrides. A .env file in the working directory is loaded first if present.
func (a *app) loadConfig() error {
	_ = godotenv.Load()

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile == "" {
		return nil
	}

	a.v.SetConfigFile(a.cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: reading config %s: %v", microbench.ErrInvalidConfiguration, a.cfgFile, err)
	}
	return nil
}

// newLogger builds a tint console logger. Colour is only used on terminals.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", microbench.ErrInvalidConfiguration, level)
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	})), nil
}
