// SPDX-License-Identifier: MIT

// Package cli implements the algokit command-line interface.
//
// The CLI is a thin caller of the algorithm packages: it builds inputs
// (explicit values, generated data or a TOML graph file), runs the selected
// algorithm through an instrumented decorator and prints the result.
//
// # Commands
//
//   - sort:     bubble, quick or merge sort
//   - search:   linear or binary search
//   - dijkstra: shortest distances from a source vertex
//   - demo:     every algorithm on generated data
//
// # Logging
//
// Every command logs one timing line per algorithm call through
// charmbracelet/log on stderr. --verbose switches to debug level. Each run
// carries a "run" field with a fresh UUID.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/instrument"
	"github.com/katalvlaran/algokit/internal/config"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// app is the per-invocation state shared by all commands.
type app struct {
	cfg      config.Config
	out      io.Writer
	logger   *charmlog.Logger
	registry *prometheus.Registry
	reporter instrument.Reporter
	metrics  bool
}

// Execute runs the algokit CLI with the process's stdout and stderr.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing results to stdout and logs
// to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout}
	var (
		verbose bool
		envFile string
	)

	root := &cobra.Command{
		Use:           "algokit",
		Short:         "Classic sorting, searching and shortest-path algorithms",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if !cmd.Flags().Changed("metrics") {
				a.metrics = cfg.Metrics
			}

			level, _ := cfg.Level()
			if verbose {
				level = charmlog.DebugLevel
			}
			a.logger = newLogger(stderr, level).With("run", uuid.NewString())
			a.registry = prometheus.NewRegistry()
			a.reporter = instrument.Multi(
				instrument.NewLogReporter(a.logger),
				instrument.NewPrometheusReporter(a.registry),
			)
			a.logger.Debug("configuration loaded", "seed", cfg.Seed, "size", cfg.Size, "pivot", cfg.Pivot)

			cmd.SetContext(withLogger(cmd.Context(), a.logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.metrics {
				return nil
			}
			return writeMetrics(a.out, a.registry)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("algokit {{.Version}}\n")
	if commit != "" {
		root.SetVersionTemplate("algokit {{.Version}} (" + commit + ")\n")
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with ALGOKIT_* settings")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics after the command")

	root.AddCommand(newSortCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newDijkstraCmd(a))
	root.AddCommand(newDemoCmd(a))

	return root
}

// stringSetting returns the flag value if it was set explicitly, otherwise fallback.
func stringSetting(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

// intSetting is stringSetting for int flags.
func intSetting(cmd *cobra.Command, name string, fallback int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return fallback
}

// sizeSetting is intSetting for the --size flag; negative sizes are rejected.
func sizeSetting(cmd *cobra.Command, fallback int) (int, error) {
	n := intSetting(cmd, "size", fallback)
	if n < 0 {
		return 0, fmt.Errorf("--size must be non-negative, got %d", n)
	}
	return n, nil
}
