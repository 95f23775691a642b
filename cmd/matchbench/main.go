// Package main provides the CLI entry point for matchbench, a benchmarking
// harness for pluggable name-matching search implementations.
//
// matchbench drives a candidate search function through labeled test suites
// and reports recall, precision, F1, a penalty-adjusted score, and latency
// statistics. The candidate is an external component: either an in-process
// implementation registered against pkg/candidate, or any executable obeying
// the subprocess contract.
//
// # Basic Usage
//
// Run a suite against an executable candidate:
//
//	matchbench run --suite suites/smoke.yaml --candidate-cmd "./mysearch"
//
// Validate a suite document without running it:
//
//	matchbench suite validate suites/smoke.yaml
//
// Inspect a configured dataset:
//
//	matchbench dataset info people
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Build information - populated by ldflags during build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	rootCmd := buildRootCmd()
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

// buildRootCmd creates the root command with all subcommands attached.
// Separated from main() to facilitate testing.
func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matchbench",
		Short: "matchbench - name-matching search benchmark harness",
		Long: `matchbench evaluates a pluggable name-matching search implementation
against labeled test suites, producing correctness metrics (recall,
precision, F1), a penalty-adjusted score, and latency statistics.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		buildRunCmd(),
		buildSuiteCmd(),
		buildDatasetCmd(),
		buildCandidatesCmd(),
	)

	return rootCmd
}
