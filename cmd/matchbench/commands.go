// commands.go contains all cobra command definitions and their flag
// configurations. Each command builder creates a command and wires it to its
// handler in handlers.go.
package main

import (
	"github.com/spf13/cobra"
)

// =============================================================================
// Run Command
// =============================================================================

// buildRunCmd creates the "run" command that evaluates a candidate against a
// suite. This is the primary command.
func buildRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a candidate against a labeled suite",
		Long: `Evaluate a candidate search implementation against a labeled suite.

The run:
1. Loads configuration and the suite's declared dataset (CSV)
2. Validates the suite document (schema, unique ids, disjoint labels)
3. Calls the candidate's setup once, untimed
4. Invokes search per case under the per-query timeout, sequentially
5. Classifies and aggregates every case, then calls cleanup once
6. Renders the summary, and per-case detail with --verbose`,
		Example: `  # Run against an executable candidate
  matchbench run --suite suites/smoke.yaml --candidate-cmd "./mysearch --index fast"

  # Run a registered in-process candidate with per-case detail
  matchbench run --suite suites/smoke.yaml --candidate substring --verbose

  # Write the full JSON report
  matchbench run --suite suites/smoke.yaml --candidate-cmd ./mysearch --output report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (default matchbench.yaml)")
	cmd.Flags().StringVar(&opts.suitePath, "suite", "", "Path to suite document (YAML/JSON/JSON5)")
	cmd.Flags().StringVar(&opts.candidateName, "candidate", "", "Registered in-process candidate name")
	cmd.Flags().StringVar(&opts.candidateCmd, "candidate-cmd", "", "Executable candidate command line")
	cmd.Flags().StringVar(&opts.datasetCSV, "dataset-csv", "", "CSV path for the suite's dataset, overriding config")
	cmd.Flags().IntVar(&opts.timeoutMs, "timeout", 0, "Per-query timeout in milliseconds (overrides config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Render per-case classification detail")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write full JSON report to file")
	cmd.Flags().StringVar(&opts.metricsListen, "metrics-listen", "", "Expose Prometheus metrics on this address during the run")
	cobra.CheckErr(cmd.MarkFlagRequired("suite"))

	return cmd
}

// =============================================================================
// Suite Commands
// =============================================================================

func buildSuiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Inspect and validate suite documents",
	}
	cmd.AddCommand(buildSuiteValidateCmd())
	return cmd
}

func buildSuiteValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate <suite-file>",
		Short: "Validate a suite document without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuiteValidate(cmd, configPath, args[0])
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default matchbench.yaml)")
	return cmd
}

// =============================================================================
// Dataset Commands
// =============================================================================

func buildDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect configured datasets",
	}
	cmd.AddCommand(buildDatasetInfoCmd())
	return cmd
}

func buildDatasetInfoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show a configured dataset's record count and sample rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetInfo(cmd, configPath, args[0])
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default matchbench.yaml)")
	return cmd
}

// =============================================================================
// Candidates Command
// =============================================================================

func buildCandidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List registered in-process candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCandidatesList(cmd)
		},
	}
	return cmd
}
