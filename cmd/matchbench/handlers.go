// handlers.go contains the run functions behind each cobra command.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haasonsaas/matchbench/internal/config"
	"github.com/haasonsaas/matchbench/internal/dataset"
	"github.com/haasonsaas/matchbench/internal/eval"
	"github.com/haasonsaas/matchbench/internal/observability"
	"github.com/haasonsaas/matchbench/internal/suite"
	"github.com/haasonsaas/matchbench/pkg/candidate"
)

type runOptions struct {
	configPath    string
	suitePath     string
	candidateName string
	candidateCmd  string
	datasetCSV    string
	timeoutMs     int
	verbose       bool
	output        string
	metricsListen string
}

func runRun(cmd *cobra.Command, opts runOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := observability.NewLogger(cfg.Logging)

	known := cfg.DatasetNames()
	if opts.datasetCSV != "" || len(known) == 0 {
		// Escape hatch: score against an explicit CSV, whatever the suite
		// declares.
		known = nil
	}
	s, err := suite.Load(opts.suitePath, known)
	if err != nil {
		return err
	}

	csvPath := opts.datasetCSV
	if csvPath == "" {
		csvPath = cfg.Datasets[s.Dataset]
	}
	if csvPath == "" {
		return fmt.Errorf("no CSV path configured for dataset %q (add it to datasets in the config, or pass --dataset-csv)", s.Dataset)
	}
	index, err := dataset.Load(s.Dataset, csvPath)
	if err != nil {
		return err
	}

	cand, candName, err := resolveCandidate(opts)
	if err != nil {
		return err
	}

	timeout := cfg.Timeout()
	if opts.timeoutMs > 0 {
		timeout = time.Duration(opts.timeoutMs) * time.Millisecond
	}

	metrics := observability.NewMetrics()
	listen := opts.metricsListen
	if listen == "" {
		listen = cfg.MetricsListen
	}
	if listen != "" {
		server := &http.Server{Addr: listen, Handler: metrics.Handler()}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error(cmd.Context(), "metrics listener failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	evaluator := eval.NewEvaluator(eval.NewAdapter(cand, timeout), index, &eval.Options{
		CandidateName: candName,
		Logger:        logger,
		Metrics:       metrics,
	})
	report, err := evaluator.Run(cmd.Context(), s)
	if err != nil {
		return err
	}

	if opts.output != "" {
		payload, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := os.WriteFile(opts.output, payload, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	renderReport(cmd.OutOrStdout(), report, opts.verbose)
	if opts.output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", opts.output)
	}
	return nil
}

// resolveCandidate picks the candidate implementation: an executable command
// line, or a registered in-process name.
func resolveCandidate(opts runOptions) (candidate.Candidate, string, error) {
	switch {
	case opts.candidateCmd != "" && opts.candidateName != "":
		return nil, "", fmt.Errorf("--candidate and --candidate-cmd are mutually exclusive")
	case opts.candidateCmd != "":
		parts := strings.Fields(opts.candidateCmd)
		if len(parts) == 0 {
			return nil, "", fmt.Errorf("--candidate-cmd is empty")
		}
		return candidate.NewCommand(parts[0], parts[1:]...), parts[0], nil
	case opts.candidateName != "":
		cand, err := candidate.Default.New(opts.candidateName)
		if err != nil {
			return nil, "", err
		}
		return cand, opts.candidateName, nil
	default:
		return nil, "", fmt.Errorf("a candidate is required (--candidate or --candidate-cmd)")
	}
}

func runSuiteValidate(cmd *cobra.Command, configPath, suitePath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	known := cfg.DatasetNames()
	if len(known) == 0 {
		// No datasets configured: validate structure and labels only.
		known = nil
	}
	s, err := suite.Load(suitePath, known)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "suite %q is valid: dataset=%s cases=%d\n", s.Name, s.Dataset, len(s.Cases))
	return nil
}

func runDatasetInfo(cmd *cobra.Command, configPath, name string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	csvPath, ok := cfg.Datasets[name]
	if !ok {
		return fmt.Errorf("dataset %q is not configured (known: %v)", name, cfg.DatasetNames())
	}
	index, err := dataset.Load(name, csvPath)
	if err != nil {
		return err
	}
	renderDatasetInfo(cmd.OutOrStdout(), index)
	return nil
}

func runCandidatesList(cmd *cobra.Command) error {
	names := candidate.Default.Names()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no in-process candidates registered")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
