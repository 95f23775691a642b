package eval

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haasonsaas/matchbench/internal/dataset"
	"github.com/haasonsaas/matchbench/internal/observability"
	"github.com/haasonsaas/matchbench/internal/suite"
)

// Evaluator drives a candidate through a suite, one case at a time.
//
// Execution is strictly sequential: case i+1 begins only after case i is
// classified and aggregated, which keeps timing attributable and lets the
// accumulators go unlocked. The only suspension point is the per-query race
// between the candidate call and its deadline, inside the Adapter.
type Evaluator struct {
	adapter       *Adapter
	index         *dataset.Index
	log           *observability.Logger
	metrics       *observability.Metrics
	candidateName string
}

// Options configures an Evaluator.
type Options struct {
	// CandidateName is stamped into the report for attribution.
	CandidateName string

	// Logger defaults to a text logger on stderr.
	Logger *observability.Logger

	// Metrics, when set, receives per-case counters and latency samples.
	Metrics *observability.Metrics
}

// NewEvaluator creates an evaluator over a timeout-wrapped candidate and the
// dataset index used for validity checks.
func NewEvaluator(adapter *Adapter, index *dataset.Index, opts *Options) *Evaluator {
	e := &Evaluator{adapter: adapter, index: index, candidateName: "candidate"}
	if opts != nil {
		if opts.CandidateName != "" {
			e.candidateName = opts.CandidateName
		}
		e.log = opts.Logger
		e.metrics = opts.Metrics
	}
	if e.log == nil {
		e.log = observability.NewLogger(observability.LogConfig{})
	}
	return e
}

// Run evaluates every case of the suite in declaration order and returns the
// finalized report. The full case list is always drained: per-case candidate
// failures are recovered, classified as failures, and aggregated like any
// other case. Only pre-case conditions abort the run: a suite declaring a
// dataset other than the loaded one, or a failing candidate setup.
func (e *Evaluator) Run(ctx context.Context, s *suite.Suite) (*Report, error) {
	if s == nil {
		return nil, fmt.Errorf("suite is nil")
	}
	if e.index == nil {
		return nil, fmt.Errorf("dataset index is nil")
	}
	if s.Dataset != e.index.Name() {
		return nil, fmt.Errorf("suite %q declares dataset %q but %q is loaded", s.Name, s.Dataset, e.index.Name())
	}

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, observability.RunIDKey, runID)
	ctx = context.WithValue(ctx, observability.SuiteKey, s.Name)
	e.log.Info(ctx, "starting run",
		"candidate", e.candidateName,
		"cases", len(s.Cases),
		"timeout", e.adapter.Timeout().String())

	// Setup runs once, before any case, outside the timed region. Its
	// failure is fatal: no case has executed, so there is nothing partial
	// to report.
	if err := e.adapter.Setup(ctx, e.index.Path()); err != nil {
		return nil, err
	}

	var (
		agg    Aggregator
		timing TimingCollector
		cases  = make([]CaseReport, 0, len(s.Cases))
	)
	for i := range s.Cases {
		tc := &s.Cases[i]
		caseCtx := context.WithValue(ctx, observability.CaseIDKey, tc.ID)

		outcome := e.adapter.Invoke(caseCtx, tc.Query)
		cls := Classify(tc.ExpectedIDs, tc.FalsePositiveIDs, outcome.IDs, e.index)
		passed := outcome.RuntimeError == "" && cls.Clean()

		agg.Observe(cls, len(outcome.IDs), passed)
		timing.Record(outcome.Elapsed)
		e.observeCase(s.Name, outcome, cls)

		if outcome.RuntimeError != "" {
			e.log.Warn(caseCtx, "case failed at runtime", "status", outcome.Status, "error", outcome.RuntimeError)
		} else {
			e.log.Debug(caseCtx, "case evaluated", "passed", passed, "returned", len(outcome.IDs))
		}

		cases = append(cases, CaseReport{
			CaseID:         tc.ID,
			Query:          tc.Query,
			Status:         outcome.Status,
			Passed:         passed,
			ReturnedIDs:    outcome.IDs,
			Classification: cls,
			RuntimeError:   outcome.RuntimeError,
			ElapsedMs:      durationMs(outcome.Elapsed),
		})
	}

	// Cleanup failures cannot change the scored work, so they are logged
	// rather than returned.
	if err := e.adapter.Cleanup(ctx); err != nil {
		e.log.Warn(ctx, "candidate cleanup failed", "error", err)
	}

	report := &Report{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Suite:       s.Name,
		Dataset:     s.Dataset,
		Candidate:   e.candidateName,
		TimeoutMs:   durationMs(e.adapter.Timeout()),
		Summary:     agg.Finalize(),
		Timing:      timing.Stats(),
		Cases:       cases,
	}
	if e.metrics != nil {
		e.metrics.SuiteScore.WithLabelValues(s.Name).Set(report.Summary.Score)
	}
	e.log.Info(ctx, "run finished",
		"score", report.Summary.Score,
		"recall", report.Summary.Recall,
		"precision", report.Summary.Precision,
		"pass_cases", report.Summary.PassCases,
		"qps", report.Timing.QPS)
	return report, nil
}

func (e *Evaluator) observeCase(suiteName string, outcome Outcome, cls Classification) {
	if e.metrics == nil {
		return
	}
	e.metrics.CaseCounter.WithLabelValues(suiteName, string(outcome.Status)).Inc()
	e.metrics.SearchDuration.WithLabelValues(suiteName).Observe(outcome.Elapsed.Seconds())
	if n := len(cls.InvalidIDs); n > 0 {
		e.metrics.InvalidIDCounter.WithLabelValues(suiteName).Add(float64(n))
	}
}
