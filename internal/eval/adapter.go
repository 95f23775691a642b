package eval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haasonsaas/matchbench/pkg/candidate"
)

// Adapter invokes a candidate's search under a per-query deadline and
// normalizes its output.
//
// The deadline is enforced by racing the candidate call against a timer.
// The candidate receives a context carrying the same deadline, so a
// cooperative implementation stops on its own; one that ignores cancellation
// is abandoned: its goroutine parks on a buffered channel and its late
// result is never observed by this or any future case.
type Adapter struct {
	candidate candidate.Candidate
	timeout   time.Duration
}

// DefaultTimeout bounds a single search call when no timeout is configured.
const DefaultTimeout = 2 * time.Second

// NewAdapter wraps a candidate with a per-query timeout. A non-positive
// timeout falls back to DefaultTimeout.
func NewAdapter(c candidate.Candidate, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter{candidate: c, timeout: timeout}
}

// Timeout returns the per-query deadline.
func (a *Adapter) Timeout() time.Duration { return a.timeout }

// Setup runs the candidate's setup phase, if it has one. Called exactly once
// before the first case, outside the timed region.
func (a *Adapter) Setup(ctx context.Context, datasetPath string) error {
	s, ok := a.candidate.(candidate.SetupCandidate)
	if !ok {
		return nil
	}
	if err := s.Setup(ctx, datasetPath); err != nil {
		return fmt.Errorf("candidate setup: %w", err)
	}
	return nil
}

// Cleanup runs the candidate's cleanup phase, if it has one. Called exactly
// once after the last case, outside the timed region.
func (a *Adapter) Cleanup(ctx context.Context) error {
	c, ok := a.candidate.(candidate.CleanupCandidate)
	if !ok {
		return nil
	}
	if err := c.Cleanup(ctx); err != nil {
		return fmt.Errorf("candidate cleanup: %w", err)
	}
	return nil
}

type searchResult struct {
	ids []string
	err error
}

// Invoke runs one search call under the deadline. Whichever of
// {candidate settles, deadline elapses} happens first decides the outcome;
// the loser is discarded. Errors and timeouts collapse to the same shape:
// empty id list, runtime error recorded.
func (a *Adapter) Invoke(ctx context.Context, query string) Outcome {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// Buffer of one: the abandoned send after a timeout must not block.
	resultCh := make(chan searchResult, 1)
	start := time.Now()
	go func() {
		ids, err := a.candidate.Search(callCtx, query)
		resultCh <- searchResult{ids: ids, err: err}
	}()

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case r := <-resultCh:
		elapsed := time.Since(start)
		if r.err != nil {
			return Outcome{Status: StatusErrored, RuntimeError: r.err.Error(), Elapsed: elapsed}
		}
		return Outcome{Status: StatusCompleted, IDs: Normalize(r.ids), Elapsed: elapsed}
	case <-timer.C:
		return Outcome{
			Status:       StatusTimedOut,
			RuntimeError: fmt.Sprintf("search timed out after %s", a.timeout),
			Elapsed:      time.Since(start),
		}
	}
}

// Normalize canonicalizes a candidate's raw id list: each element is
// trimmed, empties are dropped, and duplicates are removed keeping the first
// occurrence. Insertion order is preserved. This protects the classifier
// from double-counting.
func Normalize(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
