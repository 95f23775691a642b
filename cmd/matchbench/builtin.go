// builtin.go registers baseline candidates. Baselines are scoring floors for
// sanity-checking suites and the harness itself, not search implementations.
package main

import (
	"context"

	"github.com/haasonsaas/matchbench/pkg/candidate"
)

// noopCandidate returns no results for every query: recall 0, precision 0,
// score 0 on any suite with expectations. A suite where the noop baseline
// scores above zero has no expectations and is probably mislabeled.
type noopCandidate struct{}

func (noopCandidate) Search(ctx context.Context, query string) ([]string, error) {
	return nil, nil
}

func init() {
	mustRegister(candidate.Register("noop", func() (candidate.Candidate, error) {
		return noopCandidate{}, nil
	}))
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}
