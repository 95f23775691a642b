// Package candidate defines the contract a name-matching search
// implementation must satisfy to be benchmarked by matchbench.
//
// A candidate exposes a single required operation, Search, which takes a
// query string and returns the identifiers of the dataset records it
// considers matches. Implementations that need to index the dataset before
// the first query, or release resources after the last one, additionally
// implement the optional Setup and Cleanup interfaces. The harness calls
// Setup exactly once before the first case and Cleanup exactly once after
// the last; neither call counts toward latency statistics.
//
// Candidates may live in-process (registered through Register) or out of
// process as an executable driven by Command.
package candidate

import "context"

// Candidate is the required search surface of a benchmarked implementation.
//
// Search must honor ctx: the harness attaches a per-query deadline, and a
// well-behaved candidate returns promptly once the deadline passes. A
// candidate that ignores cancellation is abandoned by the harness and leaks
// its goroutine for the remainder of the process.
type Candidate interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// SetupCandidate is implemented by candidates that index the dataset before
// the first query. The dataset path is the CSV file the suite is scored
// against.
type SetupCandidate interface {
	Setup(ctx context.Context, datasetPath string) error
}

// CleanupCandidate is implemented by candidates that hold resources open
// across queries.
type CleanupCandidate interface {
	Cleanup(ctx context.Context) error
}
