// Package eval is the evaluation engine: it drives a candidate search
// implementation through a labeled suite, classifies every returned id
// against the case labels and the dataset, and aggregates correctness and
// latency statistics into a run summary.
package eval

import "time"

// CaseStatus is the terminal state of one case's candidate invocation.
type CaseStatus string

const (
	// StatusCompleted means the candidate returned within the deadline.
	StatusCompleted CaseStatus = "completed"

	// StatusTimedOut means the deadline fired first; the candidate call was
	// abandoned and its eventual result, if any, is ignored.
	StatusTimedOut CaseStatus = "timed_out"

	// StatusErrored means the candidate returned an error.
	StatusErrored CaseStatus = "errored"
)

// Outcome is the normalized result of invoking the candidate for one case.
// Non-completed outcomes always carry an empty id list and a runtime error;
// they still flow through classification and aggregation.
type Outcome struct {
	Status       CaseStatus
	IDs          []string
	RuntimeError string
	Elapsed      time.Duration
}

// Classification partitions a case's returned ids against its labels and the
// dataset's valid-id set. All five fields are set-valued; ordering carries no
// meaning.
type Classification struct {
	// Hits are expected ids the candidate returned.
	Hits []string `json:"hits"`

	// Missing are expected ids the candidate failed to return.
	Missing []string `json:"missing"`

	// FalsePositiveHits are returned ids the case explicitly lists as decoys.
	FalsePositiveHits []string `json:"false_positive_hits"`

	// InvalidIDs are returned ids that do not exist in the dataset at all.
	InvalidIDs []string `json:"invalid_ids"`

	// ExtrasUnscored are valid returned ids that are neither expected nor
	// listed decoys.
	ExtrasUnscored []string `json:"extras_unscored"`
}

// Clean reports whether every classification set is empty. A case passes
// only when its classification is clean and its invocation raised no runtime
// error; the two conditions are independent.
func (c Classification) Clean() bool {
	return len(c.Missing) == 0 &&
		len(c.FalsePositiveHits) == 0 &&
		len(c.InvalidIDs) == 0 &&
		len(c.ExtrasUnscored) == 0
}

// IDSet answers membership queries over the dataset's record ids.
// *dataset.Index satisfies it.
type IDSet interface {
	Contains(id string) bool
}
