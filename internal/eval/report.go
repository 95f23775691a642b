package eval

import "time"

// Report is the full output of one benchmark run: identity, the aggregate
// summary, timing statistics, and per-case detail for verbose reporting.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Suite       string    `json:"suite"`
	Dataset     string    `json:"dataset"`
	Candidate   string    `json:"candidate"`
	TimeoutMs   float64   `json:"timeout_ms"`

	Summary Summary      `json:"summary"`
	Timing  TimingStats  `json:"timing"`
	Cases   []CaseReport `json:"cases"`
}

// CaseReport is the per-case record handed to the reporter.
type CaseReport struct {
	CaseID string     `json:"case_id"`
	Query  string     `json:"query"`
	Status CaseStatus `json:"status"`
	Passed bool       `json:"passed"`

	ReturnedIDs    []string       `json:"returned_ids"`
	Classification Classification `json:"classification"`
	RuntimeError   string         `json:"runtime_error,omitempty"`
	ElapsedMs      float64        `json:"elapsed_ms"`
}
