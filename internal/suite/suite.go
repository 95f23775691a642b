// Package suite loads and validates labeled benchmark suites. A suite names
// the dataset it is scored against and carries an ordered list of cases, each
// with a query, the ids a correct candidate returns, and known decoy ids.
package suite

import "fmt"

// Suite is a labeled benchmark document.
type Suite struct {
	Name       string `yaml:"name" json:"name"`
	Dataset    string `yaml:"dataset" json:"dataset"`
	Visibility string `yaml:"visibility" json:"visibility"`
	Seed       int64  `yaml:"seed" json:"seed"`
	Cases      []Case `yaml:"cases" json:"cases"`
}

// Case is one labeled query. ExpectedIDs are the records a correct candidate
// returns; FalsePositiveIDs are known decoys that must not be returned. The
// two sets are disjoint by construction; loading rejects suites that list an
// id in both.
type Case struct {
	ID               string   `yaml:"id" json:"id"`
	Dataset          string   `yaml:"dataset" json:"dataset"`
	Query            string   `yaml:"query" json:"query"`
	ExpectedIDs      []string `yaml:"expected_ids" json:"expected_ids"`
	FalsePositiveIDs []string `yaml:"false_positive_ids" json:"false_positive_ids"`
	Tags             []string `yaml:"tags" json:"tags"`
	Notes            string   `yaml:"notes" json:"notes"`
}

// validate checks suite-level semantic invariants that the JSON schema cannot
// express: case id uniqueness, per-case dataset agreement, uniqueness within
// each label list, and disjointness of expected and false-positive ids. The
// label lists are sets; a repeated id would double-count in the aggregate.
func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite %q has no cases", s.Name)
	}
	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if seen[c.ID] {
			return fmt.Errorf("suite %q: duplicate case id %q", s.Name, c.ID)
		}
		seen[c.ID] = true
		if c.Dataset != "" && c.Dataset != s.Dataset {
			return fmt.Errorf("case %q declares dataset %q but suite %q uses %q", c.ID, c.Dataset, s.Name, s.Dataset)
		}
		expected := make(map[string]bool, len(c.ExpectedIDs))
		for _, id := range c.ExpectedIDs {
			if expected[id] {
				return fmt.Errorf("case %q repeats %q in expected_ids", c.ID, id)
			}
			expected[id] = true
		}
		decoys := make(map[string]bool, len(c.FalsePositiveIDs))
		for _, id := range c.FalsePositiveIDs {
			if decoys[id] {
				return fmt.Errorf("case %q repeats %q in false_positive_ids", c.ID, id)
			}
			decoys[id] = true
			if expected[id] {
				return fmt.Errorf("case %q lists %q as both expected and false positive", c.ID, id)
			}
		}
	}
	return nil
}
