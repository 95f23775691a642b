package suite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeSuite(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validYAML = `name: smoke
dataset: people
visibility: public
seed: 42
cases:
  - id: exact-match
    query: "Acme Corp"
    expected_ids: ["1"]
    false_positive_ids: ["3"]
    tags: [exact]
  - id: fuzzy
    query: acme
    expected_ids: ["1", "2"]
    notes: covers the abbreviated legal form
`

func TestLoadYAML(t *testing.T) {
	path := writeSuite(t, "smoke.yaml", validYAML)

	s, err := Load(path, []string{"people", "companies"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "smoke" || s.Dataset != "people" || s.Seed != 42 {
		t.Errorf("header = %q/%q/%d", s.Name, s.Dataset, s.Seed)
	}
	want := []Case{
		{ID: "exact-match", Query: "Acme Corp", ExpectedIDs: []string{"1"}, FalsePositiveIDs: []string{"3"}, Tags: []string{"exact"}},
		{ID: "fuzzy", Query: "acme", ExpectedIDs: []string{"1", "2"}, Notes: "covers the abbreviated legal form"},
	}
	if diff := cmp.Diff(want, s.Cases); diff != "" {
		t.Errorf("cases mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON5(t *testing.T) {
	// JSON5 allows comments and trailing commas.
	path := writeSuite(t, "smoke.json5", `{
  // nightly regression set
  name: "nightly",
  dataset: "people",
  cases: [
    {id: "c1", query: "ajax", expected_ids: ["3"],},
  ],
}`)

	s, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "nightly" || len(s.Cases) != 1 {
		t.Errorf("got %q with %d cases", s.Name, len(s.Cases))
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{
			name: "overlapping expected and false positive",
			file: "overlap.yaml",
			body: `name: s
dataset: people
cases:
  - id: c1
    query: q
    expected_ids: ["1"]
    false_positive_ids: ["1"]
`,
			wantErr: "both expected and false positive",
		},
		{
			// A repeated expected id would count twice in the aggregate and
			// push precision past 100 against a single returned id.
			name: "repeated expected id",
			file: "dupexpected.yaml",
			body: `name: s
dataset: people
cases:
  - id: c1
    query: q
    expected_ids: ["1", "1"]
`,
			wantErr: "repeats \"1\" in expected_ids",
		},
		{
			name: "repeated false positive id",
			file: "dupdecoy.yaml",
			body: `name: s
dataset: people
cases:
  - id: c1
    query: q
    expected_ids: ["2"]
    false_positive_ids: ["1", "1"]
`,
			wantErr: "repeats \"1\" in false_positive_ids",
		},
		{
			name: "duplicate case ids",
			file: "dup.yaml",
			body: `name: s
dataset: people
cases:
  - id: c1
    query: a
  - id: c1
    query: b
`,
			wantErr: "duplicate case id",
		},
		{
			name: "case dataset disagrees with suite",
			file: "mixed.yaml",
			body: `name: s
dataset: people
cases:
  - id: c1
    dataset: companies
    query: q
`,
			wantErr: "declares dataset",
		},
		{
			name: "no cases",
			file: "empty.yaml",
			body: `name: s
dataset: people
cases: []
`,
			wantErr: "no cases",
		},
		{
			name: "missing dataset",
			file: "nodataset.yaml",
			body: `name: s
cases:
  - id: c1
    query: q
`,
			wantErr: "invalid",
		},
		{
			name: "unknown case field",
			file: "typo.yaml",
			body: `name: s
dataset: people
cases:
  - id: c1
    query: q
    expected: ["1"]
`,
			wantErr: "invalid",
		},
		{
			name: "empty query",
			file: "blankquery.yaml",
			body: `name: s
dataset: people
cases:
  - id: c1
    query: ""
`,
			wantErr: "invalid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSuite(t, tt.file, tt.body)
			_, err := Load(path, nil)
			if err == nil {
				t.Fatal("suite accepted")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadUnknownDataset(t *testing.T) {
	path := writeSuite(t, "smoke.yaml", validYAML)

	_, err := Load(path, []string{"companies"})
	if err == nil {
		t.Fatal("suite accepted against a catalog without its dataset")
	}
	if !strings.Contains(err.Error(), "unknown dataset") {
		t.Errorf("error = %q", err)
	}

	// A nil catalog means no restriction.
	if _, err := Load(path, nil); err != nil {
		t.Errorf("nil catalog rejected the suite: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatal("no error for a missing suite file")
	}
}
