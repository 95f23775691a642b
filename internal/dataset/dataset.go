// Package dataset loads the CSV record tables benchmark suites are scored
// against. An Index is the ground truth for id validity: any id a candidate
// returns that the index does not contain is a fabricated record.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Record is one dataset row.
type Record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Index is an immutable id -> name table loaded from a CSV file.
type Index struct {
	name    string
	path    string
	records []Record
	byID    map[string]string
}

// Load reads a CSV dataset (header row, then id,name rows) from path and
// registers it under the given logical name. Malformed rows and duplicate
// ids are load-time errors; nothing is recovered per row.
func Load(name, path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s: missing header row", name)
	}

	idx := &Index{
		name:    name,
		path:    path,
		records: make([]Record, 0, len(rows)-1),
		byID:    make(map[string]string, len(rows)-1),
	}
	for i, row := range rows[1:] {
		id, recordName := row[0], row[1]
		if id == "" {
			return nil, fmt.Errorf("dataset %s: row %d has empty id", name, i+2)
		}
		if _, dup := idx.byID[id]; dup {
			return nil, fmt.Errorf("dataset %s: duplicate id %q at row %d", name, id, i+2)
		}
		idx.byID[id] = recordName
		idx.records = append(idx.records, Record{ID: id, Name: recordName})
	}
	return idx, nil
}

// Name returns the logical dataset name the index was registered under.
func (x *Index) Name() string { return x.name }

// Path returns the CSV file the index was loaded from. It is what the
// harness hands to the candidate's setup phase.
func (x *Index) Path() string { return x.path }

// Contains reports whether id exists in the dataset.
func (x *Index) Contains(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// NameOf returns the record name for id.
func (x *Index) NameOf(id string) (string, bool) {
	name, ok := x.byID[id]
	return name, ok
}

// Len returns the number of records.
func (x *Index) Len() int { return len(x.records) }

// Records returns the records in file order.
func (x *Index) Records() []Record { return x.records }
