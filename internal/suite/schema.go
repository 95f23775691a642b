package suite

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// suiteSchema is the structural contract for suite documents. Semantic
// invariants (case id uniqueness, expected/false-positive disjointness,
// dataset enum membership) are checked separately after decoding.
const suiteSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "dataset", "cases"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "dataset": {"type": "string", "minLength": 1},
    "visibility": {"type": "string"},
    "seed": {"type": "integer"},
    "cases": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "query"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "dataset": {"type": "string"},
          "query": {"type": "string", "minLength": 1},
          "expected_ids": {"type": "array", "items": {"type": "string"}},
          "false_positive_ids": {"type": "array", "items": {"type": "string"}},
          "tags": {"type": "array", "items": {"type": "string"}},
          "notes": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func validateShape(doc any) error {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("suite.schema.json", suiteSchema)
	})
	if schemaErr != nil {
		return fmt.Errorf("compile suite schema: %w", schemaErr)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("suite document invalid: %w", err)
	}
	return nil
}
