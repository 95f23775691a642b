package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"
)

// Load reads a suite document from disk, validates its shape against the
// suite schema, and checks semantic invariants. YAML, JSON, and JSON5 files
// are accepted by extension.
//
// datasets, when non-nil, is the closed set of dataset names the harness
// knows; a suite declaring any other dataset is rejected.
func Load(path string, datasets []string) (*Suite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("suite path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}

	raw, err := parseRaw(data, path)
	if err != nil {
		return nil, err
	}

	// Round-trip through encoding/json so the schema validator sees
	// canonical JSON types regardless of the source format.
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize suite %s: %w", path, err)
	}
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("normalize suite %s: %w", path, err)
	}
	if err := validateShape(doc); err != nil {
		return nil, fmt.Errorf("suite %s: %w", path, err)
	}

	var s Suite
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode suite %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if datasets != nil && !contains(datasets, s.Dataset) {
		return nil, fmt.Errorf("suite %q declares unknown dataset %q (known: %v)", s.Name, s.Dataset, datasets)
	}
	return &s, nil
}

func parseRaw(data []byte, path string) (any, error) {
	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		if err := json5.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse suite %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse suite %s: %w", path, err)
		}
	}
	return raw, nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
