// Package config loads harness configuration. Configuration files are YAML,
// JSON, or JSON5 by extension, with environment variables expanded before
// parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"github.com/haasonsaas/matchbench/internal/observability"
)

// DefaultConfigName is looked up in the working directory when no --config
// flag is given.
const DefaultConfigName = "matchbench.yaml"

// DefaultTimeoutMs bounds a single candidate search call.
const DefaultTimeoutMs = 2000

// Config is the harness configuration surface.
type Config struct {
	// Datasets maps logical dataset names to CSV file paths. A suite may
	// only declare a dataset named here.
	Datasets map[string]string `yaml:"datasets" json:"datasets"`

	// TimeoutMs is the per-query candidate deadline in milliseconds.
	TimeoutMs int `yaml:"timeout_ms" json:"timeout_ms"`

	// MetricsListen, when set, exposes Prometheus metrics on this address
	// for the duration of a run (e.g. "127.0.0.1:9301").
	MetricsListen string `yaml:"metrics_listen" json:"metrics_listen"`

	// Logging configures the structured logger.
	Logging observability.LogConfig `yaml:"logging" json:"logging"`
}

// Default returns the zero-file configuration.
func Default() *Config {
	return &Config{
		Datasets:  map[string]string{},
		TimeoutMs: DefaultTimeoutMs,
	}
}

// Load reads a configuration file. An empty path falls back to
// DefaultConfigName if present, else to defaults; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		if err := json5.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = DefaultTimeoutMs
	}
	if cfg.Datasets == nil {
		cfg.Datasets = map[string]string{}
	}
	return cfg, nil
}

// Timeout returns the per-query deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// DatasetNames returns the configured dataset names in sorted order, so
// error messages listing them are stable across runs.
func (c *Config) DatasetNames() []string {
	names := make([]string, 0, len(c.Datasets))
	for name := range c.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
