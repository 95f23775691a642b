package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdir changes into dir for the duration of the test. It stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "bench.yaml", `datasets:
  people: testdata/people.csv
  companies: /srv/bench/companies.csv
timeout_ms: 500
metrics_listen: "127.0.0.1:9301"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Datasets["people"]; got != "testdata/people.csv" {
		t.Errorf("datasets[people] = %q", got)
	}
	if len(cfg.Datasets) != 2 {
		t.Errorf("datasets = %d entries, want 2", len(cfg.Datasets))
	}
	if cfg.TimeoutMs != 500 {
		t.Errorf("timeout_ms = %d, want 500", cfg.TimeoutMs)
	}
	if cfg.Timeout() != 500*time.Millisecond {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}
	if cfg.MetricsListen != "127.0.0.1:9301" {
		t.Errorf("metrics_listen = %q", cfg.MetricsListen)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadJSON5(t *testing.T) {
	path := writeConfig(t, "bench.json5", `{
  // local overrides
  datasets: {people: "people.csv"},
  timeout_ms: 250,
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TimeoutMs != 250 || cfg.Datasets["people"] != "people.csv" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("BENCH_DATA", "/data/bench")
	path := writeConfig(t, "bench.yaml", `datasets:
  people: ${BENCH_DATA}/people.csv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Datasets["people"]; got != "/data/bench/people.csv" {
		t.Errorf("datasets[people] = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TimeoutMs != DefaultTimeoutMs {
		t.Errorf("timeout_ms = %d, want %d", cfg.TimeoutMs, DefaultTimeoutMs)
	}
	if cfg.Datasets == nil || len(cfg.Datasets) != 0 {
		t.Errorf("datasets = %v, want empty map", cfg.Datasets)
	}
}

func TestLoadDefaultFilePickedUp(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(DefaultConfigName, []byte("timeout_ms: 750\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TimeoutMs != 750 {
		t.Errorf("timeout_ms = %d, want 750", cfg.TimeoutMs)
	}
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("no error for a missing explicit config")
	}
}

func TestLoadNonPositiveTimeoutFallsBack(t *testing.T) {
	path := writeConfig(t, "bench.yaml", "timeout_ms: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TimeoutMs != DefaultTimeoutMs {
		t.Errorf("timeout_ms = %d, want %d", cfg.TimeoutMs, DefaultTimeoutMs)
	}
}

func TestDatasetNamesSorted(t *testing.T) {
	cfg := &Config{Datasets: map[string]string{
		"people":    "people.csv",
		"companies": "companies.csv",
		"addresses": "addresses.csv",
	}}
	want := []string{"addresses", "companies", "people"}
	got := cfg.DatasetNames()
	if len(got) != len(want) {
		t.Fatalf("names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
}
