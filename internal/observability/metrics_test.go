package observability

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	if m == nil {
		t.Fatal("NewMetrics() returned nil")
	}
	if m.CaseCounter == nil || m.SearchDuration == nil || m.InvalidIDCounter == nil || m.SuiteScore == nil {
		t.Error("metric vectors not initialized")
	}
}

func TestMetricsIsolatedRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	a := NewMetrics()
	b := NewMetrics()

	a.CaseCounter.WithLabelValues("smoke", "completed").Inc()
	if got := testutil.ToFloat64(b.CaseCounter.WithLabelValues("smoke", "completed")); got != 0 {
		t.Errorf("second instance observed %v cases, want 0", got)
	}
}

func TestCaseCounter(t *testing.T) {
	m := NewMetrics()
	m.CaseCounter.WithLabelValues("smoke", "completed").Inc()
	m.CaseCounter.WithLabelValues("smoke", "completed").Inc()
	m.CaseCounter.WithLabelValues("smoke", "timed_out").Inc()

	if got := testutil.ToFloat64(m.CaseCounter.WithLabelValues("smoke", "completed")); got != 2 {
		t.Errorf("completed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CaseCounter.WithLabelValues("smoke", "timed_out")); got != 1 {
		t.Errorf("timed_out = %v, want 1", got)
	}
}

func TestSuiteScoreGauge(t *testing.T) {
	m := NewMetrics()
	m.SuiteScore.WithLabelValues("smoke").Set(97.5)
	m.SuiteScore.WithLabelValues("smoke").Set(42)

	if got := testutil.ToFloat64(m.SuiteScore.WithLabelValues("smoke")); got != 42 {
		t.Errorf("score = %v, want last written value 42", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.CaseCounter.WithLabelValues("smoke", "completed").Inc()
	m.InvalidIDCounter.WithLabelValues("smoke").Add(3)
	m.SearchDuration.WithLabelValues("smoke").Observe(0.012)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"matchbench_cases_total",
		"matchbench_invalid_ids_total",
		"matchbench_search_duration_seconds",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %s", want)
		}
	}
}
