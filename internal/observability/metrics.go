package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects harness-level Prometheus metrics.
//
// The metrics system tracks:
//   - Cases evaluated, by terminal status (completed|timed_out|errored)
//   - Candidate search latency
//   - Invalid ids claimed by the candidate
//   - The final penalty-adjusted score per suite
type Metrics struct {
	registry *prometheus.Registry

	// CaseCounter counts evaluated cases.
	// Labels: suite, status (completed|timed_out|errored)
	CaseCounter *prometheus.CounterVec

	// SearchDuration measures candidate search latency in seconds.
	// Buckets: 1ms .. 30s
	SearchDuration *prometheus.HistogramVec

	// InvalidIDCounter counts returned ids absent from the dataset.
	// Labels: suite
	InvalidIDCounter *prometheus.CounterVec

	// SuiteScore reports the final score of the most recent run.
	// Labels: suite
	SuiteScore *prometheus.GaugeVec
}

// NewMetrics creates a metric set on a private registry, so concurrent test
// instances never collide on registration.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		CaseCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbench_cases_total",
			Help: "Evaluated cases by terminal status.",
		}, []string{"suite", "status"}),
		SearchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "matchbench_search_duration_seconds",
			Help:    "Candidate search latency.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}, []string{"suite"}),
		InvalidIDCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbench_invalid_ids_total",
			Help: "Returned ids that do not exist in the dataset.",
		}, []string{"suite"}),
		SuiteScore: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "matchbench_suite_score",
			Help: "Final penalty-adjusted score of the most recent run.",
		}, []string{"suite"}),
	}
}

// Handler returns an HTTP handler exposing the metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
