// Package metrics exposes Prometheus collectors for scoring.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// ScoringMetrics counts scored answer sets and times report rendering.
type ScoringMetrics struct {
	resultsTotal  *prometheus.CounterVec
	answersTotal  *prometheus.CounterVec
	renderLatency *prometheus.HistogramVec
}

// NewScoringMetrics registers the collectors on reg, or on the default
// registerer when reg is nil.
func NewScoringMetrics(reg prometheus.Registerer) *ScoringMetrics {
	m := &ScoringMetrics{
		resultsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellcheck",
			Subsystem: "scoring",
			Name:      "results_total",
			Help:      "Total answer sets scored, by catalog and outcome",
		}, []string{"catalog", "outcome"}),
		answersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellcheck",
			Subsystem: "scoring",
			Name:      "answers_total",
			Help:      "Total answers recorded while scoring",
		}, []string{"catalog"}),
		renderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wellcheck",
			Subsystem: "report",
			Name:      "render_seconds",
			Help:      "Latency of report rendering",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.resultsTotal, m.answersTotal, m.renderLatency)
	return m
}

// ObserveResult counts one scored answer set. outcome is "complete",
// "partial" or "invalid".
func (m *ScoringMetrics) ObserveResult(catalogID, outcome string, answers int) {
	if m == nil {
		return
	}
	m.resultsTotal.WithLabelValues(catalogID, outcome).Inc()
	if answers > 0 {
		m.answersTotal.WithLabelValues(catalogID).Add(float64(answers))
	}
}

// ObserveRender records how long rendering a report in format took.
func (m *ScoringMetrics) ObserveRender(format string, seconds float64) {
	if m == nil {
		return
	}
	m.renderLatency.WithLabelValues(format).Observe(seconds)
}
