package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts generations by outcome. A nil *Metrics records nothing.
type Metrics struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics registers the planner collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripplanner",
			Name:      "generations_total",
			Help:      "Trip generations by source (model or fallback), failing stage and error class.",
		}, []string{"source", "stage", "class"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tripplanner",
			Name:      "model_request_seconds",
			Help:      "Latency of generative-model calls.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		}, []string{"outcome"}),
	}
}

func (m *Metrics) observeGeneration(source, stage, class string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(source, stage, class).Inc()
}

func (m *Metrics) observeModelCall(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(outcome).Observe(seconds)
}
