package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type UpstreamPrometheusMetrics struct {
	requestDurationHist *prometheus.HistogramVec
	fallbacks           *prometheus.CounterVec
}

func newUpstreamPrometheusMetrics(reg prometheus.Registerer) *UpstreamPrometheusMetrics {
	requestDurationHist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of requests to the accounting engine in seconds.",
			Buckets: []float64{0.010, 0.050, 0.100, 0.250, 0.500, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"channel", "entity", "outcome"},
	)
	fallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_channel_fallbacks_total",
			Help: "Number of calls served by the secondary channel after the primary failed.",
		},
		[]string{"entity"},
	)

	reg.MustRegister(requestDurationHist, fallbacks)

	return &UpstreamPrometheusMetrics{requestDurationHist: requestDurationHist, fallbacks: fallbacks}
}

func (m *UpstreamPrometheusMetrics) Record(duration time.Duration, channel, entity, outcome string) {
	if m == nil {
		return
	}
	m.requestDurationHist.WithLabelValues(channel, entity, outcome).Observe(duration.Seconds())
}

func (m *UpstreamPrometheusMetrics) RecordFallback(entity string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(entity).Inc()
}
