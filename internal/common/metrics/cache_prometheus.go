package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheBypass = "bypass"
)

type CachePrometheusMetrics struct {
	lookups *prometheus.CounterVec
	flushes prometheus.Counter
}

func newCachePrometheusMetrics(reg prometheus.Registerer) *CachePrometheusMetrics {
	mtc := &CachePrometheusMetrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "result_cache_lookups_total",
				Help: "Number of result cache lookups by entity and result",
			},
			[]string{"entity", "result"},
		),
		flushes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "result_cache_flushes_total",
				Help: "Number of full cache invalidations",
			},
		),
	}

	reg.MustRegister(mtc.lookups)
	reg.MustRegister(mtc.flushes)

	return mtc
}

func (m *CachePrometheusMetrics) Record(entity, result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(entity, result).Inc()
}

func (m *CachePrometheusMetrics) RecordFlush() {
	if m == nil {
		return
	}
	m.flushes.Inc()
}
