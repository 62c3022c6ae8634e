package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg)

	m.GetUpstreamPrometheus().Record(150*time.Millisecond, "xml_api", "ledger", "success")
	m.GetUpstreamPrometheus().RecordFallback("ledger")
	m.GetCachePrometheus().Record("ledger", CacheHit)
	m.GetCachePrometheus().Record("ledger", CacheHit)
	m.GetCachePrometheus().RecordFlush()

	assert.Equal(t, 1, testutil.CollectAndCount(m.GetUpstreamPrometheus().requestDurationHist))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GetUpstreamPrometheus().fallbacks.WithLabelValues("ledger")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.GetCachePrometheus().lookups.WithLabelValues("ledger", CacheHit)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GetCachePrometheus().flushes))
}

func TestMetrics_Gatherer(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.Same(t, reg, NewWithRegisterer(reg).PrometheusGatherer())

	wrapped := prometheus.WrapRegistererWithPrefix("tally_", reg)
	assert.Equal(t, prometheus.DefaultGatherer, NewWithRegisterer(wrapped).PrometheusGatherer())
}

func TestMetrics_NilSafe(t *testing.T) {
	var up *UpstreamPrometheusMetrics
	var c *CachePrometheusMetrics

	assert.NotPanics(t, func() {
		up.Record(time.Second, "odbc", "group", "error")
		up.RecordFallback("group")
		c.Record("group", CacheMiss)
		c.RecordFlush()
	})
}

func TestBuildFQName(t *testing.T) {
	assert.Equal(t, "go_tally_extraction_api", BuildFQName("go-tally-extraction", "api"))
	assert.Equal(t, "tally_odbc_9000", BuildFQName("Tally", "", "ODBC:9000"))
	assert.Equal(t, "a_b_c_d", FlattenName("a.b/c=d"))
}
