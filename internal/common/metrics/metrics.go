package metrics

import (
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	PrometheusRegisterer() prometheus.Registerer
	PrometheusGatherer() prometheus.Gatherer
	GetUpstreamPrometheus() *UpstreamPrometheusMetrics
	GetCachePrometheus() *CachePrometheusMetrics
}

type metrics struct {
	reg             prometheus.Registerer
	gatherer        prometheus.Gatherer
	upstreamMetrics *UpstreamPrometheusMetrics
	cacheMetrics    *CachePrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer binds the collectors to reg. reg is also the gatherer behind /metrics when it
// can gather, otherwise the default gatherer is used.
func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	gatherer, ok := reg.(prometheus.Gatherer)
	if !ok {
		gatherer = prometheus.DefaultGatherer
	}
	return &metrics{
		reg:             reg,
		gatherer:        gatherer,
		upstreamMetrics: newUpstreamPrometheusMetrics(reg),
		cacheMetrics:    newCachePrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", FlattenName(dbName), role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) PrometheusGatherer() prometheus.Gatherer {
	return m.gatherer
}

func (m *metrics) GetUpstreamPrometheus() *UpstreamPrometheusMetrics {
	return m.upstreamMetrics
}

func (m *metrics) GetCachePrometheus() *CachePrometheusMetrics {
	return m.cacheMetrics
}
