package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	PrometheusRegisterer() prometheus.Registerer
	PrometheusGatherer() prometheus.Gatherer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetCachePrometheus() *CachePrometheusMetrics
	GetGatePrometheus() *GatePrometheusMetrics
}

type metrics struct {
	reg               *prometheus.Registry
	httpClientMetrics *HTTPClientPrometheusMetrics
	cacheMetrics      *CachePrometheusMetrics
	gateMetrics       *GatePrometheusMetrics
}

// New builds the metrics on a private registry with the Go runtime and process collectors.
func New() Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

func NewWithRegistry(reg *prometheus.Registry) Metrics {
	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg),
		cacheMetrics:      newCachePrometheusMetrics(reg),
		gateMetrics:       newGatePrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) PrometheusGatherer() prometheus.Gatherer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetCachePrometheus() *CachePrometheusMetrics {
	return m.cacheMetrics
}

func (m *metrics) GetGatePrometheus() *GatePrometheusMetrics {
	return m.gateMetrics
}
