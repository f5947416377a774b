package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	TierMemory  = "memory"
	TierStorage = "storage"
	TierNetwork = "network"

	ResultHit      = "hit"
	ResultStale    = "stale"
	ResultMiss     = "miss"
	ResultFallback = "fallback"
	ResultError    = "error"
)

type CachePrometheusMetrics struct {
	lookups *prometheus.CounterVec
	refresh *prometheus.CounterVec
}

func newCachePrometheusMetrics(reg prometheus.Registerer) *CachePrometheusMetrics {
	mtc := &CachePrometheusMetrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kios_catalog_lookups_total",
				Help: "Number of catalog lookups by tier and result",
			},
			[]string{"tier", "result"},
		),
		refresh: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kios_catalog_background_refresh_total",
				Help: "Number of background catalog refreshes by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(mtc.lookups)
	reg.MustRegister(mtc.refresh)

	return mtc
}

func (m *CachePrometheusMetrics) RecordLookup(tier, result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(tier, result).Inc()
}

func (m *CachePrometheusMetrics) RecordRefresh(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = ResultError
	}
	m.refresh.WithLabelValues(result).Inc()
}
