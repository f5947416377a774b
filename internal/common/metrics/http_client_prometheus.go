package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPClientPrometheusMetrics struct {
	apiRequestDurationHist *prometheus.HistogramVec
}

func newHTTPClientPrometheusMetrics(reg prometheus.Registerer) *HTTPClientPrometheusMetrics {
	apiRequestDurationHist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kios_api_request_duration_seconds",
			Help:    "Duration of storefront API requests in seconds.",
			Buckets: []float64{0.010, 0.050, 0.100, 0.200, 0.500, 1, 2, 5, 10, 15, 30},
		},
		[]string{"client", "method", "endpoint", "response_code"},
	)

	reg.MustRegister(apiRequestDurationHist)

	return &HTTPClientPrometheusMetrics{apiRequestDurationHist}
}

// Record observes one request. statusCode is 0 when no response was received.
func (m *HTTPClientPrometheusMetrics) Record(duration time.Duration, client, method, endpoint string, statusCode int) {
	if m == nil {
		return
	}

	m.apiRequestDurationHist.WithLabelValues(client, method, endpoint, fmt.Sprint(statusCode)).
		Observe(duration.Seconds())
}
