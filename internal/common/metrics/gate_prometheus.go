package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type GatePrometheusMetrics struct {
	outcomes *prometheus.CounterVec
}

func newGatePrometheusMetrics(reg prometheus.Registerer) *GatePrometheusMetrics {
	mtc := &GatePrometheusMetrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kios_biometric_gate_outcomes_total",
				Help: "Number of gated calls by operation and final stage",
			},
			[]string{"operation", "stage"},
		),
	}

	reg.MustRegister(mtc.outcomes)

	return mtc
}

func (m *GatePrometheusMetrics) RecordOutcome(operation, stage string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(operation, stage).Inc()
}
