// SPDX-License-Identifier: MIT
package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "trustnet"

// metrics groups the collectors of one Runner.
type metrics struct {
	attempts   prometheus.Counter
	rejected   prometheus.Counter
	enumerated prometheus.Counter
	bestScore  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "graph_attempts_total",
			Help:      "Generated candidate trust graphs.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "graph_rejected_total",
			Help:      "Candidate graphs discarded because they were not connected.",
		}),
		enumerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "working_units_enumerated_total",
			Help:      "Working units produced by the enumerator.",
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "best_unit_score",
			Help:      "Average reputation of the last selected working unit.",
		}),
	}
	reg.MustRegister(m.attempts, m.rejected, m.enumerated, m.bestScore)

	return m
}
