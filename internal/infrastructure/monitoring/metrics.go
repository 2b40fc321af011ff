package monitoring

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the operation counters of the measure library.
//
// Collectors are created unregistered so several instances can coexist;
// Register attaches them to a caller-owned registry.
type Metrics struct {
	// Operations counts arithmetic and conversion calls by operator
	Operations *prometheus.CounterVec

	// Failures counts rejected operations by operator and reason
	Failures *prometheus.CounterVec
}

// NewMetrics creates a new metrics collector under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of quantity operations",
			},
			[]string{"op"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_failures_total",
				Help:      "Total number of rejected quantity operations",
			},
			[]string{"op", "reason"},
		),
	}
}

// Register adds all collectors to reg. Collectors already present in reg
// are not an error.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Operations, m.Failures} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}

// RecordOperation counts one call of op.
func (m *Metrics) RecordOperation(op string) {
	m.Operations.WithLabelValues(op).Inc()
}

// RecordFailure counts one rejected call of op.
func (m *Metrics) RecordFailure(op, reason string) {
	m.Failures.WithLabelValues(op, reason).Inc()
}
