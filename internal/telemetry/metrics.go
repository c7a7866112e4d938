// Package telemetry exports conversion counters to Prometheus.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"sidc-converter/internal/diagnostic"
)

// Metrics holds the converter's Prometheus metrics. A nil *Metrics is a
// valid no-op observer.
type Metrics struct {
	Conversions    *prometheus.CounterVec
	LookupFailures *prometheus.CounterVec
}

// New creates the metrics and registers them with reg. A nil reg registers
// nothing, which suits tests that only read counter values.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sidc",
			Name:      "conversions_total",
			Help:      "Total number of symbol conversions by direction and resulting status.",
		}, []string{"direction", "status"}),
		LookupFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sidc",
			Name:      "lookup_failures_total",
			Help:      "Total number of failed category lookups during conversions.",
		}, []string{"category"}),
	}
}

// ObserveConversion counts one conversion and each category it failed to
// resolve.
func (m *Metrics) ObserveConversion(direction, status string, mask diagnostic.Mask) {
	if m == nil {
		return
	}

	m.Conversions.WithLabelValues(direction, status).Inc()

	for _, c := range mask.Categories() {
		m.LookupFailures.WithLabelValues(c.String()).Inc()
	}
}
