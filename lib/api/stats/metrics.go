package stats

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	documentsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "delta",
			Name:      "documents",
			Help:      "Number of documents held in memory",
		},
	)

	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "delta",
			Name:      "operations_total",
			Help:      "Delta operations served, by operation",
		},
		[]string{"operation"},
	)
)

// CountOperation increments the counter for one served delta operation.
func CountOperation(operation string) {
	operationsTotal.WithLabelValues(operation).Inc()
}
