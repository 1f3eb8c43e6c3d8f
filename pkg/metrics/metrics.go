package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)

	EntitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Total number of rows inserted",
		},
		[]string{"table"},
	)

	EntitiesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_deleted_total",
			Help: "Total number of rows deleted",
		},
		[]string{"table"},
	)
)

// RecordStoreOpDuration records how long one store operation took.
func RecordStoreOpDuration(operation, table string, duration time.Duration) {
	StoreOpDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// IncrementEntitiesCreated increments the insert counter for a table.
func IncrementEntitiesCreated(table string) {
	EntitiesCreated.WithLabelValues(table).Inc()
}

// IncrementEntitiesDeleted increments the delete counter for a table.
func IncrementEntitiesDeleted(table string) {
	EntitiesDeleted.WithLabelValues(table).Inc()
}
