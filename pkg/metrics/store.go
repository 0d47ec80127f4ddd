package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records timing and outcome of document store operations.
type StoreMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of document store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection", "operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operation_success_total",
		Help: "Successful document store operations.",
	}, []string{"collection", "operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operation_failures_total",
		Help: "Failed document store operations.",
	}, []string{"collection", "operation"})
	reg.MustRegister(duration, success, failure)
	return &StoreMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// Observe records one finished operation. A nil receiver is a no-op.
func (s *StoreMetrics) Observe(collection, operation string, elapsed time.Duration, err error) {
	if s == nil || s.duration == nil {
		return
	}
	collection, operation = normalizeLabel(collection), normalizeLabel(operation)
	s.duration.WithLabelValues(collection, operation).Observe(elapsed.Seconds())
	if err != nil {
		s.failure.WithLabelValues(collection, operation).Inc()
		return
	}
	s.success.WithLabelValues(collection, operation).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
