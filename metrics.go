package mathops

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for calculator operations.
// It is safe for concurrent use.
type MetricsCollector struct {
	operationsTotal     *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	divisionByZeroTotal prometheus.Counter

	registry prometheus.Registerer
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using supplied registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	mc := &MetricsCollector{
		operationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathops_operations_total",
				Help: "Total number of arithmetic operations performed",
			},
			[]string{"operation"},
		),
		operationDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mathops_operation_duration_seconds",
				Help:    "Duration of arithmetic operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		divisionByZeroTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "mathops_division_by_zero_total",
				Help: "Total number of divisions by zero substituted with the fallback or reported as errors",
			},
		),
		registry: registry,
	}

	return mc
}

// RecordOperation records a completed operation and its duration.
func (mc *MetricsCollector) RecordOperation(operation string, duration time.Duration) {
	mc.operationsTotal.WithLabelValues(operation).Inc()
	mc.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDivisionByZero records one zero-denominator division.
func (mc *MetricsCollector) RecordDivisionByZero() {
	mc.divisionByZeroTotal.Inc()
}
