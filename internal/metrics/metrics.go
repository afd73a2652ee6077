// Package metrics provides Prometheus metrics collection for the fuel service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcome labels.
const (
	StatusSuccess      = "success"
	StatusInvalidInput = "invalid_input"
	StatusNotFound     = "not_found"
	StatusError        = "error"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// FuelCalculationsTotal counts fuel recommendations by outcome.
	FuelCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fuel_calculations_total",
			Help: "Total number of fuel recommendation calculations",
		},
		[]string{"status"},
	)

	// FuelCalculationDuration tracks end-to-end calculation time, truck class lookup included.
	FuelCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fuel_calculation_duration_seconds",
			Help:    "Fuel calculation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	// FuelWarningsTotal counts recommendations where intended fuel exceeded the maximum.
	FuelWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fuel_warnings_total",
			Help: "Total number of over-allocation warnings",
		},
		[]string{"truck_class"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	// TruckClassesActive tracks the number of active truck classes after each listing refresh.
	TruckClassesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "truck_classes_active",
			Help: "Number of active truck classes",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordFuelCalculation records metrics for a fuel calculation.
func RecordFuelCalculation(duration time.Duration, status string) {
	FuelCalculationDuration.Observe(duration.Seconds())
	FuelCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordFuelWarning counts an over-allocation warning for a truck class.
func RecordFuelWarning(truckClass string) {
	FuelWarningsTotal.WithLabelValues(truckClass).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// SetActiveTruckClasses publishes the active truck class count.
func SetActiveTruckClasses(n int) {
	TruckClassesActive.Set(float64(n))
}
