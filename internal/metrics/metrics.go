// Package metrics provides Prometheus metrics collection for the savings service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
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

	// SavingsEstimatesTotal counts estimates by recommended tier and sign.
	SavingsEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savings_estimates_total",
			Help: "Total number of savings estimates",
		},
		[]string{"tier", "outcome"},
	)

	// SavingsEstimateDuration tracks estimate handling duration.
	SavingsEstimateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "savings_estimate_duration_seconds",
			Help:    "Savings estimate duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// ToolTogglesTotal counts tool toggles by result (accepted, rejected, not_found).
	ToolTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_toggles_total",
			Help: "Total number of tool toggles",
		},
		[]string{"result"},
	)

	// SessionEventsTotal counts session lifecycle events.
	SessionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_sessions_total",
			Help: "Total number of calculator session lifecycle events",
		},
		[]string{"event"},
	)

	// CacheOperationsTotal tracks session store operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks the number of live sessions.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_store_size",
			Help: "Current number of stored sessions",
		},
	)

	// CacheCapacity tracks session store capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_store_capacity",
			Help: "Session store capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEstimate records one savings estimate. outcome is "savings" or "loss".
func RecordEstimate(duration time.Duration, tier, outcome string) {
	SavingsEstimateDuration.Observe(duration.Seconds())
	SavingsEstimatesTotal.WithLabelValues(tier, outcome).Inc()
}

// RecordToolToggle records the result of a tool toggle.
func RecordToolToggle(result string) {
	ToolTogglesTotal.WithLabelValues(result).Inc()
}

// RecordSessionEvent records a session lifecycle event.
func RecordSessionEvent(event string) {
	SessionEventsTotal.WithLabelValues(event).Inc()
}

// RecordCacheOperation records metrics for a session store operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates session store size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
