// Package metrics holds the Prometheus instrumentation of the dashboard:
// aggregation query latency and failures, the store circuit breaker, and
// HTTP requests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Query metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "football_query_duration_seconds",
			Help:    "Duration of aggregation queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	QueryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "football_query_failures_total",
			Help: "Total number of failed aggregation queries",
		},
		[]string{"operation", "kind"}, // "timeout", "unavailable", "query"
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "football_breaker_state",
			Help: "Store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// HTTP metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "football_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "football_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordQuery records one aggregation query. An empty kind is a success.
func RecordQuery(operation string, duration time.Duration, kind string) {
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if kind != "" {
		QueryFailures.WithLabelValues(operation, kind).Inc()
	}
}

// SetBreakerState publishes the breaker state as a number.
func SetBreakerState(name string, state float64) {
	BreakerState.WithLabelValues(name).Set(state)
}

// RecordAPIRequest records an HTTP request against its route pattern.
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
