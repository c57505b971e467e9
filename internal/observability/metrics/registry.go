// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Business metrics track application-specific operations
var (
	// PortfolioItemsTotal tracks total number of portfolio items in database
	PortfolioItemsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_items_total",
			Help: "Total number of portfolio items in the database",
		},
	)

	// SyncRunsTotal counts reconciliation runs by outcome
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_sync_runs_total",
			Help: "Total number of portfolio sync runs",
		},
		[]string{"result"}, // result: success, failure, skipped, not_configured
	)

	// SyncDuration measures time for a full reconciliation pass
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portfolio_sync_duration_seconds",
			Help:    "Time taken for a portfolio sync run",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	// SyncItemsTotal counts items touched by reconciliation per action
	SyncItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_sync_items_total",
			Help: "Total number of portfolio items created, deleted, or skipped by sync",
		},
		[]string{"action"}, // action: created, deleted, skipped
	)

	// ContactMessagesTotal counts contact form submissions by outcome
	ContactMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"}, // status: accepted, rejected
	)

	// PageViewsRecordedTotal counts page view events accepted by the tracker
	PageViewsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_views_recorded_total",
			Help: "Total number of page view events recorded",
		},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordOperationDuration records the duration of a named operation
func RecordOperationDuration(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
