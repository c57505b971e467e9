// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, connections)
//   - Business metrics (sync runs, portfolio items, contact messages, page views)
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "portfolio-backend/internal/observability/metrics"
//
//	func runSync() {
//	    start := time.Now()
//	    // ... reconcile ...
//	    metrics.RecordSyncRun("success", time.Since(start))
//	}
package metrics
