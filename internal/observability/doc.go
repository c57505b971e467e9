// Package observability groups the logging, metrics, and tracing
// infrastructure shared by the API server and the sync worker.
//
// Subpackages:
//   - logging: structured logging with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracing integration
package observability
