// Package tracing provides OpenTelemetry tracing integration for HTTP
// request handling. Incoming trace context is extracted in W3C Trace
// Context format and the trace ID is echoed back in the X-Trace-Id
// response header for client-side correlation.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("portfolio-backend")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
