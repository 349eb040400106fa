// Package instrumentation provides OpenTelemetry-based observability for the
// recordingpage application.
//
// # Components
//
// Provider wires up meter and tracer providers with configurable exporters:
//   - Metrics: prometheus (default), otlp, stdout
//   - Tracing: none (default), otlp, stdout
//
// Metrics records the application's instruments: page request counts and
// latencies, Zoom API operation counts and latencies, and token grant
// outcomes. A zero-value Metrics is a safe no-op, so disabled
// instrumentation needs no special casing at call sites.
//
// # Configuration
//
// DefaultConfig reads the conventional OTel environment variables
// (OTEL_SERVICE_NAME, OTEL_EXPORTER_OTLP_ENDPOINT, ...) plus
// INSTRUMENTATION_ENABLED, METRICS_EXPORTER and TRACING_EXPORTER.
package instrumentation
