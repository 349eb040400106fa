package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrMethod    = "method"
	attrStatus    = "status"
	attrOperation = "operation"
	attrResult    = "result"
)

// Metrics provides methods for recording observability metrics.
// All methods are no-ops on a zero-value Metrics, so callers never have to
// nil-check when instrumentation is disabled.
type Metrics struct {
	// Page metrics
	pageRequestsTotal   metric.Int64Counter
	pageRequestDuration metric.Float64Histogram

	// Zoom API metrics
	zoomAPIOperationsTotal   metric.Int64Counter
	zoomAPIOperationDuration metric.Float64Histogram

	// Token grant metrics
	tokenGrantsTotal metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.pageRequestsTotal, err = meter.Int64Counter(
		"page_requests_total",
		metric.WithDescription("Total number of recordings page requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create page_requests_total counter: %w", err)
	}

	m.pageRequestDuration, err = meter.Float64Histogram(
		"page_request_duration_seconds",
		metric.WithDescription("Recordings page request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create page_request_duration_seconds histogram: %w", err)
	}

	m.zoomAPIOperationsTotal, err = meter.Int64Counter(
		"zoom_api_operations_total",
		metric.WithDescription("Total number of Zoom API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zoom_api_operations_total counter: %w", err)
	}

	m.zoomAPIOperationDuration, err = meter.Float64Histogram(
		"zoom_api_operation_duration_seconds",
		metric.WithDescription("Zoom API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zoom_api_operation_duration_seconds histogram: %w", err)
	}

	m.tokenGrantsTotal, err = meter.Int64Counter(
		"zoom_token_grants_total",
		metric.WithDescription("Total number of Zoom account-credentials token grants"),
		metric.WithUnit("{grant}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zoom_token_grants_total counter: %w", err)
	}

	return m, nil
}

// RecordPageRequest records one rendered (or failed) page request.
func (m *Metrics) RecordPageRequest(ctx context.Context, method string, statusCode int, duration time.Duration) {
	if m == nil || m.pageRequestsTotal == nil || m.pageRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.pageRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.pageRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordZoomAPIOperation records an upstream Zoom API call.
//
// Parameters:
//   - operation: Operation name ("token", "listRecordings")
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the operation
func (m *Metrics) RecordZoomAPIOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if m == nil || m.zoomAPIOperationsTotal == nil || m.zoomAPIOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.zoomAPIOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.zoomAPIOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordTokenGrant records an account-credentials grant attempt.
// Result should be one of: "success", "error".
func (m *Metrics) RecordTokenGrant(ctx context.Context, result string) {
	if m == nil || m.tokenGrantsTotal == nil {
		return // Instrumentation not initialized
	}

	m.tokenGrantsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, result),
	))
}
