package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricRequestDuration = "http.client.request.duration"
	MetricActiveRequests  = "http.client.active_requests"
)

// Metrics holds the client metric instruments.
type Metrics struct {
	requestDuration metric.Float64Histogram
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestDuration, err := meter.Float64Histogram(MetricRequestDuration,
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRequestDuration, err)
	}

	activeRequests, err := meter.Int64UpDownCounter(MetricActiveRequests,
		metric.WithDescription("Number of in-flight HTTP client requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricActiveRequests, err)
	}

	return &Metrics{
		requestDuration: requestDuration,
		activeRequests:  activeRequests,
	}, nil
}

// RecordRequestStart increments the in-flight request count.
func (m *Metrics) RecordRequestStart(ctx context.Context, method string) {
	m.activeRequests.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrHTTPMethod, method)))
}

// RecordRequestEnd decrements the in-flight count and records the duration.
// A zero status means no response was received.
func (m *Metrics) RecordRequestEnd(ctx context.Context, method string, status int, errorType string, duration time.Duration) {
	m.activeRequests.Add(ctx, -1, metric.WithAttributes(attribute.String(AttrHTTPMethod, method)))

	attrs := []attribute.KeyValue{attribute.String(AttrHTTPMethod, method)}
	if status > 0 {
		attrs = append(attrs, attribute.Int(AttrHTTPStatusCode, status))
	}
	if errorType != "" {
		attrs = append(attrs, attribute.String(AttrErrorType, errorType))
	}
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
