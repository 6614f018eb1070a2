package observability

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gofetch/version"
)

// InstrumentationName is the tracer and meter name used by gofetch.
const InstrumentationName = "github.com/kbukum/gofetch"

// Common attribute keys.
const (
	AttrHTTPMethod     = "http.request.method"
	AttrHTTPStatusCode = "http.response.status_code"
	AttrURLFull        = "url.full"
	AttrServerAddress  = "server.address"
	AttrServerPort     = "server.port"
	AttrErrorType      = "error.type"
	AttrRequestID      = "request.id"
)

// Instrumentation holds the tracer, metric instruments and propagator
// used for every call made by one client.
type Instrumentation struct {
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	metrics    *Metrics
}

// New creates an Instrumentation. Nil arguments fall back to the otel globals.
func New(tp trace.TracerProvider, mp metric.MeterProvider, prop propagation.TextMapPropagator) (*Instrumentation, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if prop == nil {
		prop = otel.GetTextMapPropagator()
	}

	metrics, err := NewMetrics(mp.Meter(InstrumentationName, metric.WithInstrumentationVersion(version.Get())))
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &Instrumentation{
		tracer:     tp.Tracer(InstrumentationName, trace.WithInstrumentationVersion(version.Get())),
		propagator: prop,
		metrics:    metrics,
	}, nil
}

// Tracer returns the tracer used for call spans.
func (i *Instrumentation) Tracer() trace.Tracer { return i.tracer }

// Metrics returns the metric instruments.
func (i *Instrumentation) Metrics() *Metrics { return i.metrics }

// SpanName returns the span name for a request method.
func SpanName(method string) string {
	return "HTTP " + method
}

// requestAttributes describes the request target without its credentials.
func requestAttributes(method string, u *url.URL) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String(AttrHTTPMethod, method)}
	if u == nil {
		return attrs
	}
	redacted := *u
	redacted.User = nil
	attrs = append(attrs,
		attribute.String(AttrURLFull, redacted.String()),
		attribute.String(AttrServerAddress, u.Hostname()),
	)
	if port := portOf(u); port > 0 {
		attrs = append(attrs, attribute.Int(AttrServerPort, port))
	}
	return attrs
}

func portOf(u *url.URL) int {
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err == nil {
			return n
		}
		return 0
	}
	switch u.Scheme {
	case "http":
		return 80
	case "https":
		return 443
	}
	return 0
}

// SetSpanError records an error on the span active in ctx.
func SetSpanError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.RecordError(err)
	}
}
