package observability

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Call tracks a single in-flight request.
type Call struct {
	inst   *Instrumentation
	ctx    context.Context
	span   trace.Span
	method string
	start  time.Time
}

// Start opens a client span for the request and counts it as in flight.
// The returned context carries the span.
func (i *Instrumentation) Start(ctx context.Context, method string, u *url.URL) (context.Context, *Call) {
	ctx, span := i.tracer.Start(ctx, SpanName(method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(requestAttributes(method, u)...),
	)
	i.metrics.RecordRequestStart(ctx, method)

	return ctx, &Call{
		inst:   i,
		ctx:    ctx,
		span:   span,
		method: method,
		start:  time.Now(),
	}
}

// Span returns the call span.
func (c *Call) Span() trace.Span { return c.span }

// Inject writes the propagation headers for ctx into headers using canonical
// header keys, replacing any existing values.
func (c *Call) Inject(ctx context.Context, headers map[string]string) {
	carrier := propagation.MapCarrier{}
	c.inst.propagator.Inject(ctx, carrier)
	for k, v := range carrier {
		headers[http.CanonicalHeaderKey(k)] = v
	}
}

// SetAttributes adds attributes to the call span.
func (c *Call) SetAttributes(attrs ...attribute.KeyValue) {
	c.span.SetAttributes(attrs...)
}

// End closes the span and records the duration. status is the response status
// or zero when none was received. errorType is a short error classification,
// empty on success.
func (c *Call) End(status int, errorType string, err error) {
	if status > 0 {
		c.span.SetAttributes(attribute.Int(AttrHTTPStatusCode, status))
	}
	if errorType != "" {
		c.span.SetAttributes(attribute.String(AttrErrorType, errorType))
	}
	if err != nil {
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, err.Error())
	}

	c.inst.metrics.RecordRequestEnd(c.ctx, c.method, status, errorType, time.Since(c.start))
	c.span.End()
}
