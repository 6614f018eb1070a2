package fetch

import (
	"maps"
	"slices"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gofetch/codec"
	"github.com/kbukum/gofetch/logger"
	"github.com/kbukum/gofetch/transport"
)

// Param is one query parameter. Order is preserved in the built URL.
type Param struct {
	Key   string
	Value string
}

// Options holds per-call overrides.
type Options struct {
	// Headers override client headers with the same name.
	Headers map[string]string
	// Params are appended to the URL in order.
	Params []Param
	// Accept overrides the client Accept content type.
	Accept *codec.ContentType
	// ContentType overrides the client body encoding.
	ContentType *codec.ContentType
	// DecodeBody controls whether the response body is decoded into T.
	DecodeBody bool
}

// DefaultOptions returns the options used when a call passes none.
func DefaultOptions() Options {
	return Options{DecodeBody: true}
}

// RequestOption configures a single call.
type RequestOption func(*Options)

// WithHeader sets a header for the call.
func WithHeader(key, value string) RequestOption {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// WithHeaders sets several headers for the call.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string, len(headers))
		}
		maps.Copy(o.Headers, headers)
	}
}

// WithQueryParam appends a query parameter.
func WithQueryParam(key, value string) RequestOption {
	return func(o *Options) {
		o.Params = append(o.Params, Param{Key: key, Value: value})
	}
}

// WithQueryParams appends query parameters in order.
func WithQueryParams(params ...Param) RequestOption {
	return func(o *Options) {
		o.Params = append(o.Params, params...)
	}
}

// WithAccept overrides the Accept content type for the call.
func WithAccept(ct codec.ContentType) RequestOption {
	return func(o *Options) { o.Accept = &ct }
}

// WithContentType overrides the body encoding for the call.
func WithContentType(ct codec.ContentType) RequestOption {
	return func(o *Options) { o.ContentType = &ct }
}

// WithDecodeBody controls response body decoding. Decoding is on by default.
func WithDecodeBody(decode bool) RequestOption {
	return func(o *Options) { o.DecodeBody = decode }
}

// WithOptions replaces all options collected so far with a copy of opts.
func WithOptions(opts Options) RequestOption {
	return func(o *Options) {
		*o = Options{
			Headers:     maps.Clone(opts.Headers),
			Params:      slices.Clone(opts.Params),
			Accept:      opts.Accept,
			ContentType: opts.ContentType,
			DecodeBody:  opts.DecodeBody,
		}
	}
}

func resolveOptions(opts []RequestOption) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	transport      transport.Transport
	logger         *logger.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	propagator     propagation.TextMapPropagator
}

// WithTransport sends requests through t instead of a transport built from
// Config. The same transport is kept when default headers are updated.
func WithTransport(t transport.Transport) Option {
	return func(o *clientOptions) { o.transport = t }
}

// WithLogger sets the client logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithTracerProvider sets the tracer provider. Defaults to the otel global.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *clientOptions) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider. Defaults to the otel global.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *clientOptions) { o.meterProvider = mp }
}

// WithPropagator sets the trace context propagator. Defaults to the otel global.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(o *clientOptions) { o.propagator = p }
}
