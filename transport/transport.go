package transport

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/kbukum/gofetch/logger"
)

// Transport kinds selectable from configuration.
const (
	KindHTTP  = "http"
	KindResty = "resty"
)

// Request is an outbound request ready to be sent.
type Request struct {
	// Method is the HTTP method.
	Method string
	// URL is the absolute request target.
	URL *url.URL
	// Header holds one value per header name.
	Header map[string]string
	// Body is the encoded request body. Nil means no body.
	Body []byte
}

// Response is the complete result of a sent request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the first value of each response header.
	Header map[string]string
	// Body is the full response body.
	Body []byte
	// RemoteAddr is the address of the peer that served the response, when known.
	RemoteAddr net.Addr
}

// Transport sends a request and waits for the full response.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Func adapts a function to the Transport interface.
type Func func(ctx context.Context, req *Request) (*Response, error)

// Send calls f(ctx, req).
func (f Func) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Config configures the built-in transports.
type Config struct {
	// Kind selects the implementation: "http" (default) or "resty".
	Kind string
	// Timeout bounds the whole exchange. Zero means no timeout.
	Timeout time.Duration
	// TLS configures certificate handling. Nil uses system defaults.
	TLS *TLSConfig
	// Logger receives transport-level diagnostics. Nil discards them.
	Logger *logger.Logger
}

// New builds the transport selected by cfg.Kind.
func New(cfg Config) (Transport, error) {
	switch cfg.Kind {
	case "", KindHTTP:
		return NewHTTP(cfg)
	case KindResty:
		return NewResty(cfg)
	default:
		return nil, fmt.Errorf("transport: unknown kind %q", cfg.Kind)
	}
}

// FlattenHeader converts multi-value headers to single-value.
func FlattenHeader(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
