package fetch

import (
	"net"
	"net/http"
	"strings"
)

// Response is the result of a completed call.
type Response[T any] struct {
	// Body is the decoded body. Nil when decoding was disabled or the body was empty.
	Body *T
	// RawBody is the undecoded body.
	RawBody []byte
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers holds the first value of each response header.
	Headers map[string]string
	// RemoteAddr is the address of the server that answered, when known.
	RemoteAddr net.Addr
}

// Header returns the value of the named header, ignoring case.
func (r *Response[T]) Header(name string) string {
	return lookupHeader(r.Headers, name)
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func lookupHeader(headers map[string]string, name string) string {
	if v, ok := headers[http.CanonicalHeaderKey(name)]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
