package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"sync"
)

// HTTP sends requests with net/http.
type HTTP struct {
	client *http.Client
}

// NewHTTP creates an HTTP transport from cfg.
func NewHTTP(cfg Config) (*HTTP, error) {
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	if tlsCfg != nil {
		base.TLSClientConfig = tlsCfg
	}

	return &HTTP{
		client: &http.Client{
			Transport: base,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// NewHTTPWithClient wraps an existing *http.Client.
func NewHTTPWithClient(c *http.Client) *HTTP {
	if c == nil {
		c = &http.Client{}
	}
	return &HTTP{client: c}
}

// Client returns the underlying *http.Client.
func (t *HTTP) Client() *http.Client { return t.client }

// Send executes req and reads the full response body.
func (t *HTTP) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	var (
		mu     sync.Mutex
		remote net.Addr
	)
	ctx = httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			if info.Conn == nil {
				return
			}
			mu.Lock()
			remote = info.Conn.RemoteAddr()
			mu.Unlock()
		},
	})

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     FlattenHeader(resp.Header),
		Body:       data,
		RemoteAddr: remote,
	}, nil
}

// Close releases idle connections.
func (t *HTTP) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
