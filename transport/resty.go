package transport

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/kbukum/gofetch/logger"
)

// Resty sends requests with a resty client.
type Resty struct {
	client *resty.Client
}

// NewResty creates a resty-backed transport from cfg.
func NewResty(cfg Config) (*Resty, error) {
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	c := resty.New().
		SetTimeout(cfg.Timeout).
		SetAllowGetMethodPayload(true).
		SetLogger(log.WithComponent("resty"))
	if tlsCfg != nil {
		c.SetTLSClientConfig(tlsCfg)
	}
	return &Resty{client: c}, nil
}

// NewRestyWithClient wraps an existing resty client.
func NewRestyWithClient(c *resty.Client) *Resty {
	if c == nil {
		c = resty.New()
	}
	return &Resty{client: c}
}

// Client returns the underlying resty client.
func (t *Resty) Client() *resty.Client { return t.client }

// Send executes req through resty. Bodies are passed as raw bytes so resty
// never re-encodes them.
func (t *Resty) Send(ctx context.Context, req *Request) (*Response, error) {
	r := t.client.R().
		SetContext(ctx).
		SetHeaders(req.Header).
		EnableTrace()
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL.String())
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     FlattenHeader(resp.Header()),
		Body:       resp.Body(),
		RemoteAddr: resp.Request.TraceInfo().RemoteAddr,
	}, nil
}

// Close releases idle connections.
func (t *Resty) Close() error {
	t.client.GetClient().CloseIdleConnections()
	return nil
}
