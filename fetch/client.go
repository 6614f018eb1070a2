package fetch

import (
	"io"
	"maps"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/logger"
	"github.com/kbukum/gofetch/observability"
	"github.com/kbukum/gofetch/transport"
	"github.com/kbukum/gofetch/validation"
)

// Client sends requests relative to a base URL. It is safe for concurrent
// use. Calls read an immutable snapshot of the configuration, so a concurrent
// UpdateDefaultHeaders never affects a call that has already started.
type Client struct {
	baseURL string
	state   atomic.Pointer[snapshot]
	mu      sync.Mutex // serializes snapshot replacement
	custom  transport.Transport
	log     *logger.Logger
	inst    *observability.Instrumentation
}

// snapshot is the configuration and transport used by calls that load it.
type snapshot struct {
	config    Config
	transport transport.Transport
}

// New creates a client for baseURL. A nil cfg uses the zero Config.
func New(baseURL string, cfg *Config, opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logger.Nop()
	}

	if _, err := parseAbsolute(baseURL); err != nil {
		return nil, errors.InvalidURL(baseURL, err)
	}

	var c Config
	if cfg != nil {
		c = cfg.clone()
	}
	if err := checkConfig(&c); err != nil {
		return nil, err
	}

	inst, err := observability.New(o.tracerProvider, o.meterProvider, o.propagator)
	if err != nil {
		return nil, errors.Unknown("failed to set up instrumentation", err)
	}

	client := &Client{
		baseURL: baseURL,
		custom:  o.transport,
		log:     o.logger.WithComponent("fetch"),
		inst:    inst,
	}

	snap, err := client.newSnapshot(c)
	if err != nil {
		return nil, err
	}
	client.state.Store(snap)

	client.log.Debug("client created", logger.Fields(
		"base_url", baseURL,
		"transport", transportName(c, o.transport),
		"timeout", c.Timeout.String(),
	))
	return client, nil
}

func (c *Client) newSnapshot(cfg Config) (*snapshot, error) {
	t := c.custom
	if t == nil {
		tc := cfg.transportConfig()
		tc.Logger = c.log
		built, err := transport.New(tc)
		if err != nil {
			return nil, errors.Unknown("failed to build transport", err)
		}
		t = built
	}
	return &snapshot{config: cfg, transport: t}, nil
}

// UpdateDefaultHeaders replaces the client's default headers. Forced headers
// (User-Agent, Content-Type, Accept) are still added to every request. A nil
// map removes all caller headers.
func (c *Client) UpdateDefaultHeaders(headers map[string]string) error {
	if err := validation.New().Headers("headers", headers).Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.state.Load()
	cfg := old.config.clone()
	cfg.Headers = maps.Clone(headers)

	snap, err := c.newSnapshot(cfg)
	if err != nil {
		return err
	}
	c.state.Store(snap)

	if c.custom == nil {
		closeIdle(old.transport)
	}

	c.log.Debug("default headers updated", logger.Fields("count", len(headers)))
	return nil
}

// BuildURL returns the URL a call to path with opts would target.
func (c *Client) BuildURL(path string, opts ...RequestOption) (*url.URL, error) {
	o := resolveOptions(opts)
	return buildURL(c.baseURL, path, o.Params)
}

// DefaultHeaders returns the headers every request starts from, including
// the forced User-Agent, Content-Type and Accept.
func (c *Client) DefaultHeaders() map[string]string {
	cfg := c.state.Load().config
	return merge(&cfg, nil).headers
}

// Config returns a copy of the active configuration.
func (c *Client) Config() Config {
	return c.state.Load().config.clone()
}

// BaseURL returns the base URL the client was created with.
func (c *Client) BaseURL() string { return c.baseURL }

// Transport returns the transport used by new calls.
func (c *Client) Transport() transport.Transport {
	return c.state.Load().transport
}

// Close releases idle connections held by the transport.
func (c *Client) Close() error {
	if closer, ok := c.state.Load().transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func closeIdle(t transport.Transport) {
	if closer, ok := t.(io.Closer); ok {
		_ = closer.Close()
	}
}

func transportName(cfg Config, custom transport.Transport) string {
	switch {
	case custom != nil:
		return "custom"
	case cfg.Transport == "":
		return transport.KindHTTP
	default:
		return cfg.Transport
	}
}
