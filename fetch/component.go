package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/kbukum/gofetch/component"
)

// Component runs a Client under a component.Registry. The client is
// created on Start and its idle connections are released on Stop.
type Component struct {
	name     string
	settings Settings
	opts     []Option
	lazy     *component.Lazy
	client   atomic.Pointer[Client]
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a component. An empty name defaults to "fetch".
func NewComponent(name string, settings Settings, opts ...Option) *Component {
	if name == "" {
		name = "fetch"
	}
	c := &Component{name: name, settings: settings, opts: opts}
	c.lazy = component.NewLazy(name, c.init).OnClose(c.close)
	return c
}

func (c *Component) init(_ context.Context) error {
	client, err := NewFromSettings(&c.settings, c.opts...)
	if err != nil {
		return err
	}
	c.client.Store(client)
	return nil
}

func (c *Component) close() error {
	client := c.client.Swap(nil)
	if client == nil {
		return nil
	}
	return client.Close()
}

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// Start creates the client.
func (c *Component) Start(ctx context.Context) error {
	return c.lazy.Init(ctx)
}

// Stop releases the client.
func (c *Component) Stop(_ context.Context) error {
	return c.lazy.Close()
}

// Health reports whether the client has been created. After a failed Start
// the message carries the construction error.
func (c *Component) Health(ctx context.Context) component.Health {
	if err := c.lazy.Check(ctx); err != nil {
		return component.Unhealthy(c.name, err)
	}
	return component.Healthy(c.name)
}

// Describe returns a one-line summary of the component.
func (c *Component) Describe() component.Description {
	kind := c.settings.Client.Transport
	if kind == "" {
		kind = "http"
	}
	details := fmt.Sprintf("%s transport=%s", c.settings.BaseURL, kind)
	if c.settings.Client.Timeout > 0 {
		details += " timeout=" + c.settings.Client.Timeout.String()
	}
	return component.Description{
		Name:    c.name,
		Type:    "http-client",
		Details: details,
		Port:    portOf(c.settings.BaseURL),
	}
}

// Client returns the running client, or nil before Start and after Stop.
func (c *Component) Client() *Client {
	return c.client.Load()
}

func portOf(raw string) int {
	u, err := url.Parse(raw)
	if err != nil {
		return 0
	}
	if p := u.Port(); p != "" {
		n, _ := strconv.Atoi(p)
		return n
	}
	switch u.Scheme {
	case "https":
		return 443
	case "http":
		return 80
	}
	return 0
}
