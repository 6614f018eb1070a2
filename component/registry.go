package component

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kbukum/gofetch/logger"
)

// StopTimeout bounds each component's Stop call.
const StopTimeout = 10 * time.Second

type entry struct {
	c       Component
	running bool
}

// Registry runs components in registration order and stops them in reverse.
// A failed start stops whatever was already running.
type Registry struct {
	mu      sync.Mutex
	entries []*entry
	byName  map[string]*entry
	log     *logger.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		byName: make(map[string]*entry),
		log:    log.WithComponent("registry"),
	}
}

// Register appends c. Names must be unique and non-empty.
func (r *Registry) Register(c Component) error {
	if c == nil {
		return errors.New("component is nil")
	}
	name := c.Name()
	if name == "" {
		return errors.New("component name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("component %s already registered", name)
	}
	e := &entry{c: c}
	r.entries = append(r.entries, e)
	r.byName[name] = e

	r.log.Debug("component registered", logger.Fields("name", name))
	return nil
}

// StartAll starts every component that is not already running. On failure
// the components started by this call are stopped again in reverse order.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var started []*entry
	for _, e := range r.entries {
		if e.running {
			continue
		}
		name := e.c.Name()
		if err := e.c.Start(ctx); err != nil {
			r.log.Error("component start failed", logger.Fields("name", name, logger.FieldError, err.Error()))
			for i := len(started) - 1; i >= 0; i-- {
				_ = r.stop(ctx, started[i])
			}
			return fmt.Errorf("start %s: %w", name, err)
		}
		e.running = true
		started = append(started, e)
		r.log.Debug("component started", logger.Fields("name", name))
	}

	r.log.Info("components started", logger.Fields("count", len(started)))
	return nil
}

// StopAll stops running components in reverse registration order and
// returns every stop error joined.
func (r *Registry) StopAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for i := len(r.entries) - 1; i >= 0; i-- {
		if e := r.entries[i]; e.running {
			if err := r.stop(ctx, e); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	r.log.Info("components stopped")
	return nil
}

func (r *Registry) stop(ctx context.Context, e *entry) error {
	name := e.c.Name()
	ctx, cancel := context.WithTimeout(ctx, StopTimeout)
	defer cancel()

	e.running = false
	if err := e.c.Stop(ctx); err != nil {
		r.log.Error("component stop failed", logger.Fields("name", name, logger.FieldError, err.Error()))
		return fmt.Errorf("stop %s: %w", name, err)
	}
	r.log.Debug("component stopped", logger.Fields("name", name))
	return nil
}

// HealthAll reports the health of every component in registration order.
func (r *Registry) HealthAll(ctx context.Context) []Health {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Health, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.c.Health(ctx)
	}
	return out
}

// Describe returns descriptions of the components that implement Describable.
func (r *Registry) Describe() []Description {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Description
	for _, e := range r.entries {
		d, ok := e.c.(Describable)
		if !ok {
			continue
		}
		desc := d.Describe()
		if desc.Name == "" {
			desc.Name = e.c.Name()
		}
		out = append(out, desc)
	}
	return out
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (Component, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return e.c, true
}
