package component

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/gofetch/logger"
)

// Lazy runs an init function at most once per successful initialization.
// A failed init is remembered and retried on the next Init call.
type Lazy struct {
	name    string
	initFn  func(context.Context) error
	checkFn func(context.Context) error
	closeFn func() error
	log     *logger.Logger

	mu    sync.Mutex
	ready bool
	err   error
}

// NewLazy creates a Lazy named name that runs init on first Init.
func NewLazy(name string, init func(context.Context) error) *Lazy {
	return &Lazy{name: name, initFn: init, log: logger.Nop()}
}

// OnClose sets the function run by Close after a successful Init.
func (l *Lazy) OnClose(fn func() error) *Lazy {
	l.closeFn = fn
	return l
}

// WithCheck sets an extra health check run once the component is ready.
func (l *Lazy) WithCheck(fn func(context.Context) error) *Lazy {
	l.checkFn = fn
	return l
}

// WithLogger sets the logger. Nil keeps the current one.
func (l *Lazy) WithLogger(log *logger.Logger) *Lazy {
	if log != nil {
		l.log = log
	}
	return l
}

// Name returns the name given to NewLazy.
func (l *Lazy) Name() string { return l.name }

// Init runs the init function unless a previous call succeeded.
func (l *Lazy) Init(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ready {
		return nil
	}
	if l.initFn == nil {
		return fmt.Errorf("%s: no init function", l.name)
	}
	if err := l.initFn(ctx); err != nil {
		l.err = err
		l.log.Debug("init failed", logger.Fields("name", l.name, logger.FieldError, err.Error()))
		return fmt.Errorf("init %s: %w", l.name, err)
	}
	l.ready, l.err = true, nil
	l.log.Debug("initialized", logger.Fields("name", l.name))
	return nil
}

// Ready reports whether Init has succeeded since the last Close.
func (l *Lazy) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready
}

// Err returns the error of the last failed Init, or nil.
func (l *Lazy) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Check returns an error unless the component is ready and its check passes.
func (l *Lazy) Check(ctx context.Context) error {
	l.mu.Lock()
	ready, err, check := l.ready, l.err, l.checkFn
	l.mu.Unlock()

	switch {
	case err != nil:
		return err
	case !ready:
		return fmt.Errorf("%s not initialized", l.name)
	case check != nil:
		return check(ctx)
	}
	return nil
}

// Close runs the close function if the component is ready and marks it
// uninitialized so a later Init starts over.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.ready {
		return nil
	}
	l.ready = false
	if l.closeFn != nil {
		return l.closeFn()
	}
	return nil
}
