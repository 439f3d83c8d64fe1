package scroll

import (
	"sync"

	"github.com/go-drift/scrollto/pkg/errors"
)

// Controller owns the live state of one mounted scroll button: its
// visibility flag, its scroll subscription, and any pending delayed
// activations. Create one per button instance on mount and call Dispose on
// unmount; nothing is shared between controllers.
//
// All methods are safe for concurrent use. Scroll events, activations, and
// disposal may arrive from different goroutines because delayed activations
// fire on scheduler timers.
type Controller struct {
	cfg  Config
	host Host

	mu          sync.Mutex
	visible     bool
	listeners   map[int]func()
	nextID      int
	pending     map[int]func()
	nextPending int
	unsubscribe func()
	disposed    bool
}

// NewController creates a controller for cfg against host.
//
// With AutoHide set, the initial visibility is computed from the current
// offset of the visibility source and a scroll listener is registered on it
// (the page by default, the ShowID element when it resolves). With AutoHide
// unset the button is permanently visible and no listener is registered.
func NewController(cfg Config, host Host) *Controller {
	c := &Controller{
		cfg:     cfg,
		host:    host,
		visible: true,
		pending: make(map[int]func()),
	}
	if cfg.AutoHide {
		c.visible = visibleAt(c.currentOffset(), cfg.Threshold)
		c.unsubscribe = host.Listen(cfg.ShowID, c.handleScroll)
	}
	return c
}

// Config returns the configuration the controller was created with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Visible reports whether the button should currently be shown.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// AddListener registers a callback invoked whenever visibility flips.
// Bindings use it to schedule a re-render. Returns an unregister function.
func (c *Controller) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Activate runs the scroll flow: fire OnBegin, resolve the target, issue
// one scroll command, update the URL fragment when configured, fire OnEnd.
// With a positive Delay the flow is scheduled (never blocking) and each
// activation schedules independently; disposal cancels every pending one.
// Without a delay the flow runs before Activate returns. Activating a
// disposed controller is a no-op.
func (c *Controller) Activate() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	if c.cfg.Delay <= 0 {
		c.mu.Unlock()
		c.perform()
		return
	}
	id := c.nextPending
	c.nextPending++
	c.pending[id] = nil
	c.mu.Unlock()

	cancel := currentScheduler().After(c.cfg.Delay, func() {
		c.mu.Lock()
		_, live := c.pending[id]
		delete(c.pending, id)
		disposed := c.disposed
		c.mu.Unlock()
		if !live || disposed {
			return
		}
		c.perform()
	})

	c.mu.Lock()
	if _, live := c.pending[id]; live {
		c.pending[id] = cancel
		c.mu.Unlock()
		return
	}
	// The callback already ran (or disposal raced in); nothing to keep.
	c.mu.Unlock()
	cancel()
}

// Dispose deregisters the scroll listener and cancels every pending delayed
// activation. Safe to call more than once. After Dispose the controller
// ignores scroll events and activations.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	cancels := make([]func(), 0, len(c.pending))
	for _, cancel := range c.pending {
		if cancel != nil {
			cancels = append(cancels, cancel)
		}
	}
	c.pending = nil
	c.listeners = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	for _, cancel := range cancels {
		cancel()
	}
}

// visibleAt is the whole visibility rule: past the threshold, show.
func visibleAt(offset, threshold float64) bool {
	return offset > threshold
}

// currentOffset reads the visibility source's offset, falling back to the
// page when ShowID does not resolve.
func (c *Controller) currentOffset() float64 {
	if c.cfg.ShowID != "" {
		if offset, ok := c.host.ScrollOffset(c.cfg.ShowID); ok {
			return offset
		}
	}
	offset, _ := c.host.ScrollOffset("")
	return offset
}

func (c *Controller) handleScroll(offset float64) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	visible := visibleAt(offset, c.cfg.Threshold)
	if visible == c.visible {
		c.mu.Unlock()
		return
	}
	c.visible = visible
	notify := make([]func(), 0, len(c.listeners))
	for _, listener := range c.listeners {
		notify = append(notify, listener)
	}
	c.mu.Unlock()

	for _, listener := range notify {
		listener()
	}
}

// perform issues the scroll command. User callbacks and host calls are
// panic-isolated so a bad callback cannot take down the host's event loop.
func (c *Controller) perform() {
	defer errors.Recover("scroll.Controller.Activate")
	if c.cfg.OnBegin != nil {
		c.cfg.OnBegin()
	}
	c.host.ScrollTo(ResolveTarget(c.cfg, c.host))
	if c.cfg.UpdateHash && c.cfg.ScrollID != "" {
		c.host.SetFragment(c.cfg.ScrollID)
	}
	if c.cfg.OnEnd != nil {
		c.cfg.OnEnd()
	}
}
