package autofix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/oshokin/autofix-handedness/internal/host"
	"github.com/oshokin/autofix-handedness/internal/logger"
)

const (
	// JobName is the name of the periodic callback and the console command.
	JobName = "autofixhandedness"

	// FixIntervalTicks is the fixed period between passes, two in-game days.
	FixIntervalTicks host.Ticks = 2400

	statusRunning = JobName + ": Running"
	statusStopped = JobName + ": Stopped"
)

// ErrNotRunning is returned when stopping a controller that is idle.
var ErrNotRunning = errors.New(JobName + " is not running")

// Scheduler registers periodic callbacks measured in host ticks.
type Scheduler interface {
	Register(name string, every host.Ticks, callback host.Callback) (host.Handle, error)
	Unregister(handle host.Handle) error
}

// State is the lifecycle state of a Controller.
type State int

const (
	// StateIdle means no callback is registered.
	StateIdle State = iota
	// StateRunning means the periodic callback is registered.
	StateRunning
)

// String returns the state name.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}

	return "idle"
}

// Controller toggles the periodic handedness fix.
type Controller struct {
	// scheduler invokes the fix every FixIntervalTicks.
	scheduler Scheduler
	// gloves is the collection fixed on every tick.
	gloves GloveSource
	// out receives the report line after each pass that fixed gloves.
	out io.Writer

	// mu protects state and handle.
	mu sync.Mutex
	// state is the current lifecycle state.
	state State
	// handle identifies the registered callback while running.
	handle host.Handle
}

// Option configures a Controller.
type Option func(*Controller)

// WithOutput sets where report lines are written. Defaults to io.Discard.
func WithOutput(out io.Writer) Option {
	return func(c *Controller) {
		if out != nil {
			c.out = out
		}
	}
}

// NewController creates an idle controller.
func NewController(scheduler Scheduler, gloves GloveSource, opts ...Option) *Controller {
	c := &Controller{
		scheduler: scheduler,
		gloves:    gloves,
		out:       io.Discard,
		state:     StateIdle,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start registers the periodic fix and returns the resulting status.
// Starting a running controller keeps the existing registration.
func (c *Controller) Start(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning {
		logger.Debug(ctx, "Already running, keeping the existing callback")

		return c.status(), nil
	}

	handle, err := c.scheduler.Register(JobName, FixIntervalTicks, c.tick)
	if err != nil {
		return c.status(), fmt.Errorf("start %s: %w", JobName, err)
	}

	c.handle = handle
	c.state = StateRunning

	logger.InfoKV(ctx, "Periodic fix started", "every_ticks", FixIntervalTicks, "handle", handle.String())

	return c.status(), nil
}

// Stop unregisters the periodic fix and returns the resulting status.
func (c *Controller) Stop(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return c.status(), ErrNotRunning
	}

	if err := c.scheduler.Unregister(c.handle); err != nil {
		return c.status(), fmt.Errorf("stop %s: %w", JobName, err)
	}

	logger.InfoKV(ctx, "Periodic fix stopped", "handle", c.handle.String())

	c.handle = uuid.Nil
	c.state = StateIdle

	return c.status(), nil
}

// Status returns the human-readable status line.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Controller) status() string {
	if c.state == StateRunning {
		return statusRunning
	}

	return statusStopped
}

// tick is the periodic callback.
func (c *Controller) tick(ctx context.Context) {
	ctx = logger.WithName(ctx, JobName)

	result, err := FixOnce(ctx, c.gloves, c.out)
	if err != nil {
		logger.ErrorKV(ctx, "Periodic fix failed", "error", err)
		return
	}

	logger.DebugKV(ctx, "Periodic fix finished", "fixed", result.FixedCount)
}
