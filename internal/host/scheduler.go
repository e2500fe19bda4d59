package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/autofix-handedness/internal/logger"
)

// Ticks counts host time units.
type Ticks int64

// Handle identifies a registered periodic callback.
type Handle = uuid.UUID

// Callback is invoked by the scheduler on every period.
type Callback func(ctx context.Context)

var (
	// ErrUnknownHandle is returned when unregistering a handle the scheduler does not know.
	ErrUnknownHandle = errors.New("unknown callback handle")
	// errInvalidPeriod is returned for non-positive periods.
	errInvalidPeriod = errors.New("period must be positive")
	// errNilCallback is returned when registering a nil callback.
	errNilCallback = errors.New("callback is required")
)

// Scheduler wraps a gocron scheduler measuring periods in host ticks.
type Scheduler struct {
	// scheduler runs the registered jobs.
	scheduler gocron.Scheduler
	// tickDuration converts host ticks to wall time.
	tickDuration time.Duration
	// ctx is handed to every callback; it carries the logger.
	ctx context.Context //nolint:containedctx // Callbacks are started by gocron without a caller context.

	// mu protects handles.
	mu sync.Mutex
	// handles lists callbacks that are currently registered.
	handles map[Handle]string
}

// SchedulerOption configures the scheduler.
type SchedulerOption func(*schedulerOptions)

// schedulerOptions holds the values collected from SchedulerOption.
type schedulerOptions struct {
	clock clockwork.Clock
}

// WithClock replaces the wall clock driving the scheduler.
func WithClock(clock clockwork.Clock) SchedulerOption {
	return func(o *schedulerOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// NewScheduler creates and starts a scheduler where one tick lasts tickDuration.
func NewScheduler(ctx context.Context, tickDuration time.Duration, opts ...SchedulerOption) (*Scheduler, error) {
	if tickDuration <= 0 {
		return nil, fmt.Errorf("tick duration: %w", errInvalidPeriod)
	}

	options := &schedulerOptions{
		clock: clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(options)
	}

	ctx = logger.WithName(ctx, "scheduler")

	s, err := gocron.NewScheduler(
		gocron.WithClock(options.clock),
		gocron.WithLogger(newGocronLogger(logger.FromContext(ctx))),
	)
	if err != nil {
		return nil, fmt.Errorf("create gocron scheduler: %w", err)
	}

	s.Start()

	return &Scheduler{
		scheduler:    s,
		tickDuration: tickDuration,
		ctx:          ctx,
		handles:      make(map[Handle]string),
	}, nil
}

// Register schedules callback to run every period ticks and returns its handle.
// The first run happens one full period after registration.
func (s *Scheduler) Register(name string, every Ticks, callback Callback) (Handle, error) {
	if every <= 0 {
		return uuid.Nil, errInvalidPeriod
	}

	if callback == nil {
		return uuid.Nil, errNilCallback
	}

	ctx := s.ctx

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(s.Duration(every)),
		gocron.NewTask(func() { callback(ctx) }),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("register %s: %w", name, err)
	}

	s.mu.Lock()
	s.handles[job.ID()] = name
	s.mu.Unlock()

	logger.DebugKV(s.ctx, "Callback registered", "name", name, "ticks", every, "handle", job.ID().String())

	return job.ID(), nil
}

// Unregister removes the callback; no new runs start after it returns.
func (s *Scheduler) Unregister(handle Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.handles[handle]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, handle)
	}

	if err := s.scheduler.RemoveJob(handle); err != nil {
		return fmt.Errorf("unregister %s: %w", name, err)
	}

	delete(s.handles, handle)

	logger.DebugKV(s.ctx, "Callback unregistered", "name", name, "handle", handle.String())

	return nil
}

// Registered returns the number of callbacks currently registered.
func (s *Scheduler) Registered() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.handles)
}

// Duration converts host ticks to wall time.
func (s *Scheduler) Duration(ticks Ticks) time.Duration {
	return time.Duration(ticks) * s.tickDuration
}

// Shutdown stops the scheduler and waits for running callbacks to finish.
func (s *Scheduler) Shutdown() error {
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}

	return nil
}

// gocronLogger forwards gocron messages to zap. Only warnings and errors are
// kept since gocron is chatty at debug level.
type gocronLogger struct {
	l *zap.SugaredLogger
}

// newGocronLogger wraps l for gocron.
func newGocronLogger(l *zap.SugaredLogger) *gocronLogger {
	return &gocronLogger{
		l: l.WithOptions(logger.WithLevel(zapcore.WarnLevel)),
	}
}

func (g *gocronLogger) Debug(msg string, args ...any) { g.l.Debugw(msg, args...) }
func (g *gocronLogger) Error(msg string, args ...any) { g.l.Errorw(msg, args...) }
func (g *gocronLogger) Info(msg string, args ...any)  { g.l.Infow(msg, args...) }
func (g *gocronLogger) Warn(msg string, args ...any)  { g.l.Warnw(msg, args...) }
