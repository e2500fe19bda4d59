package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
	"github.com/oshokin/autofix-handedness/internal/logger"
	repo "github.com/oshokin/autofix-handedness/internal/repository/world"
)

// ErrInvalidCount is returned when crafting a non-positive number of gloves.
var ErrInvalidCount = errors.New("count must be positive")

// World owns the live glove collection of the host.
type World struct {
	// repo persists the collection after every change; nil keeps it in memory.
	repo repo.Repository
	// clock stamps newly crafted gloves.
	clock clockwork.Clock

	// mu serialises access to the collection.
	mu sync.Mutex
	// gloves is the ordered collection.
	gloves []*domain.Glove
	// lastID is the highest item identifier handed out so far.
	lastID int64
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithWorldClock replaces the clock used to stamp crafted gloves.
func WithWorldClock(clock clockwork.Clock) WorldOption {
	return func(w *World) {
		if clock != nil {
			w.clock = clock
		}
	}
}

// WithGloves seeds the collection, mainly for tests and in-memory worlds.
func WithGloves(gloves ...*domain.Glove) WorldOption {
	return func(w *World) {
		w.gloves = append(w.gloves, gloves...)
	}
}

// OpenWorld loads the collection from repository. A missing world file
// results in an empty world. A nil repository keeps the world in memory.
func OpenWorld(ctx context.Context, repository repo.Repository, opts ...WorldOption) (*World, error) {
	w := &World{
		repo:  repository,
		clock: clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(w)
	}

	if repository != nil {
		gloves, err := repository.Load(ctx)
		switch {
		case err == nil:
			w.gloves = append(w.gloves, gloves...)
		case errors.Is(err, repo.ErrNotFound):
			// Keep empty world.
		default:
			return nil, fmt.Errorf("load world: %w", err)
		}
	}

	for _, g := range w.gloves {
		if g != nil && g.ID > w.lastID {
			w.lastID = g.ID
		}
	}

	return w, nil
}

// Mutate runs fn over the live collection while holding the world lock.
// When fn reports a change the collection is persisted. Changes stay visible
// in memory even if persisting fails.
func (w *World) Mutate(ctx context.Context, fn func(gloves []*domain.Glove) bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !fn(w.gloves) {
		return nil
	}

	return w.save(ctx)
}

// Craft appends count new unhanded gloves and returns the collection size.
func (w *World) Craft(ctx context.Context, count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("craft %d gloves: %w", count, ErrInvalidCount)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now().UTC()
	for range count {
		w.lastID++
		w.gloves = append(w.gloves, &domain.Glove{
			ID:        w.lastID,
			CreatedAt: now,
		})
	}

	logger.InfoKV(ctx, "Gloves crafted", "count", count, "total", len(w.gloves))

	return len(w.gloves), w.save(ctx)
}

// Snapshot returns copies of the gloves in collection order.
func (w *World) Snapshot() []*domain.Glove {
	w.mu.Lock()
	defer w.mu.Unlock()

	result := make([]*domain.Glove, 0, len(w.gloves))
	for _, g := range w.gloves {
		result = append(result, g.Clone())
	}

	return result
}

// save persists the collection; the caller holds the lock.
func (w *World) save(ctx context.Context) error {
	if w.repo == nil {
		return nil
	}

	if err := w.repo.Save(ctx, w.gloves); err != nil {
		logger.Errorf(ctx, "Failed to persist world: %v", err)

		return fmt.Errorf("persist world: %w", err)
	}

	return nil
}
