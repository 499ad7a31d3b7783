package quest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
)

// Store is where saved progress lives.
//
// Read must return an error wrapping fs.ErrNotExist when nothing was saved
// at path.
type Store interface {
	Write(ctx context.Context, path, text string) error
	Read(ctx context.Context, path string) (string, error)
}

// Tracker is the set of operations offered to a user interface: create goals,
// record events, list goals, save and load progress.
type Tracker struct {
	registry *Registry
	store    Store
	log      *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used by the tracker. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithRegistry starts the tracker on an existing registry instead of an
// empty one.
func WithRegistry(r *Registry) Option {
	return func(t *Tracker) { t.registry = r }
}

// NewTracker creates a tracker persisting its progress in store.
func NewTracker(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		registry: NewRegistry(),
		store:    store,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Registry returns the registry being tracked.
func (t *Tracker) Registry() *Registry { return t.registry }

// TotalPoints returns the points earned so far.
func (t *Tracker) TotalPoints() int { return t.registry.TotalPoints() }

// CreateGoal creates a goal and appends it to the registry.
//
// See NewGoal for the meaning of extra.
func (t *Tracker) CreateGoal(kind GoalType, name, description string, points int, extra ...int) error {
	g, err := NewGoal(kind, name, description, points, extra...)
	if err != nil {
		return fmt.Errorf("cannot create goal %q: %w", name, err)
	}
	t.registry.AddGoal(g)
	t.log.Debug("goal created", "kind", kind, "name", name, "points", points)
	return nil
}

// RecordEvent records an event on the goal at index (0 based) and returns
// the points earned.
func (t *Tracker) RecordEvent(index int) (int, error) {
	earned, err := t.registry.RecordEvent(index)
	if err != nil {
		return 0, err
	}
	t.log.Debug("event recorded", "index", index, "earned", earned, "total", t.registry.TotalPoints())
	return earned, nil
}

// ListGoals returns the progress line of every goal.
func (t *Tracker) ListGoals() []string { return t.registry.ListGoals() }

// AwardMessage returns the feedback line for an event recorded on the goal
// at index that earned points.
func (t *Tracker) AwardMessage(index, earned int) string {
	switch {
	case earned > 0:
		return fmt.Sprintf("You earned %d points! Total: %d", earned, t.TotalPoints())
	case earned < 0:
		return fmt.Sprintf("You lost %d points! Total: %d", -earned, t.TotalPoints())
	}
	if g, err := t.registry.Goal(index); err == nil && g.IsComplete() {
		return "No points awarded, goal already completed."
	}
	return fmt.Sprintf("No points awarded. Total: %d", t.TotalPoints())
}

// Save writes the whole progress to destination.
func (t *Tracker) Save(ctx context.Context, destination string) error {
	var b strings.Builder
	if err := EncodeRegistry(&b, t.registry); err != nil {
		return fmt.Errorf("cannot encode progress: %w", err)
	}
	if err := t.store.Write(ctx, destination, b.String()); err != nil {
		return fmt.Errorf("%w: cannot save to %q: %w", ErrStorageUnavailable, destination, err)
	}
	t.log.Info("progress saved", "destination", destination, "goals", t.registry.Len())
	return nil
}

// Load replaces the whole progress with the one saved in source.
//
// On error the current progress is left unchanged.
func (t *Tracker) Load(ctx context.Context, source string) error {
	text, err := t.store.Read(ctx, source)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrNotFound, source)
	}
	if err != nil {
		return fmt.Errorf("%w: cannot load %q: %w", ErrStorageUnavailable, source, err)
	}
	if err := t.registry.Load(strings.NewReader(text)); err != nil {
		return fmt.Errorf("cannot load %q: %w", source, err)
	}
	t.log.Info("progress loaded", "source", source, "goals", t.registry.Len(), "total", t.registry.TotalPoints())
	return nil
}
