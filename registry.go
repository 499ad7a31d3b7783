package quest

import (
	"fmt"
	"sync"
)

// Registry holds an ordered list of goals and the total of points earned.
//
// Goals are displayed and selected in insertion order. The total may go
// negative when goals have negative points.
type Registry struct {
	mu    sync.Mutex
	goals []Goal
	total int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{goals: make([]Goal, 0)}
}

// AddGoal appends a goal. Names are not required to be unique.
func (r *Registry) AddGoal(g Goal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals = append(r.goals, g)
}

// RecordEvent records one event on the goal at index, and adds the points
// earned to the total.
//
// Earning 0 points is not an error.
func (r *Registry) RecordEvent(index int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.goals) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(r.goals))
	}
	earned := r.goals[index].RecordEvent()
	r.total += earned
	return earned, nil
}

// ListGoals returns the progress line of every goal, in order.
func (r *Registry) ListGoals() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, 0, len(r.goals))
	for _, g := range r.goals {
		lines = append(lines, g.DisplayProgress())
	}
	return lines
}

// TotalPoints returns the points accumulated so far.
func (r *Registry) TotalPoints() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Len returns the number of goals.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.goals)
}

// Goal returns a copy of the goal at index.
func (r *Registry) Goal(index int) (Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.goals) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(r.goals))
	}
	return r.goals[index].clone(), nil
}

// Goals returns a copy of the goals. Recording events on them does not
// affect the registry.
func (r *Registry) Goals() []Goal {
	_, goals := r.snapshot()
	return goals
}

// snapshot returns the total and a copy of the goals, consistent with each
// other.
func (r *Registry) snapshot() (int, []Goal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	goals := make([]Goal, 0, len(r.goals))
	for _, g := range r.goals {
		goals = append(goals, g.clone())
	}
	return r.total, goals
}

// replace swaps the whole state of r with the state of src.
func (r *Registry) replace(src *Registry) {
	if src == r {
		return
	}
	total, goals := src.snapshot()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
	r.goals = goals
}
