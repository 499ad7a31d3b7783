package quest

import (
	"fmt"
)

// GoalType is a typed string identifying the kind of a goal.
//
// Its values are written verbatim in saved files.
type GoalType string

// Goal types.
const (
	TypeSimple    GoalType = "SimpleGoal"
	TypeEternal   GoalType = "EternalGoal"
	TypeChecklist GoalType = "ChecklistGoal"
)

// ParseGoalType parses the short names used on the command line ("simple",
// "eternal", "checklist") as well as the persisted tags.
func ParseGoalType(s string) (GoalType, error) {
	switch s {
	case "simple", string(TypeSimple):
		return TypeSimple, nil
	case "eternal", string(TypeEternal):
		return TypeEternal, nil
	case "checklist", string(TypeChecklist):
		return TypeChecklist, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGoalKind, s)
	}
}

// Goal defines the common interface of all goals that can be tracked in a
// Registry.
//
// The set of goals is closed: SimpleGoal, EternalGoal and ChecklistGoal.
type Goal interface {
	Kind() GoalType      // Kind returns the goal type.
	Name() string        // Name returns the goal name.
	Description() string // Description returns the free text description, possibly empty.
	Points() int         // Points returns the base points paid by an event.

	// RecordEvent applies one unit of progress and returns the points earned
	// by this single event, 0 when nothing is due.
	RecordEvent() int
	// IsComplete reports whether the goal will no longer pay any points.
	IsComplete() bool
	// DisplayProgress returns a human readable status line.
	DisplayProgress() string

	clone() Goal
}

type baseGoal struct {
	name        string
	description string
	points      int
}

func (g baseGoal) Name() string        { return g.name }
func (g baseGoal) Description() string { return g.description }
func (g baseGoal) Points() int         { return g.points }

// SimpleGoal is completed by a single event.
type SimpleGoal struct {
	baseGoal
	completed bool
}

// NewSimpleGoal creates a new, not yet completed, SimpleGoal.
func NewSimpleGoal(name, description string, points int) *SimpleGoal {
	return &SimpleGoal{baseGoal: baseGoal{name, description, points}}
}

func (g *SimpleGoal) Kind() GoalType   { return TypeSimple }
func (g *SimpleGoal) IsComplete() bool { return g.completed }

// Completed is the same as IsComplete.
func (g *SimpleGoal) Completed() bool { return g.completed }

// RecordEvent pays the goal points the first time, and nothing afterwards.
func (g *SimpleGoal) RecordEvent() int {
	if g.completed {
		return 0
	}
	g.completed = true
	return g.points
}

func (g *SimpleGoal) DisplayProgress() string {
	mark := "[ ]"
	if g.completed {
		mark = "[X]"
	}
	return fmt.Sprintf("%s: %s", g.name, mark)
}

func (g *SimpleGoal) clone() Goal { c := *g; return &c }

// EternalGoal is never completed, every event pays its points.
type EternalGoal struct {
	baseGoal
}

// NewEternalGoal creates a new EternalGoal.
func NewEternalGoal(name, description string, points int) *EternalGoal {
	return &EternalGoal{baseGoal: baseGoal{name, description, points}}
}

func (g *EternalGoal) Kind() GoalType          { return TypeEternal }
func (g *EternalGoal) IsComplete() bool        { return false }
func (g *EternalGoal) RecordEvent() int        { return g.points }
func (g *EternalGoal) DisplayProgress() string { return g.name + ": Eternal Goal (ongoing)" }
func (g *EternalGoal) clone() Goal             { c := *g; return &c }

// ChecklistGoal must be done a given number of times. Each time pays the base
// points, and the last one pays the bonus on top.
type ChecklistGoal struct {
	baseGoal
	required int // always > 0
	current  int // in [0, required]
	bonus    int
}

// NewChecklistGoal creates a new ChecklistGoal with no progress.
func NewChecklistGoal(name, description string, points, required, bonus int) (*ChecklistGoal, error) {
	if required <= 0 {
		return nil, fmt.Errorf("%w: required count must be positive, got %d", ErrInvalidArgument, required)
	}
	return &ChecklistGoal{baseGoal: baseGoal{name, description, points}, required: required, bonus: bonus}, nil
}

func (g *ChecklistGoal) Kind() GoalType     { return TypeChecklist }
func (g *ChecklistGoal) IsComplete() bool   { return g.current >= g.required }
func (g *ChecklistGoal) RequiredCount() int { return g.required }
func (g *ChecklistGoal) CurrentCount() int  { return g.current }
func (g *ChecklistGoal) BonusPoints() int   { return g.bonus }

// RecordEvent increments the count and pays the points. The event reaching
// the required count also pays the bonus. Once complete nothing is paid.
func (g *ChecklistGoal) RecordEvent() int {
	if g.current >= g.required {
		return 0
	}
	g.current++
	if g.current == g.required {
		return g.points + g.bonus
	}
	return g.points
}

func (g *ChecklistGoal) DisplayProgress() string {
	return fmt.Sprintf("%s: Completed %d/%d times.", g.name, g.current, g.required)
}

func (g *ChecklistGoal) clone() Goal { c := *g; return &c }

// NewGoal creates a goal of the given kind.
//
// ChecklistGoal requires two extra values: the required count and the bonus
// points. Other kinds ignore extra values.
func NewGoal(kind GoalType, name, description string, points int, extra ...int) (Goal, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: goal name is missing", ErrInvalidArgument)
	}
	switch kind {
	case TypeSimple:
		return NewSimpleGoal(name, description, points), nil
	case TypeEternal:
		return NewEternalGoal(name, description, points), nil
	case TypeChecklist:
		if len(extra) < 2 {
			return nil, fmt.Errorf("%w: checklist goal needs a required count and bonus points", ErrInvalidArgument)
		}
		g, err := NewChecklistGoal(name, description, points, extra[0], extra[1])
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGoalKind, kind)
	}
}
