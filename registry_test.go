package quest

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_RecordEvent(t *testing.T) {
	r := NewRegistry()
	r.AddGoal(NewSimpleGoal("A", "", 10))
	b, _ := NewChecklistGoal("B", "", 2, 2, 5)
	r.AddGoal(b)

	var got []int
	for _, i := range []int{0, 1, 1, 0} {
		earned, err := r.RecordEvent(i)
		if err != nil {
			t.Fatalf("RecordEvent(%d) returned an unexpected error: %v", i, err)
		}
		got = append(got, earned)
	}

	if diff := cmp.Diff([]int{10, 2, 7, 0}, got); diff != "" {
		t.Errorf("RecordEvent() mismatch (-want +got):\n%s", diff)
	}
	if r.TotalPoints() != 19 {
		t.Errorf("TotalPoints() = %d, want 19", r.TotalPoints())
	}
}

func TestRegistry_IndexOutOfRange(t *testing.T) {
	r := NewRegistry()
	r.AddGoal(NewEternalGoal("A", "", 10))
	if _, err := r.RecordEvent(0); err != nil {
		t.Fatalf("RecordEvent(0) returned an unexpected error: %v", err)
	}

	for _, i := range []int{1, 2, -1} {
		earned, err := r.RecordEvent(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RecordEvent(%d) error = %v, want %v", i, err, ErrIndexOutOfRange)
		}
		if earned != 0 {
			t.Errorf("RecordEvent(%d) = %d, want 0", i, earned)
		}
	}
	if r.TotalPoints() != 10 {
		t.Errorf("TotalPoints() = %d, want 10 (unchanged)", r.TotalPoints())
	}

	if _, err := NewRegistry().RecordEvent(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RecordEvent(0) on empty registry error = %v, want %v", err, ErrIndexOutOfRange)
	}
}

func TestRegistry_ListGoals(t *testing.T) {
	r := NewRegistry()
	if got := r.ListGoals(); len(got) != 0 {
		t.Errorf("ListGoals() on empty registry = %v, want empty", got)
	}

	r.AddGoal(NewSimpleGoal("A", "", 1))
	r.AddGoal(NewEternalGoal("B", "", 1))
	r.AddGoal(NewSimpleGoal("A", "again", 1)) // duplicate names are allowed
	r.RecordEvent(2)

	want := []string{"A: [ ]", "B: Eternal Goal (ongoing)", "A: [X]"}
	if diff := cmp.Diff(want, r.ListGoals()); diff != "" {
		t.Errorf("ListGoals() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_GoalsAreCopies(t *testing.T) {
	r := NewRegistry()
	r.AddGoal(NewSimpleGoal("A", "", 1))

	goals := r.Goals()
	goals[0].RecordEvent()

	if r.Goals()[0].IsComplete() {
		t.Error("recording an event on a copy must not change the registry")
	}
	if r.TotalPoints() != 0 {
		t.Errorf("TotalPoints() = %d, want 0", r.TotalPoints())
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	r.AddGoal(NewEternalGoal("A", "", 1))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				r.RecordEvent(0)
			}
		}()
	}
	wg.Wait()

	if r.TotalPoints() != 1000 {
		t.Errorf("TotalPoints() = %d, want 1000", r.TotalPoints())
	}
}

func TestRegistry_Goal(t *testing.T) {
	r := NewRegistry()
	r.AddGoal(NewSimpleGoal("A", "", 1))

	g, err := r.Goal(0)
	if err != nil {
		t.Fatalf("Goal(0) returned an unexpected error: %v", err)
	}
	g.RecordEvent()
	if again, _ := r.Goal(0); again.IsComplete() {
		t.Error("recording an event on the returned goal must not change the registry")
	}
	if _, err := r.Goal(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Goal(1) error = %v, want %v", err, ErrIndexOutOfRange)
	}
}
