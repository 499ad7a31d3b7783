package quest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// memStore is an in-memory Store.
type memStore struct {
	saves map[string]string
	err   error // returned by every call when set
}

func newMemStore() *memStore { return &memStore{saves: make(map[string]string)} }

func (m *memStore) Write(_ context.Context, path, text string) error {
	if m.err != nil {
		return m.err
	}
	m.saves[path] = text
	return nil
}

func (m *memStore) Read(_ context.Context, path string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	text, ok := m.saves[path]
	if !ok {
		return "", fmt.Errorf("no save at %q: %w", path, fs.ErrNotExist)
	}
	return text, nil
}

func TestTracker_Scenario(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	tr := NewTracker(store)

	if err := tr.CreateGoal(TypeSimple, "Run a marathon", "", 100); err != nil {
		t.Fatalf("CreateGoal() returned an unexpected error: %v", err)
	}
	if err := tr.CreateGoal(TypeEternal, "Read a chapter", "", 50); err != nil {
		t.Fatalf("CreateGoal() returned an unexpected error: %v", err)
	}
	if err := tr.CreateGoal(TypeChecklist, "Visit a museum", "", 20, 3, 200); err != nil {
		t.Fatalf("CreateGoal() returned an unexpected error: %v", err)
	}

	var messages []string
	for _, i := range []int{0, 0, 1, 2} {
		earned, err := tr.RecordEvent(i)
		if err != nil {
			t.Fatalf("RecordEvent(%d) returned an unexpected error: %v", i, err)
		}
		messages = append(messages, tr.AwardMessage(i, earned))
	}
	wantMessages := []string{
		"You earned 100 points! Total: 100",
		"No points awarded, goal already completed.",
		"You earned 50 points! Total: 150",
		"You earned 20 points! Total: 170",
	}
	if diff := cmp.Diff(wantMessages, messages); diff != "" {
		t.Errorf("AwardMessage() mismatch (-want +got):\n%s", diff)
	}

	if err := tr.Save(ctx, "progress.txt"); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}

	other := NewTracker(store)
	if err := other.Load(ctx, "progress.txt"); err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if other.TotalPoints() != 170 {
		t.Errorf("TotalPoints() = %d, want 170", other.TotalPoints())
	}
	if diff := cmp.Diff(tr.ListGoals(), other.ListGoals()); diff != "" {
		t.Errorf("ListGoals() mismatch (-want +got):\n%s", diff)
	}
}

func TestTracker_AwardMessage(t *testing.T) {
	tr := NewTracker(newMemStore())
	tr.CreateGoal(TypeEternal, "Free", "", 0)
	tr.CreateGoal(TypeEternal, "Penalty", "", -5)
	tr.CreateGoal(TypeChecklist, "Museum", "", 0, 1, 0)

	tests := []struct {
		index int
		want  string
	}{
		{0, "No points awarded. Total: 0"},
		{1, "You lost 5 points! Total: -5"},
		{2, "No points awarded, goal already completed."},
		{2, "No points awarded, goal already completed."},
	}
	for _, tt := range tests {
		earned, err := tr.RecordEvent(tt.index)
		if err != nil {
			t.Fatalf("RecordEvent(%d) returned an unexpected error: %v", tt.index, err)
		}
		if got := tr.AwardMessage(tt.index, earned); got != tt.want {
			t.Errorf("AwardMessage(%d, %d) = %q, want %q", tt.index, earned, got, tt.want)
		}
	}
}

func TestTracker_Load_LegacyChecklist(t *testing.T) {
	store := newMemStore()
	store.saves["legacy.txt"] = "50\nSimpleGoal|A|d|10\nChecklistGoal|B|d|5\n"
	tr := NewTracker(store)

	err := tr.Load(context.Background(), "legacy.txt")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Load() error = %v, want %v", err, ErrMalformedRecord)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Load() error = %v, want it to name line 3", err)
	}
}

func TestTracker_CreateGoal_Invalid(t *testing.T) {
	tr := NewTracker(newMemStore())
	if err := tr.CreateGoal(TypeChecklist, "A", "", 5, 0, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CreateGoal() error = %v, want %v", err, ErrInvalidArgument)
	}
	if err := tr.CreateGoal("Weekly", "A", "", 5); !errors.Is(err, ErrInvalidGoalKind) {
		t.Errorf("CreateGoal() error = %v, want %v", err, ErrInvalidGoalKind)
	}
	if n := tr.Registry().Len(); n != 0 {
		t.Errorf("Registry().Len() = %d, want 0", n)
	}
}

func TestTracker_RecordEvent_OutOfRange(t *testing.T) {
	tr := NewTracker(newMemStore())
	if _, err := tr.RecordEvent(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RecordEvent() error = %v, want %v", err, ErrIndexOutOfRange)
	}
}

func TestTracker_Load_NotFound(t *testing.T) {
	tr := NewTracker(newMemStore())
	tr.CreateGoal(TypeSimple, "A", "", 1)

	if err := tr.Load(context.Background(), "missing.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want %v", err, ErrNotFound)
	}
	if tr.Registry().Len() != 1 {
		t.Errorf("Registry().Len() = %d, want 1 (unchanged)", tr.Registry().Len())
	}
}

func TestTracker_Load_Malformed(t *testing.T) {
	store := newMemStore()
	store.saves["bad.txt"] = "12\nSimpleGoal|A\n"
	tr := NewTracker(store)

	if err := tr.Load(context.Background(), "bad.txt"); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Load() error = %v, want %v", err, ErrMalformedRecord)
	}
	if tr.TotalPoints() != 0 {
		t.Errorf("TotalPoints() = %d, want 0", tr.TotalPoints())
	}
}

func TestTracker_StorageUnavailable(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.err = errors.New("disk on fire")
	tr := NewTracker(store)

	if err := tr.Save(ctx, "progress.txt"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Save() error = %v, want %v", err, ErrStorageUnavailable)
	}
	if err := tr.Load(ctx, "progress.txt"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Load() error = %v, want %v", err, ErrStorageUnavailable)
	}
}

func TestTracker_WithRegistry(t *testing.T) {
	r := NewRegistry()
	r.AddGoal(NewEternalGoal("A", "", 4))
	tr := NewTracker(newMemStore(), WithRegistry(r))

	if _, err := tr.RecordEvent(0); err != nil {
		t.Fatalf("RecordEvent() returned an unexpected error: %v", err)
	}
	if r.TotalPoints() != 4 {
		t.Errorf("TotalPoints() = %d, want 4", r.TotalPoints())
	}
}
