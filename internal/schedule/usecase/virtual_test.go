package usecase

import (
	"context"
	"testing"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

func TestExpandVirtualEvents(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store := newFakeStore()
	uc := newTestUseCase(store, now)

	parent := seedEvent(t, store, "Yoga",
		now.Add(10*time.Hour), now.Add(11*time.Hour), model.RecurrenceWeekly)

	got, err := uc.ExpandVirtualEvents(context.Background(), testScope, schedule.VirtualExpandInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Default horizon is three months from now; weekly steps strictly
	// after the Sep 1 anchor land on Sep 8 through Nov 24.
	if len(got) != 12 {
		t.Fatalf("got %d virtual occurrences, want 12", len(got))
	}

	for i, occ := range got {
		if !occ.IsRecurringInstance {
			t.Errorf("occurrence %d not flagged virtual", i)
		}
		if occ.OriginalEventID != parent.ID || occ.ParentID != parent.ID {
			t.Errorf("occurrence %d back-reference = %q/%q, want %q", i, occ.OriginalEventID, occ.ParentID, parent.ID)
		}
		if want := model.VirtualOccurrenceID(parent.ID, i+1); occ.ID != want {
			t.Errorf("occurrence %d id = %q, want %q", i, occ.ID, want)
		}
		if occ.Duration() != time.Hour {
			t.Errorf("occurrence %d duration = %v, want parent's 1h", i, occ.Duration())
		}
		if want := parent.Start.Add(time.Duration(i+1) * 7 * 24 * time.Hour); !occ.Start.Equal(want) {
			t.Errorf("occurrence %d start = %v, want %v", i, occ.Start, want)
		}
	}

	// Nothing persisted by expansion.
	if len(store.events) != 1 {
		t.Errorf("store has %d events, virtual expansion must not persist", len(store.events))
	}
}

func TestExpandVirtualEventsHonorsParentBound(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store := newFakeStore()
	uc := newTestUseCase(store, now)

	ev := model.Event{
		ID:            "parent-bounded",
		User:          testScope.UserID,
		Title:         "Physio",
		Start:         now,
		End:           now.Add(30 * time.Minute),
		Recurrence:    model.RecurrenceDaily,
		RecurrenceEnd: now.Add(5 * 24 * time.Hour),
	}
	store.events[ev.ID] = ev

	got, err := uc.ExpandVirtualEvents(context.Background(), testScope, schedule.VirtualExpandInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("got %d occurrences, want 5 up to the parent's recurrence end", len(got))
	}
}

func TestExpandVirtualEventsInvalidWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(newFakeStore(), now)

	_, err := uc.ExpandVirtualEvents(context.Background(), testScope, schedule.VirtualExpandInput{
		Start: now,
		End:   now.Add(-time.Hour),
	})
	if err != schedule.ErrInvalidWindow {
		t.Errorf("error = %v, want ErrInvalidWindow", err)
	}
}

func TestExpandVirtualEventsSkipsPersistedChildren(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store := newFakeStore()
	uc := newTestUseCase(store, now)

	parent := seedEvent(t, store, "Standup",
		now.Add(6*time.Hour), now.Add(7*time.Hour), model.RecurrenceWeekly)

	// Persist the first three occurrences, as a generation run would.
	if _, err := uc.GenerateRecurringEvents(context.Background(), testScope, schedule.GenerateInput{
		ParentID:     parent.ID,
		MaxInstances: 3,
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := uc.ExpandVirtualEvents(context.Background(), testScope, schedule.VirtualExpandInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Weekly occurrences up to the three-month horizon are 12; the
	// three persisted ones stay out of the virtual set.
	if len(got) != 9 {
		t.Fatalf("got %d virtual occurrences, want 9", len(got))
	}

	firstPersisted := parent.Start.Add(7 * 24 * time.Hour)
	for i, occ := range got {
		if occ.Start.Before(parent.Start.Add(4 * 7 * 24 * time.Hour)) {
			t.Errorf("occurrence %d start %v overlaps a persisted child (first persisted %v)",
				i, occ.Start, firstPersisted)
		}
	}
}
