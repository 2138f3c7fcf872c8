package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

func TestReconcileTodoChildren(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	store := newFakeStore()
	uc := newTestUseCase(store, anchor)
	parent := seedRecurringTodo(t, store, model.RecurrenceDaily, anchor, time.Time{})

	_, err := uc.GenerateRecurringTasks(context.Background(), testScope, schedule.GenerateInput{
		ParentID:     parent.ID,
		MaxInstances: 4,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	input := schedule.ReconcileInput{ParentID: parent.ID, Collection: schedule.CollectionTodo}

	t.Run("FindChildren", func(t *testing.T) {
		children, err := uc.FindChildren(context.Background(), testScope, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(children.Todos) != 4 {
			t.Fatalf("got %d children, want 4", len(children.Todos))
		}
		for _, c := range children.Todos {
			if c.ParentID != parent.ID {
				t.Errorf("child %s parent = %q", c.ID, c.ParentID)
			}
		}
	})

	t.Run("CascadeUpdate", func(t *testing.T) {
		newName := "Water the plants (balcony)"
		out, err := uc.CascadeUpdate(context.Background(), testScope, input, schedule.Patch{Name: &newName})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Matched != 4 || out.Applied != 4 || out.Failed != 0 {
			t.Fatalf("out = %+v, want 4 matched and applied", out)
		}

		children, _ := uc.FindChildren(context.Background(), testScope, input)
		for _, c := range children.Todos {
			if c.Name != newName {
				t.Errorf("child %s name = %q, want %q", c.ID, c.Name, newName)
			}
		}
		// The parent itself is untouched.
		got, _ := store.GetTodo(context.Background(), testScope, parent.ID)
		if got.Name != parent.Name {
			t.Errorf("parent name changed to %q", got.Name)
		}
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		out, err := uc.CascadeDelete(context.Background(), testScope, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Applied != 4 {
			t.Fatalf("applied = %d, want 4", out.Applied)
		}

		children, _ := uc.FindChildren(context.Background(), testScope, input)
		if len(children.Todos) != 0 {
			t.Errorf("%d children remain after cascade delete", len(children.Todos))
		}
		if _, err := store.GetTodo(context.Background(), testScope, parent.ID); err != nil {
			t.Error("cascade delete must not remove the parent itself")
		}
	})
}

func TestReconcileEventChildren(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	store := newFakeStore()
	uc := newTestUseCase(store, anchor)
	parent := seedEvent(t, store, "Standup", anchor, anchor.Add(30*time.Minute), model.RecurrenceWeekly)

	if _, err := uc.GenerateRecurringEvents(context.Background(), testScope, schedule.GenerateInput{
		ParentID:     parent.ID,
		MaxInstances: 3,
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	input := schedule.ReconcileInput{ParentID: parent.ID, Collection: schedule.CollectionCalendar}

	newTitle := "Daily sync"
	out, err := uc.CascadeUpdate(context.Background(), testScope, input, schedule.Patch{Title: &newTitle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Applied != 3 {
		t.Fatalf("applied = %d, want 3", out.Applied)
	}

	children, _ := uc.FindChildren(context.Background(), testScope, input)
	for _, c := range children.Events {
		if c.Title != newTitle {
			t.Errorf("child %s title = %q, want %q", c.ID, c.Title, newTitle)
		}
	}
}

func TestReconcileUnknownCollection(t *testing.T) {
	uc := newTestUseCase(newFakeStore(), time.Now())

	_, err := uc.FindChildren(context.Background(), testScope, schedule.ReconcileInput{
		ParentID:   "x",
		Collection: "Notes",
	})
	if !errors.Is(err, schedule.ErrUnknownCollection) {
		t.Errorf("error = %v, want ErrUnknownCollection", err)
	}
}

func TestCascadeDeleteCleansMirroredEvents(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	store := newFakeStore()
	uc := newTestUseCase(store, anchor)
	mirror := &fakeMirror{}
	uc.mirror = mirror

	parent := seedEvent(t, store, "Weekly sync",
		anchor, anchor.Add(time.Hour), model.RecurrenceWeekly)

	gen, err := uc.GenerateRecurringEvents(context.Background(), testScope, schedule.GenerateInput{
		ParentID:     parent.ID,
		MaxInstances: 3,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var mirrorIDs []string
	for _, ev := range gen.Events {
		mirrorIDs = append(mirrorIDs, store.events[ev.ID].CalendarEventID)
	}

	out, err := uc.CascadeDelete(context.Background(), testScope, schedule.ReconcileInput{
		Collection: schedule.CollectionCalendar,
		ParentID:   parent.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Applied != 3 {
		t.Fatalf("applied = %d, want 3", out.Applied)
	}

	if len(mirror.deleted) != 3 {
		t.Fatalf("mirror deletions = %d, want 3", len(mirror.deleted))
	}
	for i, id := range mirrorIDs {
		if mirror.deleted[i] != id {
			t.Errorf("mirror deletion %d = %q, want %q", i, mirror.deleted[i], id)
		}
	}
}

func TestCascadeDeleteMirrorFailureNonFatal(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	store := newFakeStore()
	uc := newTestUseCase(store, anchor)
	uc.mirror = &fakeMirror{}

	parent := seedEvent(t, store, "Weekly sync",
		anchor, anchor.Add(time.Hour), model.RecurrenceWeekly)
	if _, err := uc.GenerateRecurringEvents(context.Background(), testScope, schedule.GenerateInput{
		ParentID:     parent.ID,
		MaxInstances: 2,
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	uc.mirror = &fakeMirror{deleteFail: true}
	out, err := uc.CascadeDelete(context.Background(), testScope, schedule.ReconcileInput{
		Collection: schedule.CollectionCalendar,
		ParentID:   parent.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Applied != 2 || out.Failed != 0 {
		t.Fatalf("applied = %d failed = %d, mirror failure must not fail the local delete", out.Applied, out.Failed)
	}
}
