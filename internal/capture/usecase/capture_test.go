package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeblock/internal/capture"
	"timeblock/internal/model"
	"timeblock/pkg/quickcapture"
)

var testScope = model.Scope{UserID: "u1"}

// Tuesday morning, UTC.
var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func TestCapturePlainTask(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(t, store, testNow)

	out, err := uc.Capture(context.Background(), testScope, capture.CaptureInput{Text: "buy milk urgent #errands"})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if out.Todo == nil || out.Event != nil {
		t.Fatalf("expected a todo, got todo=%v event=%v", out.Todo, out.Event)
	}
	if out.Parsed.Kind != quickcapture.KindTask {
		t.Errorf("got kind %q, want task", out.Parsed.Kind)
	}
	if out.Todo.Name != "buy milk" {
		t.Errorf("got name %q, want %q", out.Todo.Name, "buy milk")
	}
	if out.Todo.Priority != model.PriorityP1 {
		t.Errorf("got priority %q, want P1", out.Todo.Priority)
	}
	if len(out.Todo.Tags) != 1 || out.Todo.Tags[0] != "errands" {
		t.Errorf("got tags %v, want [errands]", out.Todo.Tags)
	}

	wantDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !out.Todo.Date.Equal(wantDate) {
		t.Errorf("got date %v, want start of today %v", out.Todo.Date, wantDate)
	}
	if out.Todo.User != testScope.UserID {
		t.Errorf("todo not scoped to caller: %q", out.Todo.User)
	}
	if len(store.todos) != 1 {
		t.Errorf("store holds %d todos, want 1", len(store.todos))
	}
}

func TestCaptureTimedEvent(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(t, store, testNow)

	out, err := uc.Capture(context.Background(), testScope, capture.CaptureInput{Text: "meeting with anna tomorrow at 3pm"})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if out.Event == nil || out.Todo != nil {
		t.Fatalf("expected an event, got todo=%v event=%v", out.Todo, out.Event)
	}
	if out.Parsed.Kind != quickcapture.KindEvent {
		t.Errorf("got kind %q, want event", out.Parsed.Kind)
	}
	if out.Parsed.Confidence != 0.95 {
		t.Errorf("got confidence %v, want 0.95", out.Parsed.Confidence)
	}

	wantStart := time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)
	if !out.Event.Start.Equal(wantStart) {
		t.Errorf("got start %v, want %v", out.Event.Start, wantStart)
	}
	if got := out.Event.End.Sub(out.Event.Start); got != time.Hour {
		t.Errorf("got duration %v, want default 1h", got)
	}
	if out.Event.User != testScope.UserID {
		t.Errorf("event not scoped to caller: %q", out.Event.User)
	}
}

func TestCaptureEventWithDuration(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(t, store, testNow)

	out, err := uc.Capture(context.Background(), testScope, capture.CaptureInput{Text: "call with bob at 2:30pm for 90 minutes"})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if out.Event == nil {
		t.Fatalf("expected an event")
	}

	wantStart := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	wantEnd := wantStart.Add(90 * time.Minute)
	if !out.Event.Start.Equal(wantStart) {
		t.Errorf("got start %v, want %v", out.Event.Start, wantStart)
	}
	if !out.Event.End.Equal(wantEnd) {
		t.Errorf("got end %v, want %v", out.Event.End, wantEnd)
	}
}

func TestCaptureKeywordOnlyEventDefaultsToMorning(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(t, store, testNow)

	out, err := uc.Capture(context.Background(), testScope, capture.CaptureInput{Text: "team standup meeting"})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if out.Event == nil {
		t.Fatalf("expected an event for keyword input")
	}

	wantStart := time.Date(2026, 9, 1, defaultEventHour, 0, 0, 0, time.UTC)
	if !out.Event.Start.Equal(wantStart) {
		t.Errorf("got start %v, want %v", out.Event.Start, wantStart)
	}
}

func TestCaptureEmptyInput(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(t, store, testNow)

	if _, err := uc.Capture(context.Background(), testScope, capture.CaptureInput{Text: "   "}); !errors.Is(err, capture.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
	if len(store.todos)+len(store.events) != 0 {
		t.Errorf("empty input must persist nothing")
	}
}

func TestCaptureStoreError(t *testing.T) {
	store := newFakeStore()
	store.failCreates = true
	uc := newTestUseCase(t, store, testNow)

	if _, err := uc.Capture(context.Background(), testScope, capture.CaptureInput{Text: "buy milk"}); !errors.Is(err, errStoreDown) {
		t.Fatalf("got %v, want wrapped store error", err)
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(t, store, testNow)

	out, err := uc.Preview(context.Background(), testScope, capture.CaptureInput{Text: "dentist appointment friday at 10am"})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if out.Parsed.Kind != quickcapture.KindEvent {
		t.Errorf("got kind %q, want event", out.Parsed.Kind)
	}
	if out.Parsed.Date == nil {
		t.Errorf("expected a resolved weekday date")
	} else if got := out.Parsed.Date.Weekday(); got != time.Friday {
		t.Errorf("got weekday %v, want Friday", got)
	}
	if len(store.todos)+len(store.events) != 0 {
		t.Errorf("preview must persist nothing")
	}
}
