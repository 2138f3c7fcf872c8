package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule/repository"
	"timeblock/pkg/datemath"
	"timeblock/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errStoreDown = errors.New("store down")

// fakeStore is an in-memory stand-in for both repository interfaces.
type fakeStore struct {
	todos  map[string]model.Todo
	events map[string]model.Event
	nextID int

	// failCreatesAt makes every nth create fail, 0 disables.
	failCreatesAt int
	createCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		todos:  make(map[string]model.Todo),
		events: make(map[string]model.Event),
	}
}

func (s *fakeStore) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *fakeStore) GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	t, ok := s.todos[id]
	if !ok || t.User != sc.UserID {
		return model.Todo{}, repository.ErrNotFound
	}
	return t, nil
}

func (s *fakeStore) CreateTodo(ctx context.Context, sc model.Scope, opt repository.CreateTodoOptions) (model.Todo, error) {
	s.createCalls++
	if s.failCreatesAt > 0 && s.createCalls%s.failCreatesAt == 0 {
		return model.Todo{}, errStoreDown
	}

	t := model.Todo{
		ID:            s.id("todo"),
		User:          sc.UserID,
		Name:          opt.Name,
		Date:          opt.Date,
		Priority:      opt.Priority,
		Tags:          opt.Tags,
		Recurrence:    opt.Recurrence,
		RecurrenceEnd: opt.RecurrenceEnd,
		ParentID:      opt.ParentID,
	}
	if t.Recurrence == "" {
		t.Recurrence = model.RecurrenceNone
	}
	s.todos[t.ID] = t
	return t, nil
}

func (s *fakeStore) UpdateTodo(ctx context.Context, sc model.Scope, id string, opt repository.UpdateTodoOptions) (model.Todo, error) {
	t, err := s.GetTodo(ctx, sc, id)
	if err != nil {
		return model.Todo{}, err
	}
	if opt.Name != nil {
		t.Name = *opt.Name
	}
	if opt.Date != nil {
		t.Date = *opt.Date
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Done != nil {
		t.Done = *opt.Done
	}
	s.todos[id] = t
	return t, nil
}

func (s *fakeStore) DeleteTodo(ctx context.Context, sc model.Scope, id string) error {
	if _, err := s.GetTodo(ctx, sc, id); err != nil {
		return err
	}
	delete(s.todos, id)
	return nil
}

func (s *fakeStore) ListTodoChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Todo, error) {
	var out []model.Todo
	for _, t := range s.todos {
		if t.User == sc.UserID && t.ParentID == parentID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *fakeStore) GetEvent(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	e, ok := s.events[id]
	if !ok || e.User != sc.UserID {
		return model.Event{}, repository.ErrNotFound
	}
	return e, nil
}

func (s *fakeStore) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	s.createCalls++
	if s.failCreatesAt > 0 && s.createCalls%s.failCreatesAt == 0 {
		return model.Event{}, errStoreDown
	}

	e := model.Event{
		ID:            s.id("event"),
		User:          sc.UserID,
		Title:         opt.Title,
		Start:         opt.Start,
		End:           opt.End,
		Recurrence:    opt.Recurrence,
		RecurrenceEnd: opt.RecurrenceEnd,
		ParentID:      opt.ParentID,
	}
	if e.Recurrence == "" {
		e.Recurrence = model.RecurrenceNone
	}
	s.events[e.ID] = e
	return e, nil
}

func (s *fakeStore) UpdateEvent(ctx context.Context, sc model.Scope, id string, opt repository.UpdateEventOptions) (model.Event, error) {
	e, err := s.GetEvent(ctx, sc, id)
	if err != nil {
		return model.Event{}, err
	}
	if opt.Title != nil {
		e.Title = *opt.Title
	}
	if opt.Start != nil {
		e.Start = *opt.Start
	}
	if opt.End != nil {
		e.End = *opt.End
	}
	if opt.CalendarEventID != nil {
		e.CalendarEventID = *opt.CalendarEventID
	}
	s.events[id] = e
	return e, nil
}

func (s *fakeStore) DeleteEvent(ctx context.Context, sc model.Scope, id string) error {
	if _, err := s.GetEvent(ctx, sc, id); err != nil {
		return err
	}
	delete(s.events, id)
	return nil
}

func (s *fakeStore) ListEventChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Event, error) {
	var out []model.Event
	for _, e := range s.events {
		if e.User == sc.UserID && e.ParentID == parentID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (s *fakeStore) ListEventsInWindow(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Event, error) {
	var out []model.Event
	for _, e := range s.events {
		if e.User == sc.UserID && !e.Start.After(end) && !e.End.Before(start) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (s *fakeStore) ListRecurringParents(ctx context.Context, sc model.Scope, end time.Time) ([]model.Event, error) {
	var out []model.Event
	for _, e := range s.events {
		if e.User == sc.UserID && e.ParentID == "" &&
			e.Recurrence != model.RecurrenceNone && e.Recurrence != "" &&
			!e.Start.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// fakeMirror records external calendar traffic.
type fakeMirror struct {
	nextID     int
	createFail bool
	deleteFail bool
	created    []gcalendar.CreateEventRequest
	deleted    []string
}

func (m *fakeMirror) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createFail {
		return nil, errStoreDown
	}
	m.nextID++
	m.created = append(m.created, req)
	id := fmt.Sprintf("gcal-%d", m.nextID)
	return &gcalendar.Event{
		ID:        id,
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event?eid=" + id,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *fakeMirror) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.deleteFail {
		return errStoreDown
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

var _ Mirror = (*fakeMirror)(nil)

// newTestUseCase wires a use case over a fresh fake store with a fixed
// clock.
func newTestUseCase(store *fakeStore, now time.Time) *implUseCase {
	dm, _ := datemath.NewParser("UTC")
	uc := New(&mockLogger{}, store, store, nil, dm, "UTC", Defaults{})
	uc.now = func() time.Time { return now }
	return uc
}
