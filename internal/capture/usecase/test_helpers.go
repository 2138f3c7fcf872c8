package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule/repository"
	"timeblock/pkg/datemath"
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
// Capture only creates, so the write paths are the interesting part.
type fakeStore struct {
	todos  []model.Todo
	events []model.Event
	nextID int

	failCreates bool
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func (s *fakeStore) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *fakeStore) GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	for _, t := range s.todos {
		if t.ID == id && t.User == sc.UserID {
			return t, nil
		}
	}
	return model.Todo{}, repository.ErrNotFound
}

func (s *fakeStore) CreateTodo(ctx context.Context, sc model.Scope, opt repository.CreateTodoOptions) (model.Todo, error) {
	if s.failCreates {
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
	s.todos = append(s.todos, t)
	return t, nil
}

func (s *fakeStore) UpdateTodo(ctx context.Context, sc model.Scope, id string, opt repository.UpdateTodoOptions) (model.Todo, error) {
	return model.Todo{}, repository.ErrNotFound
}

func (s *fakeStore) DeleteTodo(ctx context.Context, sc model.Scope, id string) error {
	return repository.ErrNotFound
}

func (s *fakeStore) ListTodoChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Todo, error) {
	return nil, nil
}

func (s *fakeStore) GetEvent(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	for _, e := range s.events {
		if e.ID == id && e.User == sc.UserID {
			return e, nil
		}
	}
	return model.Event{}, repository.ErrNotFound
}

func (s *fakeStore) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	if s.failCreates {
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
	s.events = append(s.events, e)
	return e, nil
}

func (s *fakeStore) UpdateEvent(ctx context.Context, sc model.Scope, id string, opt repository.UpdateEventOptions) (model.Event, error) {
	return model.Event{}, repository.ErrNotFound
}

func (s *fakeStore) DeleteEvent(ctx context.Context, sc model.Scope, id string) error {
	return repository.ErrNotFound
}

func (s *fakeStore) ListEventChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Event, error) {
	return nil, nil
}

func (s *fakeStore) ListEventsInWindow(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Event, error) {
	return nil, nil
}

func (s *fakeStore) ListRecurringParents(ctx context.Context, sc model.Scope, end time.Time) ([]model.Event, error) {
	return nil, nil
}

var (
	_ repository.TodoRepository     = (*fakeStore)(nil)
	_ repository.CalendarRepository = (*fakeStore)(nil)
)

func newTestUseCase(t interface{ Fatalf(string, ...any) }, store *fakeStore, now time.Time) *implUseCase {
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	uc := New(&mockLogger{}, store, store, dm)
	uc.now = func() time.Time { return now }
	return uc
}
