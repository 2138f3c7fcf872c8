package repository

import (
	"context"
	"time"

	"timeblock/internal/model"
)

// TodoRepository is the data access interface for the Todo collection.
// Every operation is scoped to the calling user.
type TodoRepository interface {
	GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error)
	CreateTodo(ctx context.Context, sc model.Scope, opt CreateTodoOptions) (model.Todo, error)
	UpdateTodo(ctx context.Context, sc model.Scope, id string, opt UpdateTodoOptions) (model.Todo, error)
	DeleteTodo(ctx context.Context, sc model.Scope, id string) error

	// ListTodoChildren returns all todos whose parent back-reference
	// equals parentID, ordered by date.
	ListTodoChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Todo, error)
}

// CalendarRepository is the data access interface for the Calendar
// collection.
type CalendarRepository interface {
	GetEvent(ctx context.Context, sc model.Scope, id string) (model.Event, error)
	CreateEvent(ctx context.Context, sc model.Scope, opt CreateEventOptions) (model.Event, error)
	UpdateEvent(ctx context.Context, sc model.Scope, id string, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, id string) error

	// ListEventChildren returns all events whose parent back-reference
	// equals parentID, ordered by start.
	ListEventChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Event, error)

	// ListEventsInWindow returns events whose interval intersects
	// [start, end], ordered by start.
	ListEventsInWindow(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Event, error)

	// ListRecurringParents returns original recurring events (recurrence
	// set, no parent back-reference) anchored at or before end.
	ListRecurringParents(ctx context.Context, sc model.Scope, end time.Time) ([]model.Event, error)
}
