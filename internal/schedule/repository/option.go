package repository

import (
	"time"

	"timeblock/internal/model"
)

// CreateTodoOptions holds the fields for creating a Todo record.
type CreateTodoOptions struct {
	Name          string
	Date          time.Time
	Priority      string
	Tags          []string
	Recurrence    model.Recurrence
	RecurrenceEnd time.Time
	ParentID      string
}

// UpdateTodoOptions patches a Todo record. Nil members are omitted from
// the request.
type UpdateTodoOptions struct {
	Name     *string
	Date     *time.Time
	Priority *string
	Done     *bool
}

// CreateEventOptions holds the fields for creating a Calendar record.
type CreateEventOptions struct {
	Title         string
	Start         time.Time
	End           time.Time
	Recurrence    model.Recurrence
	RecurrenceEnd time.Time
	ParentID      string
}

// UpdateEventOptions patches a Calendar record.
type UpdateEventOptions struct {
	Title *string
	Start *time.Time
	End   *time.Time

	// CalendarEventID records the Google Calendar mirror id on a
	// generated instance.
	CalendarEventID *string
}
