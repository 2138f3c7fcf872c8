package model

import "time"

// Recurrence is the repeat frequency of a todo or calendar event.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Valid reports whether r is one of the known frequencies.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Priority buckets for todos. P1 is most urgent.
const (
	PriorityP1 = "P1"
	PriorityP2 = "P2"
	PriorityP3 = "P3"
)

// Todo is a record in the Todo collection. Generated recurring children
// carry ParentID pointing back at the originating record; the original
// has an empty ParentID.
type Todo struct {
	ID            string
	User          string // owning user, present on every record
	Name          string
	Date          time.Time // anchor date recurrence counts forward from
	Priority      string
	Done          bool
	Tags          []string
	Recurrence    Recurrence
	RecurrenceEnd time.Time // zero value means no explicit bound
	ParentID      string
	Created       time.Time
	Updated       time.Time
}

// Event is a record in the Calendar collection. Duration is End - Start
// and is preserved across generated instances.
type Event struct {
	ID            string
	User          string
	Title         string
	Start         time.Time
	End           time.Time
	Recurrence    Recurrence
	RecurrenceEnd time.Time
	ParentID      string

	// CalendarEventID is the id of the mirrored Google Calendar event,
	// empty when the instance was never mirrored.
	CalendarEventID string

	// Set only on virtual occurrences derived at read time. Virtual
	// occurrences are never persisted.
	IsRecurringInstance bool
	OriginalEventID     string

	Created time.Time
	Updated time.Time
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
