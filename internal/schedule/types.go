package schedule

import (
	"time"

	"timeblock/internal/model"
)

// Collection discriminates which record collection an operation
// targets.
type Collection string

const (
	CollectionTodo     Collection = "Todo"
	CollectionCalendar Collection = "Calendar"
)

// GenerateInput asks for persisted children of a recurring parent.
type GenerateInput struct {
	ParentID string
	// MaxInstances caps this generation run; 0 means the default cap.
	MaxInstances int
	// EndDate overrides the parent's recurrence end for this run; zero
	// means use the parent's bound or the default horizon.
	EndDate time.Time
}

// GeneratedTask is one successfully persisted child todo.
type GeneratedTask struct {
	ID   string
	Name string
	Date time.Time
}

// GenerateTasksOutput is the result of a todo generation run. Skipped
// counts occurrences that already had a child on the same date;
// Failed counts per-instance create errors (partial success).
type GenerateTasksOutput struct {
	Tasks   []GeneratedTask
	Created int
	Skipped int
	Failed  int
}

// GeneratedEvent is one successfully persisted child event.
type GeneratedEvent struct {
	ID           string
	Title        string
	Start        time.Time
	End          time.Time
	CalendarLink string // Google Calendar mirror link, empty when not mirrored
}

// GenerateEventsOutput is the result of an event generation run.
type GenerateEventsOutput struct {
	Events  []GeneratedEvent
	Created int
	Skipped int
	Failed  int
}

// VirtualExpandInput bounds a read-time expansion window. A zero End
// means the rolling default horizon from now.
type VirtualExpandInput struct {
	Start time.Time
	End   time.Time
}

// TimelineInput names the day to tile.
type TimelineInput struct {
	// Day is any timestamp inside the wanted day; the use case derives
	// the day bounds in its configured timezone.
	Day time.Time
}

// TimelineOutput is the fully tiled day: occurrences and break blocks
// covering [DayStart, DayEnd] with no gaps and no overlaps.
type TimelineOutput struct {
	DayStart time.Time
	DayEnd   time.Time
	Blocks   []model.TimelineBlock
}

// Patch is the field set a cascade update applies to every child.
// Nil members are left untouched.
type Patch struct {
	Name     *string
	Priority *string
	Done     *bool
	Title    *string
}

// ReconcileInput identifies the children of one parent record.
type ReconcileInput struct {
	ParentID   string
	Collection Collection
}

// ReconcileOutput reports a best-effort batch: Matched children found,
// Applied operations that succeeded, Failed ones that were logged and
// skipped.
type ReconcileOutput struct {
	Matched int
	Applied int
	Failed  int
}

// ChildrenOutput lists the persisted instances descended from a parent.
type ChildrenOutput struct {
	Todos  []model.Todo
	Events []model.Event
}
