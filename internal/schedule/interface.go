package schedule

import (
	"context"

	"timeblock/internal/model"
)

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// GenerateRecurringTasks expands a recurring parent todo and persists
	// one child per occurrence. Creation is sequential and best-effort:
	// a failed create is logged and skipped, never aborting the run.
	GenerateRecurringTasks(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateTasksOutput, error)

	// GenerateRecurringEvents does the same against the Calendar
	// collection, preserving the parent's duration on every child.
	GenerateRecurringEvents(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateEventsOutput, error)

	// ExpandVirtualEvents derives in-memory occurrences of recurring
	// events inside the window. Nothing is persisted; ids are derived
	// from the parent and the sequence number.
	ExpandVirtualEvents(ctx context.Context, sc model.Scope, input VirtualExpandInput) ([]model.Event, error)

	// DayTimeline returns the day tiled with occurrences and break
	// blocks for the time-blocking display.
	DayTimeline(ctx context.Context, sc model.Scope, input TimelineInput) (TimelineOutput, error)

	// RecurringEventParents lists the caller's recurring calendar
	// parents, used by the iCalendar feed to emit RRULE series.
	RecurringEventParents(ctx context.Context, sc model.Scope) ([]model.Event, error)

	// FindChildren lists the persisted instances descended from a parent.
	FindChildren(ctx context.Context, sc model.Scope, input ReconcileInput) (ChildrenOutput, error)

	// CascadeUpdate applies the patch to every child of the parent,
	// best-effort per item.
	CascadeUpdate(ctx context.Context, sc model.Scope, input ReconcileInput, patch Patch) (ReconcileOutput, error)

	// CascadeDelete removes every child of the parent, best-effort per
	// item.
	CascadeDelete(ctx context.Context, sc model.Scope, input ReconcileInput) (ReconcileOutput, error)
}
