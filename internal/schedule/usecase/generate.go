package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	"timeblock/internal/schedule/repository"
	"timeblock/pkg/gcalendar"
	"timeblock/pkg/recur"
)

// GenerateRecurringTasks expands a recurring parent todo and persists
// its children. Creates run one at a time in occurrence order; a failed
// create is logged and skipped so the rest of the run still lands.
func (uc *implUseCase) GenerateRecurringTasks(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.GenerateTasksOutput, error) {
	parent, err := uc.todoRepo.GetTodo(ctx, sc, input.ParentID)
	if err != nil {
		return schedule.GenerateTasksOutput{}, schedule.ErrParentNotFound
	}
	if parent.Recurrence == model.RecurrenceNone || parent.Recurrence == "" {
		return schedule.GenerateTasksOutput{}, schedule.ErrNotRecurring
	}

	bound := uc.taskBound(parent.Date, parent.RecurrenceEnd, input)
	occurrences := recur.Expand(parent.Date, recur.Frequency(parent.Recurrence), bound)

	uc.l.Infof(ctx, "GenerateRecurringTasks: user=%s parent=%s freq=%s occurrences=%d",
		sc.UserID, parent.ID, parent.Recurrence, len(occurrences))

	// Existing children guard against duplicate generation runs.
	existing, err := uc.todoRepo.ListTodoChildren(ctx, sc, parent.ID)
	if err != nil {
		return schedule.GenerateTasksOutput{}, fmt.Errorf("failed to list existing children: %w", err)
	}
	taken := make(map[int64]bool, len(existing))
	for _, child := range existing {
		taken[child.Date.UnixMilli()] = true
	}

	var out schedule.GenerateTasksOutput
	for _, ts := range occurrences {
		if taken[ts.UnixMilli()] {
			out.Skipped++
			continue
		}

		child, createErr := uc.todoRepo.CreateTodo(ctx, sc, repository.CreateTodoOptions{
			Name:     parent.Name,
			Date:     ts,
			Priority: parent.Priority,
			Tags:     parent.Tags,
			ParentID: parent.ID,
		})
		if createErr != nil {
			uc.l.Errorf(ctx, "GenerateRecurringTasks: failed to create instance at %s: %v", ts, createErr)
			out.Failed++
			continue
		}

		out.Tasks = append(out.Tasks, schedule.GeneratedTask{
			ID:   child.ID,
			Name: child.Name,
			Date: child.Date,
		})
		out.Created++
	}

	uc.l.Infof(ctx, "GenerateRecurringTasks: parent=%s created=%d skipped=%d failed=%d",
		parent.ID, out.Created, out.Skipped, out.Failed)
	return out, nil
}

// GenerateRecurringEvents expands a recurring parent event into
// persisted children, each keeping the parent's duration.
func (uc *implUseCase) GenerateRecurringEvents(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.GenerateEventsOutput, error) {
	parent, err := uc.calRepo.GetEvent(ctx, sc, input.ParentID)
	if err != nil {
		return schedule.GenerateEventsOutput{}, schedule.ErrParentNotFound
	}
	if parent.Recurrence == model.RecurrenceNone || parent.Recurrence == "" {
		return schedule.GenerateEventsOutput{}, schedule.ErrNotRecurring
	}

	bound := uc.taskBound(parent.Start, parent.RecurrenceEnd, input)
	occurrences := recur.Expand(parent.Start, recur.Frequency(parent.Recurrence), bound)
	duration := parent.Duration()

	uc.l.Infof(ctx, "GenerateRecurringEvents: user=%s parent=%s freq=%s occurrences=%d",
		sc.UserID, parent.ID, parent.Recurrence, len(occurrences))

	existing, err := uc.calRepo.ListEventChildren(ctx, sc, parent.ID)
	if err != nil {
		return schedule.GenerateEventsOutput{}, fmt.Errorf("failed to list existing children: %w", err)
	}
	taken := make(map[int64]bool, len(existing))
	for _, child := range existing {
		taken[child.Start.UnixMilli()] = true
	}

	var out schedule.GenerateEventsOutput
	for _, ts := range occurrences {
		if taken[ts.UnixMilli()] {
			out.Skipped++
			continue
		}

		child, createErr := uc.calRepo.CreateEvent(ctx, sc, repository.CreateEventOptions{
			Title:    parent.Title,
			Start:    ts,
			End:      ts.Add(duration),
			ParentID: parent.ID,
		})
		if createErr != nil {
			uc.l.Errorf(ctx, "GenerateRecurringEvents: failed to create instance at %s: %v", ts, createErr)
			out.Failed++
			continue
		}

		out.Events = append(out.Events, schedule.GeneratedEvent{
			ID:           child.ID,
			Title:        child.Title,
			Start:        child.Start,
			End:          child.End,
			CalendarLink: uc.tryMirrorEvent(ctx, sc, child),
		})
		out.Created++
	}

	uc.l.Infof(ctx, "GenerateRecurringEvents: parent=%s created=%d skipped=%d failed=%d",
		parent.ID, out.Created, out.Skipped, out.Failed)
	return out, nil
}

// taskBound resolves the expansion bound: an explicit request override,
// then the parent's recurrence end, then the default horizon from the
// anchor.
func (uc *implUseCase) taskBound(anchor, recurrenceEnd time.Time, input schedule.GenerateInput) recur.Bound {
	end := input.EndDate
	if end.IsZero() {
		end = recurrenceEnd
	}
	if end.IsZero() {
		end = anchor.AddDate(0, 0, uc.defaults.TaskHorizonDays)
	}
	limit := input.MaxInstances
	if limit <= 0 {
		limit = uc.defaults.MaxInstances
	}
	return recur.Bound{EndDate: end, MaxInstances: limit}
}

// tryMirrorEvent pushes a generated instance to Google Calendar and
// stores the mirror id on the instance so cascade deletion can remove
// the mirrored entry later. Returns the event link, or empty string on
// failure or when the mirror is not configured.
func (uc *implUseCase) tryMirrorEvent(ctx context.Context, sc model.Scope, event model.Event) string {
	if uc.mirror == nil {
		return ""
	}

	created, err := uc.mirror.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: "primary",
		Summary:    event.Title,
		Description: strings.TrimSpace(fmt.Sprintf(
			"Generated recurring instance of %s", event.ParentID)),
		StartTime: event.Start,
		EndTime:   event.End,
		Timezone:  uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar mirror failed for %q (non-fatal): %v", event.Title, err)
		return ""
	}

	mirrorID := created.ID
	if _, updErr := uc.calRepo.UpdateEvent(ctx, sc, event.ID, repository.UpdateEventOptions{
		CalendarEventID: &mirrorID,
	}); updErr != nil {
		uc.l.Warnf(ctx, "failed to store mirror id on %s (non-fatal): %v", event.ID, updErr)
	}
	return created.HtmlLink
}
