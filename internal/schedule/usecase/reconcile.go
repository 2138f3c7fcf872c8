package usecase

import (
	"context"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	"timeblock/internal/schedule/repository"
)

// FindChildren lists the persisted instances descended from a parent
// record, selected by the parent back-reference and scoped to the user.
func (uc *implUseCase) FindChildren(ctx context.Context, sc model.Scope, input schedule.ReconcileInput) (schedule.ChildrenOutput, error) {
	switch input.Collection {
	case schedule.CollectionTodo:
		todos, err := uc.todoRepo.ListTodoChildren(ctx, sc, input.ParentID)
		if err != nil {
			return schedule.ChildrenOutput{}, err
		}
		return schedule.ChildrenOutput{Todos: todos}, nil

	case schedule.CollectionCalendar:
		events, err := uc.calRepo.ListEventChildren(ctx, sc, input.ParentID)
		if err != nil {
			return schedule.ChildrenOutput{}, err
		}
		return schedule.ChildrenOutput{Events: events}, nil
	}

	return schedule.ChildrenOutput{}, schedule.ErrUnknownCollection
}

// CascadeUpdate applies the patch to every child of the parent. No
// batch atomicity: a failed item is logged and counted, the rest
// proceed. Retrying converges.
func (uc *implUseCase) CascadeUpdate(ctx context.Context, sc model.Scope, input schedule.ReconcileInput, patch schedule.Patch) (schedule.ReconcileOutput, error) {
	children, err := uc.FindChildren(ctx, sc, input)
	if err != nil {
		return schedule.ReconcileOutput{}, err
	}

	var out schedule.ReconcileOutput

	for _, todo := range children.Todos {
		out.Matched++
		_, updateErr := uc.todoRepo.UpdateTodo(ctx, sc, todo.ID, repository.UpdateTodoOptions{
			Name:     patch.Name,
			Priority: patch.Priority,
			Done:     patch.Done,
		})
		if updateErr != nil {
			uc.l.Errorf(ctx, "CascadeUpdate: todo child %s failed: %v", todo.ID, updateErr)
			out.Failed++
			continue
		}
		out.Applied++
	}

	for _, event := range children.Events {
		out.Matched++
		_, updateErr := uc.calRepo.UpdateEvent(ctx, sc, event.ID, repository.UpdateEventOptions{
			Title: patch.Title,
		})
		if updateErr != nil {
			uc.l.Errorf(ctx, "CascadeUpdate: event child %s failed: %v", event.ID, updateErr)
			out.Failed++
			continue
		}
		out.Applied++
	}

	uc.l.Infof(ctx, "CascadeUpdate: parent=%s matched=%d applied=%d failed=%d",
		input.ParentID, out.Matched, out.Applied, out.Failed)
	return out, nil
}

// CascadeDelete removes every child of the parent, best-effort per
// item.
func (uc *implUseCase) CascadeDelete(ctx context.Context, sc model.Scope, input schedule.ReconcileInput) (schedule.ReconcileOutput, error) {
	children, err := uc.FindChildren(ctx, sc, input)
	if err != nil {
		return schedule.ReconcileOutput{}, err
	}

	var out schedule.ReconcileOutput

	for _, todo := range children.Todos {
		out.Matched++
		if deleteErr := uc.todoRepo.DeleteTodo(ctx, sc, todo.ID); deleteErr != nil {
			uc.l.Errorf(ctx, "CascadeDelete: todo child %s failed: %v", todo.ID, deleteErr)
			out.Failed++
			continue
		}
		out.Applied++
	}

	for _, event := range children.Events {
		out.Matched++
		if deleteErr := uc.calRepo.DeleteEvent(ctx, sc, event.ID); deleteErr != nil {
			uc.l.Errorf(ctx, "CascadeDelete: event child %s failed: %v", event.ID, deleteErr)
			out.Failed++
			continue
		}
		uc.tryUnmirrorEvent(ctx, event)
		out.Applied++
	}

	uc.l.Infof(ctx, "CascadeDelete: parent=%s matched=%d applied=%d failed=%d",
		input.ParentID, out.Matched, out.Applied, out.Failed)
	return out, nil
}

// tryUnmirrorEvent removes the Google Calendar entry of a deleted
// instance. Non-fatal: the local delete already succeeded and the
// mirror tolerates already-gone events.
func (uc *implUseCase) tryUnmirrorEvent(ctx context.Context, event model.Event) {
	if uc.mirror == nil || event.CalendarEventID == "" {
		return
	}
	if err := uc.mirror.DeleteEvent(ctx, "primary", event.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "mirror cleanup for %s failed (non-fatal): %v", event.ID, err)
	}
}
