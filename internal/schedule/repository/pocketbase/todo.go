package pocketbase

import (
	"context"
	"fmt"

	"timeblock/internal/model"
	"timeblock/internal/schedule/repository"
	pb "timeblock/pkg/pocketbase"
)

func (r *implRepository) GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	rec, err := r.client.Collection(todoCollection).GetOne(ctx, id, pb.GetOptions{})
	if err != nil {
		r.l.Errorf(ctx, "records repository: failed to get todo %s: %v", id, err)
		return model.Todo{}, repository.ErrNotFound
	}

	todo := todoFromRecord(rec)
	if todo.User != sc.UserID {
		return model.Todo{}, repository.ErrNotFound
	}
	return todo, nil
}

func (r *implRepository) CreateTodo(ctx context.Context, sc model.Scope, opt repository.CreateTodoOptions) (model.Todo, error) {
	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityP2
	}
	recurrence := opt.Recurrence
	if recurrence == "" {
		recurrence = model.RecurrenceNone
	}

	fields := map[string]any{
		"user":       sc.UserID,
		"name":       opt.Name,
		"date":       pb.FormatTime(opt.Date),
		"priority":   priority,
		"done":       false,
		"tags":       opt.Tags,
		"recurrence": string(recurrence),
		"parent":     opt.ParentID,
	}
	if !opt.RecurrenceEnd.IsZero() {
		fields["recurrence_end"] = pb.FormatTime(opt.RecurrenceEnd)
	}

	rec, err := r.client.Collection(todoCollection).Create(ctx, fields)
	if err != nil {
		r.l.Errorf(ctx, "records repository: failed to create todo %q: %v", opt.Name, err)
		return model.Todo{}, err
	}
	return todoFromRecord(rec), nil
}

func (r *implRepository) UpdateTodo(ctx context.Context, sc model.Scope, id string, opt repository.UpdateTodoOptions) (model.Todo, error) {
	// Ownership check before touching the record.
	if _, err := r.GetTodo(ctx, sc, id); err != nil {
		return model.Todo{}, err
	}

	fields := map[string]any{}
	if opt.Name != nil {
		fields["name"] = *opt.Name
	}
	if opt.Date != nil {
		fields["date"] = pb.FormatTime(*opt.Date)
	}
	if opt.Priority != nil {
		fields["priority"] = *opt.Priority
	}
	if opt.Done != nil {
		fields["done"] = *opt.Done
	}

	rec, err := r.client.Collection(todoCollection).Update(ctx, id, fields)
	if err != nil {
		r.l.Errorf(ctx, "records repository: failed to update todo %s: %v", id, err)
		return model.Todo{}, err
	}
	return todoFromRecord(rec), nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, sc model.Scope, id string) error {
	if _, err := r.GetTodo(ctx, sc, id); err != nil {
		return err
	}

	if err := r.client.Collection(todoCollection).Delete(ctx, id); err != nil {
		r.l.Errorf(ctx, "records repository: failed to delete todo %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) ListTodoChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Todo, error) {
	recs, err := r.client.Collection(todoCollection).GetFullList(ctx, pb.ListOptions{
		Filter: fmt.Sprintf("%s && parent='%s'", ownerFilter(sc), escape(parentID)),
		Sort:   "+date",
	})
	if err != nil {
		return nil, err
	}

	todos := make([]model.Todo, 0, len(recs))
	for _, rec := range recs {
		todos = append(todos, todoFromRecord(rec))
	}
	return todos, nil
}
