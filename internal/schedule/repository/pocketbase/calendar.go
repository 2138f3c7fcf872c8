package pocketbase

import (
	"context"
	"fmt"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule/repository"
	pb "timeblock/pkg/pocketbase"
)

func (r *implRepository) GetEvent(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	rec, err := r.client.Collection(calendarCollection).GetOne(ctx, id, pb.GetOptions{})
	if err != nil {
		r.l.Errorf(ctx, "records repository: failed to get event %s: %v", id, err)
		return model.Event{}, repository.ErrNotFound
	}

	event := eventFromRecord(rec)
	if event.User != sc.UserID {
		return model.Event{}, repository.ErrNotFound
	}
	return event, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	recurrence := opt.Recurrence
	if recurrence == "" {
		recurrence = model.RecurrenceNone
	}

	fields := map[string]any{
		"user":       sc.UserID,
		"title":      opt.Title,
		"start":      pb.FormatTime(opt.Start),
		"end":        pb.FormatTime(opt.End),
		"recurrence": string(recurrence),
		"parent":     opt.ParentID,
	}
	if !opt.RecurrenceEnd.IsZero() {
		fields["recurrence_end"] = pb.FormatTime(opt.RecurrenceEnd)
	}

	rec, err := r.client.Collection(calendarCollection).Create(ctx, fields)
	if err != nil {
		r.l.Errorf(ctx, "records repository: failed to create event %q: %v", opt.Title, err)
		return model.Event{}, err
	}
	return eventFromRecord(rec), nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, sc model.Scope, id string, opt repository.UpdateEventOptions) (model.Event, error) {
	if _, err := r.GetEvent(ctx, sc, id); err != nil {
		return model.Event{}, err
	}

	fields := map[string]any{}
	if opt.Title != nil {
		fields["title"] = *opt.Title
	}
	if opt.Start != nil {
		fields["start"] = pb.FormatTime(*opt.Start)
	}
	if opt.End != nil {
		fields["end"] = pb.FormatTime(*opt.End)
	}
	if opt.CalendarEventID != nil {
		fields["calendar_event_id"] = *opt.CalendarEventID
	}

	rec, err := r.client.Collection(calendarCollection).Update(ctx, id, fields)
	if err != nil {
		r.l.Errorf(ctx, "records repository: failed to update event %s: %v", id, err)
		return model.Event{}, err
	}
	return eventFromRecord(rec), nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, sc model.Scope, id string) error {
	if _, err := r.GetEvent(ctx, sc, id); err != nil {
		return err
	}

	if err := r.client.Collection(calendarCollection).Delete(ctx, id); err != nil {
		r.l.Errorf(ctx, "records repository: failed to delete event %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) ListEventChildren(ctx context.Context, sc model.Scope, parentID string) ([]model.Event, error) {
	recs, err := r.client.Collection(calendarCollection).GetFullList(ctx, pb.ListOptions{
		Filter: fmt.Sprintf("%s && parent='%s'", ownerFilter(sc), escape(parentID)),
		Sort:   "+start",
	})
	if err != nil {
		return nil, err
	}
	return eventsFromRecords(recs), nil
}

func (r *implRepository) ListEventsInWindow(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Event, error) {
	recs, err := r.client.Collection(calendarCollection).GetFullList(ctx, pb.ListOptions{
		Filter: fmt.Sprintf("%s && start <= '%s' && end >= '%s'",
			ownerFilter(sc), pb.FormatTime(end), pb.FormatTime(start)),
		Sort: "+start",
	})
	if err != nil {
		return nil, err
	}
	return eventsFromRecords(recs), nil
}

func (r *implRepository) ListRecurringParents(ctx context.Context, sc model.Scope, end time.Time) ([]model.Event, error) {
	recs, err := r.client.Collection(calendarCollection).GetFullList(ctx, pb.ListOptions{
		Filter: fmt.Sprintf("%s && recurrence != 'none' && parent = '' && start <= '%s'",
			ownerFilter(sc), pb.FormatTime(end)),
		Sort: "+start",
	})
	if err != nil {
		return nil, err
	}
	return eventsFromRecords(recs), nil
}

func eventsFromRecords(recs []pb.Record) []model.Event {
	events := make([]model.Event, 0, len(recs))
	for _, rec := range recs {
		events = append(events, eventFromRecord(rec))
	}
	return events
}
