package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	"timeblock/pkg/recur"
)

// ExpandVirtualEvents derives in-memory occurrences of recurring
// parents inside the window. Nothing is persisted and nothing is
// cached: each call recomputes from the stored parents, so a deleted
// parent simply stops producing occurrences on the next fetch.
func (uc *implUseCase) ExpandVirtualEvents(ctx context.Context, sc model.Scope, input schedule.VirtualExpandInput) ([]model.Event, error) {
	start := input.Start
	if start.IsZero() {
		start = uc.dateMath.StartOfDay(uc.now())
	}
	end := input.End
	if end.IsZero() {
		// Rolling horizon, recomputed from "now" on every fetch.
		end = uc.now().AddDate(0, uc.defaults.EventHorizonMonths, 0)
	}
	if end.Before(start) {
		return nil, schedule.ErrInvalidWindow
	}

	parents, err := uc.calRepo.ListRecurringParents(ctx, sc, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring parents: %w", err)
	}

	var virtual []model.Event
	for _, parent := range parents {
		occurrences := expandParent(parent, start, end)
		if len(occurrences) == 0 {
			continue
		}

		// An occurrence already persisted by generation must not show
		// up a second time as a virtual duplicate.
		children, err := uc.calRepo.ListEventChildren(ctx, sc, parent.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list children of %s: %w", parent.ID, err)
		}
		persisted := make(map[int64]bool, len(children))
		for _, child := range children {
			persisted[child.Start.UnixMilli()] = true
		}

		for _, occ := range occurrences {
			if persisted[occ.Start.UnixMilli()] {
				continue
			}
			virtual = append(virtual, occ)
		}
	}

	sort.SliceStable(virtual, func(i, j int) bool {
		return virtual[i].Start.Before(virtual[j].Start)
	})
	return virtual, nil
}

// RecurringEventParents lists the caller's recurring calendar parents
// up to the rolling horizon.
func (uc *implUseCase) RecurringEventParents(ctx context.Context, sc model.Scope) ([]model.Event, error) {
	horizon := uc.now().AddDate(0, uc.defaults.EventHorizonMonths, 0)
	parents, err := uc.calRepo.ListRecurringParents(ctx, sc, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring parents: %w", err)
	}
	return parents, nil
}

// expandParent materializes one parent's occurrences intersecting
// [start, end]. Sequence numbers count from the anchor so the derived
// ids are stable across windows.
func expandParent(parent model.Event, start, end time.Time) []model.Event {
	bound := recur.Bound{EndDate: end}
	if !parent.RecurrenceEnd.IsZero() && parent.RecurrenceEnd.Before(end) {
		bound.EndDate = parent.RecurrenceEnd
	}

	duration := parent.Duration()
	occurrences := recur.Expand(parent.Start, recur.Frequency(parent.Recurrence), bound)

	var out []model.Event
	for i, ts := range occurrences {
		occEnd := ts.Add(duration)
		if occEnd.Before(start) || ts.After(end) {
			continue
		}

		out = append(out, model.Event{
			ID:                  model.VirtualOccurrenceID(parent.ID, i+1),
			User:                parent.User,
			Title:               parent.Title,
			Start:               ts,
			End:                 occEnd,
			ParentID:            parent.ID,
			IsRecurringInstance: true,
			OriginalEventID:     parent.ID,
		})
	}
	return out
}
