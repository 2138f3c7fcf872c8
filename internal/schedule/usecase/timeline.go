package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

// DayTimeline tiles one day for the time-blocking display: real
// occurrences, virtual occurrences of recurring events, and break
// blocks covering every unscheduled gap. The output covers
// [dayStart, dayEnd] exactly, with no gaps and no overlaps between a
// block's end and the next block's start.
func (uc *implUseCase) DayTimeline(ctx context.Context, sc model.Scope, input schedule.TimelineInput) (schedule.TimelineOutput, error) {
	dayStart := uc.dateMath.StartOfDay(input.Day)
	dayEnd := uc.dateMath.EndOfDay(input.Day)

	real, err := uc.calRepo.ListEventsInWindow(ctx, sc, dayStart, dayEnd)
	if err != nil {
		return schedule.TimelineOutput{}, fmt.Errorf("failed to list events: %w", err)
	}

	virtual, err := uc.ExpandVirtualEvents(ctx, sc, schedule.VirtualExpandInput{
		Start: dayStart,
		End:   dayEnd,
	})
	if err != nil {
		return schedule.TimelineOutput{}, err
	}

	occurrences := make([]model.TimelineBlock, 0, len(real)+len(virtual))
	for _, ev := range real {
		occurrences = append(occurrences, eventBlock(ev))
	}
	for _, ev := range virtual {
		occurrences = append(occurrences, eventBlock(ev))
	}

	blocks := fillGaps(dayStart, dayEnd, occurrences)

	return schedule.TimelineOutput{
		DayStart: dayStart,
		DayEnd:   dayEnd,
		Blocks:   blocks,
	}, nil
}

func eventBlock(ev model.Event) model.TimelineBlock {
	kind := model.BlockEvent
	if ev.IsRecurringInstance {
		kind = model.BlockVirtualEvent
	}
	return model.TimelineBlock{
		Kind:     kind,
		ID:       ev.ID,
		Title:    ev.Title,
		Start:    ev.Start,
		End:      ev.End,
		ParentID: ev.ParentID,
	}
}

// fillGaps is the pure tiling step. Occurrence intervals are clipped to
// the day, stably sorted by start, then walked with a cursor that opens
// a break block before any occurrence starting past it. The cursor only
// moves forward, so overlapping occurrences are absorbed silently: no
// break reopens inside a region already covered, and no conflict is
// reported. Idempotent: identical inputs tile identically.
func fillGaps(dayStart, dayEnd time.Time, occurrences []model.TimelineBlock) []model.TimelineBlock {
	clipped := make([]model.TimelineBlock, 0, len(occurrences))
	for _, occ := range occurrences {
		if occ.End.Before(dayStart) || occ.Start.After(dayEnd) {
			continue
		}
		if occ.Start.Before(dayStart) {
			occ.Start = dayStart
		}
		if occ.End.After(dayEnd) {
			occ.End = dayEnd
		}
		clipped = append(clipped, occ)
	}

	// Stable: ties keep input order.
	sort.SliceStable(clipped, func(i, j int) bool {
		return clipped[i].Start.Before(clipped[j].Start)
	})

	blocks := make([]model.TimelineBlock, 0, 2*len(clipped)+1)
	cursor := dayStart
	for _, occ := range clipped {
		if cursor.Before(occ.Start) {
			blocks = append(blocks, model.NewBreakBlock(cursor, occ.Start))
		}
		blocks = append(blocks, occ)
		if occ.End.After(cursor) {
			cursor = occ.End
		}
	}
	if cursor.Before(dayEnd) {
		blocks = append(blocks, model.NewBreakBlock(cursor, dayEnd))
	}

	return blocks
}
