package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeblock/internal/capture"
	"timeblock/internal/model"
	"timeblock/internal/schedule/repository"
	"timeblock/pkg/quickcapture"
)

const (
	defaultPriority  = model.PriorityP2
	defaultEventHour = 9 // keyword-only events land at 09:00
)

// Preview parses the input without persisting anything.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input capture.CaptureInput) (capture.PreviewOutput, error) {
	parsed := quickcapture.Parse(input.Text, uc.now(), uc.dateMath)
	if parsed == nil {
		return capture.PreviewOutput{}, capture.ErrEmptyInput
	}
	return capture.PreviewOutput{Parsed: *parsed}, nil
}

// Capture parses the input and creates the matching record.
func (uc *implUseCase) Capture(ctx context.Context, sc model.Scope, input capture.CaptureInput) (capture.CaptureOutput, error) {
	preview, err := uc.Preview(ctx, sc, input)
	if err != nil {
		return capture.CaptureOutput{}, err
	}
	parsed := preview.Parsed

	switch parsed.Kind {
	case quickcapture.KindEvent:
		start, end := uc.eventWindow(parsed)
		ev, err := uc.calRepo.CreateEvent(ctx, sc, repository.CreateEventOptions{
			Title:      parsed.Title,
			Start:      start,
			End:        end,
			Recurrence: model.RecurrenceNone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "capture.CreateEvent: %v", err)
			return capture.CaptureOutput{}, fmt.Errorf("failed to create captured event: %w", err)
		}
		return capture.CaptureOutput{Parsed: parsed, Event: &ev}, nil

	default:
		todo, err := uc.todoRepo.CreateTodo(ctx, sc, repository.CreateTodoOptions{
			Name:       parsed.Title,
			Date:       uc.taskDate(parsed),
			Priority:   priorityOrDefault(parsed.Priority),
			Tags:       parsed.Tags,
			Recurrence: model.RecurrenceNone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "capture.CreateTodo: %v", err)
			return capture.CaptureOutput{}, fmt.Errorf("failed to create captured todo: %w", err)
		}
		return capture.CaptureOutput{Parsed: parsed, Todo: &todo}, nil
	}
}

// taskDate anchors a captured task: the parsed date when present,
// today otherwise, with the parsed wall-clock time applied on top.
func (uc *implUseCase) taskDate(parsed quickcapture.Parsed) time.Time {
	base := uc.now()
	if parsed.Date != nil {
		base = *parsed.Date
	}
	day := uc.dateMath.StartOfDay(base)
	if parsed.Time != nil {
		day = at(day, *parsed.Time)
	}
	return day
}

// eventWindow derives [start, end] for a captured event from the
// parsed date, time and duration.
func (uc *implUseCase) eventWindow(parsed quickcapture.Parsed) (time.Time, time.Time) {
	base := uc.now()
	if parsed.Date != nil {
		base = *parsed.Date
	}
	day := uc.dateMath.StartOfDay(base)

	start := day.Add(defaultEventHour * time.Hour)
	if parsed.Time != nil {
		start = at(day, *parsed.Time)
	}

	minutes := parsed.DurationMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return start, start.Add(time.Duration(minutes) * time.Minute)
}

func at(day time.Time, tod quickcapture.TimeOfDay) time.Time {
	return day.Add(time.Duration(tod.Hours)*time.Hour + time.Duration(tod.Minutes)*time.Minute)
}

func priorityOrDefault(p string) string {
	if strings.TrimSpace(p) == "" {
		return defaultPriority
	}
	return p
}
