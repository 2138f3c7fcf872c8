package feed

import (
	"strings"
	"testing"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

func day(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24*time.Hour - time.Millisecond)
}

func TestDayCalendar(t *testing.T) {
	dayStart, dayEnd := day(t)

	tl := schedule.TimelineOutput{
		DayStart: dayStart,
		DayEnd:   dayEnd,
		Blocks: []model.TimelineBlock{
			model.NewBreakBlock(dayStart, dayStart.Add(9*time.Hour)),
			{
				Kind:  model.BlockEvent,
				ID:    "ev1",
				Title: "Standup",
				Start: dayStart.Add(9 * time.Hour),
				End:   dayStart.Add(9*time.Hour + 30*time.Minute),
			},
			model.NewBreakBlock(dayStart.Add(9*time.Hour+30*time.Minute), dayEnd),
		},
	}

	out := DayCalendar(tl, nil)

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatalf("output is not a calendar document:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:Standup") {
		t.Errorf("event summary missing from output")
	}
	if !strings.Contains(out, "UID:ev1") {
		t.Errorf("event UID missing from output")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("got %d events, want 3", got)
	}
	if got := strings.Count(out, "TRANSP:TRANSPARENT"); got != 2 {
		t.Errorf("got %d transparent events, want the 2 breaks", got)
	}
}

func TestDayCalendarRecurringParents(t *testing.T) {
	dayStart, dayEnd := day(t)

	parent := model.Event{
		ID:            "series1",
		Title:         "Weekly sync",
		Start:         dayStart.Add(10 * time.Hour),
		End:           dayStart.Add(11 * time.Hour),
		Recurrence:    model.RecurrenceWeekly,
		RecurrenceEnd: dayStart.AddDate(0, 2, 0),
	}

	out := DayCalendar(schedule.TimelineOutput{DayStart: dayStart, DayEnd: dayEnd}, []model.Event{parent})

	if !strings.Contains(out, "UID:series1-series") {
		t.Errorf("series UID missing from output:\n%s", out)
	}
	if !strings.Contains(out, "RRULE:") || !strings.Contains(out, "FREQ=WEEKLY") {
		t.Errorf("expected weekly RRULE in output:\n%s", out)
	}
	if !strings.Contains(out, "UNTIL=") {
		t.Errorf("expected UNTIL bound in RRULE:\n%s", out)
	}
}

func TestDayCalendarSkipsNonRecurringParents(t *testing.T) {
	dayStart, dayEnd := day(t)

	plain := model.Event{ID: "e1", Title: "One-off", Start: dayStart, End: dayStart.Add(time.Hour)}
	out := DayCalendar(schedule.TimelineOutput{DayStart: dayStart, DayEnd: dayEnd}, []model.Event{plain})

	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Errorf("non-recurring parent should be skipped:\n%s", out)
	}
}

func TestRecurrenceRule(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		recurrence model.Recurrence
		wantFreq   string
		wantErr    bool
	}{
		{name: "daily", recurrence: model.RecurrenceDaily, wantFreq: "FREQ=DAILY"},
		{name: "weekly", recurrence: model.RecurrenceWeekly, wantFreq: "FREQ=WEEKLY"},
		{name: "monthly", recurrence: model.RecurrenceMonthly, wantFreq: "FREQ=MONTHLY"},
		{name: "none", recurrence: model.RecurrenceNone, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := RecurrenceRule(model.Event{
				ID:         "e1",
				Start:      start,
				End:        start.Add(time.Hour),
				Recurrence: tc.recurrence,
			})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got rule %q", rule)
				}
				return
			}
			if err != nil {
				t.Fatalf("RecurrenceRule: %v", err)
			}
			if !strings.Contains(rule, tc.wantFreq) {
				t.Errorf("rule %q missing %s", rule, tc.wantFreq)
			}
		})
	}
}
