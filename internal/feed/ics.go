// Package feed renders schedule data as an iCalendar document so a day
// timeline can be subscribed to from any calendar client.
package feed

import (
	"fmt"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

const productID = "-//timeblock//day feed//EN"

// DayCalendar builds an iCalendar document from a tiled day. Break
// blocks are exported as transparent events so they don't count as
// busy time; recurring parents carry their RRULE so clients can expand
// future occurrences themselves.
func DayCalendar(tl schedule.TimelineOutput, parents []model.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, block := range tl.Blocks {
		ev := cal.AddEvent(block.ID)
		ev.SetSummary(block.Title)
		ev.SetStartAt(block.Start)
		ev.SetEndAt(block.End)
		ev.SetDtStampTime(tl.DayStart)
		if block.IsBreak {
			ev.SetTimeTransparency(ical.TransparencyTransparent)
		}
	}

	for _, parent := range parents {
		rule, err := RecurrenceRule(parent)
		if err != nil {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("%s-series", parent.ID))
		ev.SetSummary(parent.Title)
		ev.SetStartAt(parent.Start)
		ev.SetEndAt(parent.End)
		ev.SetDtStampTime(tl.DayStart)
		ev.AddRrule(rule)
	}

	return cal.Serialize()
}

// RecurrenceRule renders an event's recurrence as an RRULE value.
func RecurrenceRule(ev model.Event) (string, error) {
	opt := rrule.ROption{Dtstart: ev.Start}

	switch ev.Recurrence {
	case model.RecurrenceDaily:
		opt.Freq = rrule.DAILY
	case model.RecurrenceWeekly:
		opt.Freq = rrule.WEEKLY
	case model.RecurrenceMonthly:
		opt.Freq = rrule.MONTHLY
	default:
		return "", fmt.Errorf("event %s has no recurrence", ev.ID)
	}

	if !ev.RecurrenceEnd.IsZero() {
		opt.Until = ev.RecurrenceEnd
	}

	// Validate through the rrule parser before emitting.
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", fmt.Errorf("invalid recurrence rule for %s: %w", ev.ID, err)
	}
	return opt.RRuleString(), nil
}
