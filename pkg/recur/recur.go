package recur

import "time"

// Frequency is a repeat step unit. Values mirror the stored recurrence
// field of todos and calendar events.
type Frequency string

const (
	None    Frequency = "none"
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Defaults applied by callers when a bound is not fully specified.
const (
	// DefaultMaxInstances caps a single expansion.
	DefaultMaxInstances = 100
	// DefaultTaskHorizonDays bounds persisted-task expansion when no
	// explicit recurrence end is set.
	DefaultTaskHorizonDays = 365
	// DefaultEventHorizonMonths bounds display-time virtual expansion,
	// recomputed from "now" on every fetch.
	DefaultEventHorizonMonths = 3
)

// Bound limits an expansion. A zero EndDate means unbounded by date;
// MaxInstances <= 0 falls back to DefaultMaxInstances.
type Bound struct {
	EndDate      time.Time
	MaxInstances int
}

// Step advances t by one frequency unit. Daily and weekly steps are
// exact 24h multiples; monthly advances the calendar month field and
// lets Go's AddDate normalization handle day-of-month overflow, so an
// anchor on Jan 31 rolls into early March rather than clamping to the
// end of February.
func Step(t time.Time, f Frequency) time.Time {
	switch f {
	case Daily:
		return t.Add(24 * time.Hour)
	case Weekly:
		return t.Add(7 * 24 * time.Hour)
	case Monthly:
		return t.AddDate(0, 1, 0)
	}
	return t
}

// Expand produces the occurrence timestamps of a recurring record
// strictly after anchor, in strictly increasing order. The anchor
// itself is never re-emitted; it is the existing parent occurrence.
//
// A candidate landing exactly on Bound.EndDate is still emitted; the
// expansion stops at the first candidate strictly past the bound.
// None yields an empty slice regardless of the bound.
func Expand(anchor time.Time, f Frequency, b Bound) []time.Time {
	if f == None || f == "" {
		return nil
	}

	max := b.MaxInstances
	if max <= 0 {
		max = DefaultMaxInstances
	}

	out := make([]time.Time, 0, max)
	cur := anchor
	for len(out) < max {
		cur = Step(cur, f)
		if !cur.After(anchor) {
			// Unknown frequency: Step returned its input.
			break
		}
		if !b.EndDate.IsZero() && cur.After(b.EndDate) {
			break
		}
		out = append(out, cur)
	}
	return out
}
