package quickcapture

import "time"

// Kind classifies a captured line.
type Kind string

const (
	KindTask  Kind = "task"
	KindEvent Kind = "event"
)

// TimeOfDay is a wall-clock time extracted from the input.
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Parsed is the structured candidate record extracted from one line of
// free text. Date and Time are nil when no indicator matched.
type Parsed struct {
	Kind            Kind
	Title           string
	Priority        string // P1 | P2 | P3
	Date            *time.Time
	Time            *TimeOfDay
	DurationMinutes int
	Tags            []string
	Confidence      float64
}
