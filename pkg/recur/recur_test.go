package recur_test

import (
	"testing"
	"time"

	"timeblock/pkg/recur"
)

func TestExpandCounts(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		freq recur.Frequency
		b    recur.Bound
		want int
	}{
		{"None yields nothing", recur.None, recur.Bound{MaxInstances: 10}, 0},
		{"Empty frequency yields nothing", recur.Frequency(""), recur.Bound{MaxInstances: 10}, 0},
		{"Daily capped by max", recur.Daily, recur.Bound{MaxInstances: 5}, 5},
		{"Weekly capped by max", recur.Weekly, recur.Bound{MaxInstances: 4}, 4},
		{"Monthly capped by max", recur.Monthly, recur.Bound{MaxInstances: 3}, 3},
		{
			"Daily bounded by end date",
			recur.Daily,
			recur.Bound{MaxInstances: 100, EndDate: anchor.AddDate(0, 0, 10)},
			10,
		},
		{
			"Default cap when max unset",
			recur.Daily,
			recur.Bound{},
			recur.DefaultMaxInstances,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recur.Expand(anchor, tt.freq, tt.b)
			if len(got) != tt.want {
				t.Fatalf("Expand() returned %d occurrences, want %d", len(got), tt.want)
			}
		})
	}
}

func TestExpandStrictlyIncreasingAfterAnchor(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for _, freq := range []recur.Frequency{recur.Daily, recur.Weekly, recur.Monthly} {
		got := recur.Expand(anchor, freq, recur.Bound{MaxInstances: 12})
		prev := anchor
		for i, ts := range got {
			if !ts.After(prev) {
				t.Fatalf("%s occurrence %d (%v) not strictly after %v", freq, i, ts, prev)
			}
			if want := recur.Step(prev, freq); !ts.Equal(want) {
				t.Fatalf("%s occurrence %d = %v, want one step from predecessor = %v", freq, i, ts, want)
			}
			prev = ts
		}
	}
}

func TestExpandBoundIsInclusive(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := anchor.Add(3 * 24 * time.Hour)

	got := recur.Expand(anchor, recur.Daily, recur.Bound{MaxInstances: 100, EndDate: end})
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences up to and including the bound, got %d", len(got))
	}
	if !got[2].Equal(end) {
		t.Errorf("last occurrence = %v, want exactly the bound %v", got[2], end)
	}
}

func TestMonthlyOverflowRollsForward(t *testing.T) {
	// Jan 31 + 1 month normalizes past the end of February instead of
	// clamping. 2026 is not a leap year, so Feb 31 → Mar 3.
	anchor := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)

	got := recur.Expand(anchor, recur.Monthly, recur.Bound{MaxInstances: 2})
	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(got))
	}

	first := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	if !got[0].Equal(first) {
		t.Errorf("first monthly step = %v, want %v", got[0], first)
	}
	second := time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)
	if !got[1].Equal(second) {
		t.Errorf("second monthly step = %v, want %v", got[1], second)
	}
}

func TestStepUnits(t *testing.T) {
	at := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)

	if got := recur.Step(at, recur.Daily); !got.Equal(at.Add(24 * time.Hour)) {
		t.Errorf("daily step = %v", got)
	}
	if got := recur.Step(at, recur.Weekly); !got.Equal(at.Add(7 * 24 * time.Hour)) {
		t.Errorf("weekly step = %v", got)
	}
	if got := recur.Step(at, recur.Monthly); !got.Equal(time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)) {
		t.Errorf("monthly step = %v", got)
	}
	if got := recur.Step(at, recur.None); !got.Equal(at) {
		t.Errorf("none step should not move, got %v", got)
	}
}
