package model

import (
	"fmt"
	"time"
)

// BlockKind discriminates the members of the timeline union.
type BlockKind string

const (
	BlockTask         BlockKind = "task"
	BlockEvent        BlockKind = "event"
	BlockVirtualEvent BlockKind = "virtualEvent"
	BlockBreak        BlockKind = "break"
)

// BreakTitle is the fixed marker title on synthesized break blocks.
const BreakTitle = "Break"

// TimelineBlock is one tile of a day timeline: a real occurrence, a
// virtual occurrence of a recurring event, or a synthesized break.
// For a given day the blocks tile [dayStart, dayEnd] with no overlaps
// and no gaps.
type TimelineBlock struct {
	Kind     BlockKind
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	ParentID string // originating record for event/virtualEvent blocks
	IsBreak  bool
}

// VirtualOccurrenceID derives the id of the nth virtual occurrence of a
// recurring parent event. Sequence numbers start at 1.
func VirtualOccurrenceID(parentID string, seq int) string {
	return fmt.Sprintf("%s-recur-%d", parentID, seq)
}

// BreakBlockID derives a break block id from its start timestamp.
func BreakBlockID(start time.Time) string {
	return fmt.Sprintf("break-%d", start.UnixMilli())
}

// NewBreakBlock builds a break tile spanning [start, end].
func NewBreakBlock(start, end time.Time) TimelineBlock {
	return TimelineBlock{
		Kind:    BlockBreak,
		ID:      BreakBlockID(start),
		Title:   BreakTitle,
		Start:   start,
		End:     end,
		IsBreak: true,
	}
}
