package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrParentNotFound    = errors.New("parent record not found")
	ErrNotRecurring      = errors.New("record has no recurrence")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidWindow     = errors.New("window end is before window start")
)
