package capture

import (
	"timeblock/internal/model"
	"timeblock/pkg/quickcapture"
)

// CaptureInput is one line of free text from the quick-capture box.
type CaptureInput struct {
	Text string
}

// PreviewOutput is the parse result before anything is persisted, so
// the UI can show what capture would create.
type PreviewOutput struct {
	Parsed quickcapture.Parsed
}

// CaptureOutput reports what was created. Exactly one of Todo or Event
// is set, matching the parsed kind.
type CaptureOutput struct {
	Parsed quickcapture.Parsed
	Todo   *model.Todo
	Event  *model.Event
}
