package capture

import (
	"context"

	"timeblock/internal/model"
)

// UseCase defines the business logic interface for quick capture.
type UseCase interface {
	// Preview parses the input without persisting anything.
	Preview(ctx context.Context, sc model.Scope, input CaptureInput) (PreviewOutput, error)

	// Capture parses the input and creates the matching Todo or
	// Calendar record for the calling user.
	Capture(ctx context.Context, sc model.Scope, input CaptureInput) (CaptureOutput, error)
}
