// Package notify watches the calendar for upcoming events and pushes a
// reminder once per occurrence.
package notify

import (
	"context"

	"timeblock/internal/model"
	pkgLog "timeblock/pkg/log"
)

// Notifier delivers one reminder. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, reminder Reminder) error
}

// Reminder describes one upcoming occurrence.
type Reminder struct {
	// DispatchID is unique per delivery attempt.
	DispatchID string
	Event      model.Event
}

// LogNotifier writes reminders to the service log. It is the default
// sink when no push channel is configured.
type LogNotifier struct {
	l pkgLog.Logger
}

func NewLogNotifier(l pkgLog.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(ctx context.Context, reminder Reminder) error {
	n.l.Infof(ctx, "reminder %s: %q starts at %s",
		reminder.DispatchID, reminder.Event.Title, reminder.Event.Start.Format("15:04"))
	return nil
}
