package usecase

import (
	"context"
	"time"

	"timeblock/internal/schedule"
	"timeblock/internal/schedule/repository"
	"timeblock/pkg/datemath"
	"timeblock/pkg/gcalendar"
	pkgLog "timeblock/pkg/log"
	"timeblock/pkg/recur"
)

// Mirror is the external calendar surface used by generation and by
// cascade cleanup of mirrored instances. *gcalendar.Client satisfies
// it.
type Mirror interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Defaults tunes expansion bounds. Zero members fall back to the
// pkg/recur constants.
type Defaults struct {
	MaxInstances       int
	TaskHorizonDays    int
	EventHorizonMonths int
}

func (d Defaults) normalize() Defaults {
	if d.MaxInstances <= 0 {
		d.MaxInstances = recur.DefaultMaxInstances
	}
	if d.TaskHorizonDays <= 0 {
		d.TaskHorizonDays = recur.DefaultTaskHorizonDays
	}
	if d.EventHorizonMonths <= 0 {
		d.EventHorizonMonths = recur.DefaultEventHorizonMonths
	}
	return d
}

type implUseCase struct {
	l        pkgLog.Logger
	todoRepo repository.TodoRepository
	calRepo  repository.CalendarRepository
	mirror   Mirror // optional Google Calendar mirror
	dateMath *datemath.Parser
	timezone string
	defaults Defaults
	now      func() time.Time
}

// New creates a new schedule UseCase instance. mirror may be nil when
// Google Calendar is not configured.
func New(
	l pkgLog.Logger,
	todoRepo repository.TodoRepository,
	calRepo repository.CalendarRepository,
	mirror Mirror,
	dateMath *datemath.Parser,
	timezone string,
	defaults Defaults,
) *implUseCase {
	return &implUseCase{
		l:        l,
		todoRepo: todoRepo,
		calRepo:  calRepo,
		mirror:   mirror,
		dateMath: dateMath,
		timezone: timezone,
		defaults: defaults.normalize(),
		now:      time.Now,
	}
}

var _ schedule.UseCase = (*implUseCase)(nil)
