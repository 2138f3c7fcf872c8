package usecase

import (
	"time"

	"timeblock/internal/capture"
	"timeblock/internal/schedule/repository"
	"timeblock/pkg/datemath"
	pkgLog "timeblock/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	todoRepo repository.TodoRepository
	calRepo  repository.CalendarRepository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new capture UseCase instance. Captured records are
// written through the same repositories the schedule domain reads.
func New(
	l pkgLog.Logger,
	todoRepo repository.TodoRepository,
	calRepo repository.CalendarRepository,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		todoRepo: todoRepo,
		calRepo:  calRepo,
		dateMath: dateMath,
		now:      time.Now,
	}
}

var _ capture.UseCase = (*implUseCase)(nil)
