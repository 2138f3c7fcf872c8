package pocketbase

import (
	"timeblock/internal/schedule/repository"
	pkgLog "timeblock/pkg/log"
	pb "timeblock/pkg/pocketbase"
)

// Collection names in the backing store.
const (
	todoCollection     = "Todo"
	calendarCollection = "Calendar"
)

type implRepository struct {
	client *pb.Client
	l      pkgLog.Logger
}

// New creates a repository over the records API client. The returned
// value implements both repository.TodoRepository and
// repository.CalendarRepository.
func New(client *pb.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

var (
	_ repository.TodoRepository     = (*implRepository)(nil)
	_ repository.CalendarRepository = (*implRepository)(nil)
)
