package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	pkgLog "timeblock/pkg/log"
)

const tickSpec = "@every 1m"

// VirtualExpander is the slice of the schedule use case the scheduler
// needs: read-time expansion of recurring events.
type VirtualExpander interface {
	ExpandVirtualEvents(ctx context.Context, sc model.Scope, input schedule.VirtualExpandInput) ([]model.Event, error)
}

// EventSource lists persisted events intersecting a window.
type EventSource interface {
	ListEventsInWindow(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Event, error)
}

// Scheduler polls the calendar on a cron tick and notifies once per
// upcoming occurrence, persisted and virtual alike. Dedupe is
// per-process: a restart may re-notify events still inside the lead
// window.
type Scheduler struct {
	l        pkgLog.Logger
	sc       model.Scope // the account this service instance runs for
	calRepo  EventSource
	expander VirtualExpander
	notifier Notifier
	lead     time.Duration
	now      func() time.Time

	cron *cron.Cron

	mu   sync.Mutex
	seen map[string]time.Time // occurrence key -> start, pruned on tick
}

// NewScheduler creates a reminder scheduler. lead is how far ahead of
// an occurrence the reminder fires.
func NewScheduler(
	l pkgLog.Logger,
	sc model.Scope,
	calRepo EventSource,
	expander VirtualExpander,
	notifier Notifier,
	lead time.Duration,
) *Scheduler {
	if lead <= 0 {
		lead = 15 * time.Minute
	}
	return &Scheduler{
		l:        l,
		sc:       sc,
		calRepo:  calRepo,
		expander: expander,
		notifier: notifier,
		lead:     lead,
		now:      time.Now,
		seen:     make(map[string]time.Time),
	}
}

// Start begins the cron loop.
func (s *Scheduler) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(tickSpec, func() {
		s.Tick(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder tick: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Tick scans [now, now+lead] and notifies every occurrence not yet
// seen by this process.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.now()
	windowEnd := now.Add(s.lead)

	var upcoming []model.Event

	persisted, err := s.calRepo.ListEventsInWindow(ctx, s.sc, now, windowEnd)
	if err != nil {
		s.l.Errorf(ctx, "notify: list events: %v", err)
	} else {
		upcoming = append(upcoming, persisted...)
	}

	virtual, err := s.expander.ExpandVirtualEvents(ctx, s.sc, schedule.VirtualExpandInput{Start: now, End: windowEnd})
	if err != nil {
		s.l.Errorf(ctx, "notify: expand virtual events: %v", err)
	} else {
		upcoming = append(upcoming, virtual...)
	}

	s.prune(now)

	for _, ev := range upcoming {
		if ev.Start.Before(now) {
			continue
		}
		key := occurrenceKey(ev)
		if !s.markSeen(key, ev.Start) {
			continue
		}

		reminder := Reminder{DispatchID: uuid.NewString(), Event: ev}
		if err := s.notifier.Notify(ctx, reminder); err != nil {
			s.l.Errorf(ctx, "notify: deliver reminder for %s: %v", ev.ID, err)
			s.unmarkSeen(key)
		}
	}
}

// occurrenceKey identifies one occurrence across ticks. Virtual ids
// already encode the sequence; the start guards against reschedules.
func occurrenceKey(ev model.Event) string {
	return fmt.Sprintf("%s@%d", ev.ID, ev.Start.UnixMilli())
}

func (s *Scheduler) markSeen(key string, start time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = start
	return true
}

func (s *Scheduler) unmarkSeen(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seen, key)
}

// prune drops entries whose occurrence already started.
func (s *Scheduler) prune(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, start := range s.seen {
		if start.Before(now) {
			delete(s.seen, key)
		}
	}
}
