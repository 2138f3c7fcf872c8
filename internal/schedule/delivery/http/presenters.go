package http

import (
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

// --- Request DTOs ---

type generateReq struct {
	ParentID     string `json:"-"` // populated from URI param
	MaxInstances int    `json:"max_instances" binding:"omitempty,min=1,max=100"`
	EndDate      string `json:"end_date"      binding:"omitempty"`
}

func (r generateReq) validate() error {
	if r.EndDate == "" {
		return nil
	}
	if _, err := parseDate(r.EndDate); err != nil {
		return schedule.ErrInvalidWindow
	}
	return nil
}

func (r generateReq) toInput() schedule.GenerateInput {
	input := schedule.GenerateInput{
		ParentID:     r.ParentID,
		MaxInstances: r.MaxInstances,
	}
	if r.EndDate != "" {
		input.EndDate, _ = parseDate(r.EndDate)
	}
	return input
}

// ---

type cascadeUpdateReq struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=255"`
	Priority *string `json:"priority" binding:"omitempty,oneof=P1 P2 P3"`
	Done     *bool   `json:"done"`
	Title    *string `json:"title"    binding:"omitempty,min=1,max=255"`
}

func (r cascadeUpdateReq) validate() error { return nil }

func (r cascadeUpdateReq) toPatch() schedule.Patch {
	return schedule.Patch{
		Name:     r.Name,
		Priority: r.Priority,
		Done:     r.Done,
		Title:    r.Title,
	}
}

// parseDate accepts a bare date or a full timestamp.
func parseDate(s string) (time.Time, error) {
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, s)
}

// --- Response DTOs ---

type generatedTaskResp struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

type generateTasksResp struct {
	Tasks   []generatedTaskResp `json:"tasks"`
	Created int                 `json:"created"`
	Skipped int                 `json:"skipped"`
	Failed  int                 `json:"failed"`
}

func (h *handler) newGenerateTasksResp(out schedule.GenerateTasksOutput) generateTasksResp {
	tasks := make([]generatedTaskResp, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = generatedTaskResp{ID: task.ID, Name: task.Name, Date: task.Date}
	}
	return generateTasksResp{
		Tasks:   tasks,
		Created: out.Created,
		Skipped: out.Skipped,
		Failed:  out.Failed,
	}
}

type generatedEventResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	CalendarLink string    `json:"calendar_link,omitempty"`
}

type generateEventsResp struct {
	Events  []generatedEventResp `json:"events"`
	Created int                  `json:"created"`
	Skipped int                  `json:"skipped"`
	Failed  int                  `json:"failed"`
}

func (h *handler) newGenerateEventsResp(out schedule.GenerateEventsOutput) generateEventsResp {
	events := make([]generatedEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = generatedEventResp{
			ID:           ev.ID,
			Title:        ev.Title,
			Start:        ev.Start,
			End:          ev.End,
			CalendarLink: ev.CalendarLink,
		}
	}
	return generateEventsResp{
		Events:  events,
		Created: out.Created,
		Skipped: out.Skipped,
		Failed:  out.Failed,
	}
}

type blockResp struct {
	Kind     string    `json:"kind"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	ParentID string    `json:"parent_id,omitempty"`
	IsBreak  bool      `json:"is_break"`
}

type timelineResp struct {
	DayStart time.Time   `json:"day_start"`
	DayEnd   time.Time   `json:"day_end"`
	Blocks   []blockResp `json:"blocks"`
}

func (h *handler) newTimelineResp(out schedule.TimelineOutput) timelineResp {
	blocks := make([]blockResp, len(out.Blocks))
	for i, b := range out.Blocks {
		blocks[i] = blockResp{
			Kind:     string(b.Kind),
			ID:       b.ID,
			Title:    b.Title,
			Start:    b.Start,
			End:      b.End,
			ParentID: b.ParentID,
			IsBreak:  b.IsBreak,
		}
	}
	return timelineResp{
		DayStart: out.DayStart,
		DayEnd:   out.DayEnd,
		Blocks:   blocks,
	}
}

type todoResp struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Priority   string    `json:"priority"`
	Done       bool      `json:"done"`
	Tags       []string  `json:"tags,omitempty"`
	Recurrence string    `json:"recurrence"`
	ParentID   string    `json:"parent_id,omitempty"`
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{
		ID:         t.ID,
		Name:       t.Name,
		Date:       t.Date,
		Priority:   t.Priority,
		Done:       t.Done,
		Tags:       t.Tags,
		Recurrence: string(t.Recurrence),
		ParentID:   t.ParentID,
	}
}

type eventResp struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Recurrence string    `json:"recurrence"`
	ParentID   string    `json:"parent_id,omitempty"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:         e.ID,
		Title:      e.Title,
		Start:      e.Start,
		End:        e.End,
		Recurrence: string(e.Recurrence),
		ParentID:   e.ParentID,
	}
}

type childrenResp struct {
	Todos  []todoResp  `json:"todos"`
	Events []eventResp `json:"events"`
}

func (h *handler) newChildrenResp(out schedule.ChildrenOutput) childrenResp {
	resp := childrenResp{
		Todos:  make([]todoResp, len(out.Todos)),
		Events: make([]eventResp, len(out.Events)),
	}
	for i, t := range out.Todos {
		resp.Todos[i] = newTodoResp(t)
	}
	for i, e := range out.Events {
		resp.Events[i] = newEventResp(e)
	}
	return resp
}

type reconcileResp struct {
	Matched int `json:"matched"`
	Applied int `json:"applied"`
	Failed  int `json:"failed"`
}

func (h *handler) newReconcileResp(out schedule.ReconcileOutput) reconcileResp {
	return reconcileResp{
		Matched: out.Matched,
		Applied: out.Applied,
		Failed:  out.Failed,
	}
}
