package http

import (
	"time"

	"timeblock/internal/capture"
	"timeblock/internal/model"
	"timeblock/pkg/quickcapture"
)

// --- Request DTOs ---

type captureReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r captureReq) toInput() capture.CaptureInput {
	return capture.CaptureInput{Text: r.Text}
}

// --- Response DTOs ---

type parsedResp struct {
	Kind            string                  `json:"kind"`
	Title           string                  `json:"title"`
	Priority        string                  `json:"priority"`
	Date            *time.Time              `json:"date,omitempty"`
	Time            *quickcapture.TimeOfDay `json:"time,omitempty"`
	DurationMinutes int                     `json:"duration_minutes"`
	Tags            []string                `json:"tags,omitempty"`
	Confidence      float64                 `json:"confidence"`
}

func newParsedResp(p quickcapture.Parsed) parsedResp {
	return parsedResp{
		Kind:            string(p.Kind),
		Title:           p.Title,
		Priority:        p.Priority,
		Date:            p.Date,
		Time:            p.Time,
		DurationMinutes: p.DurationMinutes,
		Tags:            p.Tags,
		Confidence:      p.Confidence,
	}
}

type previewResp struct {
	Parsed parsedResp `json:"parsed"`
}

func (h *handler) newPreviewResp(out capture.PreviewOutput) previewResp {
	return previewResp{Parsed: newParsedResp(out.Parsed)}
}

type capturedTodoResp struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Priority string    `json:"priority"`
	Tags     []string  `json:"tags,omitempty"`
}

type capturedEventResp struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type captureResp struct {
	Parsed parsedResp         `json:"parsed"`
	Todo   *capturedTodoResp  `json:"todo,omitempty"`
	Event  *capturedEventResp `json:"event,omitempty"`
}

func (h *handler) newCaptureResp(out capture.CaptureOutput) captureResp {
	resp := captureResp{Parsed: newParsedResp(out.Parsed)}
	if out.Todo != nil {
		resp.Todo = newCapturedTodoResp(*out.Todo)
	}
	if out.Event != nil {
		resp.Event = newCapturedEventResp(*out.Event)
	}
	return resp
}

func newCapturedTodoResp(t model.Todo) *capturedTodoResp {
	return &capturedTodoResp{
		ID:       t.ID,
		Name:     t.Name,
		Date:     t.Date,
		Priority: t.Priority,
		Tags:     t.Tags,
	}
}

func newCapturedEventResp(e model.Event) *capturedEventResp {
	return &capturedEventResp{
		ID:    e.ID,
		Title: e.Title,
		Start: e.Start,
		End:   e.End,
	}
}
