package http

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

var errMissingScope = errors.New("missing authentication scope")

// scopeFromContext pulls the caller identity set by the Auth middleware.
func scopeFromContext(c *gin.Context) (model.Scope, error) {
	v, ok := c.Get("scope")
	if !ok {
		return model.Scope{}, errMissingScope
	}
	sc, ok := v.(model.Scope)
	if !ok || sc.UserID == "" {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

// processGenerateReq binds the optional generation body and the parent
// id from the URI. An empty body is accepted.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	req.ParentID = c.Param("id")
	return req, req.validate()
}

// processTimelineReq parses the day from the URI. An empty or "today"
// segment means the current day.
func (h *handler) processTimelineReq(c *gin.Context) (schedule.TimelineInput, error) {
	raw := c.Param("date")
	if raw == "" || raw == "today" {
		return schedule.TimelineInput{Day: time.Now()}, nil
	}
	day, err := parseDate(raw)
	if err != nil {
		return schedule.TimelineInput{}, schedule.ErrInvalidWindow
	}
	return schedule.TimelineInput{Day: day}, nil
}

// processReconcileReq builds the parent reference from URI params.
func (h *handler) processReconcileReq(c *gin.Context) (schedule.ReconcileInput, error) {
	input := schedule.ReconcileInput{
		ParentID:   c.Param("id"),
		Collection: schedule.Collection(c.Param("collection")),
	}
	switch input.Collection {
	case schedule.CollectionTodo, schedule.CollectionCalendar:
	default:
		return input, schedule.ErrUnknownCollection
	}
	return input, nil
}

// processCascadeUpdateReq binds the patch body plus URI params.
func (h *handler) processCascadeUpdateReq(c *gin.Context) (schedule.ReconcileInput, cascadeUpdateReq, error) {
	input, err := h.processReconcileReq(c)
	if err != nil {
		return input, cascadeUpdateReq{}, err
	}
	var req cascadeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return input, req, err
	}
	return input, req, req.validate()
}
