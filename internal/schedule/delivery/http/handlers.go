package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeblock/internal/feed"
	"timeblock/pkg/response"
)

// GenerateTasks godoc
// @Summary     Generate recurring task instances
// @Description Expands a recurring parent todo into persisted child todos, one per occurrence. Already-generated dates are skipped.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string      true  "Parent todo ID"
// @Param       body body generateReq false "Generation bounds"
// @Success     200  {object} generateTasksResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Parent not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/todos/{id}/generate [POST]
func (h *handler) GenerateTasks(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateRecurringTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateRecurringTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateTasksResp(output))
}

// GenerateEvents godoc
// @Summary     Generate recurring event instances
// @Description Expands a recurring parent event into persisted child events, preserving the parent's duration.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string      true  "Parent event ID"
// @Param       body body generateReq false "Generation bounds"
// @Success     200  {object} generateEventsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Parent not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/events/{id}/generate [POST]
func (h *handler) GenerateEvents(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateRecurringEvents(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateRecurringEvents: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateEventsResp(output))
}

// Timeline godoc
// @Summary     Day timeline
// @Description Returns the day tiled with event occurrences and break blocks, contiguous from day start to day end.
// @Tags        Schedule
// @Produce     json
// @Param       date path string true "Day (YYYY-MM-DD, or 'today')"
// @Success     200 {object} timelineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/timeline/{date} [GET]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	input, err := h.processTimelineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DayTimeline(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.DayTimeline: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTimelineResp(output))
}

// TimelineICS godoc
// @Summary     Day timeline as iCalendar
// @Description Returns the tiled day as a text/calendar document, with break blocks marked transparent and recurring series carrying their RRULE.
// @Tags        Schedule
// @Produce     plain
// @Param       date path string true "Day (YYYY-MM-DD, or 'today')"
// @Success     200 {string} string "iCalendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/timeline/{date}/ics [GET]
func (h *handler) TimelineICS(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	input, err := h.processTimelineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DayTimeline(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.DayTimeline: %v", err)
		h.respondError(c, err)
		return
	}

	parents, err := h.uc.RecurringEventParents(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.RecurringEventParents: %v", err)
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed.DayCalendar(output, parents)))
}

// Children godoc
// @Summary     List generated children
// @Description Lists the persisted instances descended from a recurring parent.
// @Tags        Schedule
// @Produce     json
// @Param       collection path string true "Collection (Todo or Calendar)"
// @Param       id         path string true "Parent record ID"
// @Success     200 {object} childrenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/children/{collection}/{id} [GET]
func (h *handler) Children(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	input, err := h.processReconcileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.FindChildren(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.FindChildren: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChildrenResp(output))
}

// CascadeUpdate godoc
// @Summary     Update all children of a parent
// @Description Applies the patch to every child of the parent, best-effort per item. Failures are counted, not fatal.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       collection path string           true "Collection (Todo or Calendar)"
// @Param       id         path string           true "Parent record ID"
// @Param       body       body cascadeUpdateReq true "Fields to apply"
// @Success     200 {object} reconcileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/children/{collection}/{id} [PATCH]
func (h *handler) CascadeUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	input, req, err := h.processCascadeUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CascadeUpdate(ctx, sc, input, req.toPatch())
	if err != nil {
		h.l.Errorf(ctx, "uc.CascadeUpdate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReconcileResp(output))
}

// CascadeDelete godoc
// @Summary     Delete all children of a parent
// @Description Removes every child of the parent, best-effort per item. The parent itself is kept.
// @Tags        Schedule
// @Produce     json
// @Param       collection path string true "Collection (Todo or Calendar)"
// @Param       id         path string true "Parent record ID"
// @Success     200 {object} reconcileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/children/{collection}/{id} [DELETE]
func (h *handler) CascadeDelete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	input, err := h.processReconcileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CascadeDelete(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CascadeDelete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReconcileResp(output))
}
