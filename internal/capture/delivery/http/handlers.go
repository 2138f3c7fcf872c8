package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/pkg/response"
)

// Capture godoc
// @Summary     Quick capture
// @Description Parses one line of free text and creates the matching todo or calendar event for the calling user.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       body body captureReq true "Text to capture"
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req, err := h.processCaptureReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Capture(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Capture: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCaptureResp(output))
}

// Preview godoc
// @Summary     Preview a capture
// @Description Parses one line of free text and returns the structured result without persisting anything.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       body body captureReq true "Text to parse"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/capture/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req, err := h.processCaptureReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}
