package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timeblock/internal/model"
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

// processCaptureReq binds the capture request body.
func (h *handler) processCaptureReq(c *gin.Context) (captureReq, error) {
	var req captureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
