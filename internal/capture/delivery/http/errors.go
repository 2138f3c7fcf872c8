package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timeblock/internal/capture"
	"timeblock/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errMissingScope):
		response.Unauthorized(c)
	case errors.Is(err, capture.ErrEmptyInput):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
