package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timeblock/internal/schedule"
	"timeblock/internal/schedule/repository"
	"timeblock/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown
// errors become a generic 500 so backend details never leak.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrParentNotFound), errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, errMissingScope):
		response.Unauthorized(c)
	case errors.Is(err, schedule.ErrNotRecurring),
		errors.Is(err, schedule.ErrUnknownCollection),
		errors.Is(err, schedule.ErrInvalidWindow):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
