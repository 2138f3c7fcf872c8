package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/capture"
	pkgLog "timeblock/pkg/log"
)

// Handler is the HTTP-facing interface of the capture domain.
type Handler interface {
	Capture(c *gin.Context)
	Preview(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc capture.UseCase
}

// New creates a capture HTTP handler.
func New(l pkgLog.Logger, uc capture.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
