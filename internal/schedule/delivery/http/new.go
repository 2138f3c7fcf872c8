package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/schedule"
	pkgLog "timeblock/pkg/log"
)

// Handler is the HTTP-facing interface of the schedule domain.
type Handler interface {
	GenerateTasks(c *gin.Context)
	GenerateEvents(c *gin.Context)
	Timeline(c *gin.Context)
	TimelineICS(c *gin.Context)
	Children(c *gin.Context)
	CascadeUpdate(c *gin.Context)
	CascadeDelete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc schedule.UseCase
}

// New creates a schedule HTTP handler.
func New(l pkgLog.Logger, uc schedule.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
