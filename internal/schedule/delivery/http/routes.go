package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require the Auth middleware: every operation is scoped to
// the calling user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule")
	{
		sched.POST("/todos/:id/generate", mw.Auth(), h.GenerateTasks)
		sched.POST("/events/:id/generate", mw.Auth(), h.GenerateEvents)
		sched.GET("/timeline/:date", mw.Auth(), h.Timeline)
		sched.GET("/timeline/:date/ics", mw.Auth(), h.TimelineICS)
		sched.GET("/children/:collection/:id", mw.Auth(), h.Children)
		sched.PATCH("/children/:collection/:id", mw.Auth(), h.CascadeUpdate)
		sched.DELETE("/children/:collection/:id", mw.Auth(), h.CascadeDelete)
	}
}
