package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	quick := rg.Group("/capture")
	{
		quick.POST("", mw.Auth(), mw.RateLimit(), h.Capture)
		quick.POST("/preview", mw.Auth(), mw.RateLimit(), h.Preview)
	}
}
