package middleware

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/model"
	"timeblock/pkg/response"
)

// HeaderUserID carries the authenticated user id, set by the gateway
// in front of this service after it validates the session token.
const HeaderUserID = "X-User-Id"

// Auth requires an authenticated caller and stores the scope for the
// handlers downstream.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("scope", model.Scope{UserID: userID})
		c.Next()
	}
}
