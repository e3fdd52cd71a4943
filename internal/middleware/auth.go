package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"arogyaai/pkg/response"
)

const userIDKey = "user_id"

// Auth validates the Bearer token and stores the authenticated user id in
// the gin context. Handlers downstream read it with UserID.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil || claims.UserID == 0 {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
