package http

import (
	"github.com/gin-gonic/gin"

	"arogyaai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Auth endpoints are rate limited to slow down credential stuffing.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/signup", mw.RateLimit(), h.Signup)
	rg.POST("/login", mw.RateLimit(), h.Login)
}
