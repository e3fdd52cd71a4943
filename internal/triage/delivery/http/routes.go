package http

import (
	"github.com/gin-gonic/gin"

	"arogyaai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Both routes require an authenticated user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/send", mw.Auth(), h.Send)
	rg.GET("/history", mw.Auth(), h.History)
}
