package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	triageHTTP "arogyaai/internal/triage/delivery/http"
	userHTTP "arogyaai/internal/user/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	userHTTP.RegisterRoutes(srv.gin.Group("/auth"), srv.userHandler, srv.middleware)
	srv.l.Infof(ctx, "Auth routes registered at /auth")

	triageHTTP.RegisterRoutes(srv.gin.Group("/chat"), srv.chatHandler, srv.middleware)
	srv.l.Infof(ctx, "Chat routes registered at /chat")
}
