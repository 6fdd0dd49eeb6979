package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "workspace-gateway/internal/calendar/delivery/http"
	"workspace-gateway/internal/middleware"
	"workspace-gateway/internal/model"
	notesHTTP "workspace-gateway/internal/notes/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
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

// registerDomainRoutes registers all domain routes. Calendar routes are always
// mounted; when no calendar credentials were loaded, the usecase answers each
// request with a configuration error instead.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	calendarHTTP.RegisterRoutes(srv.gin, srv.calendarHandler)
	srv.l.Infof(ctx, "Calendar routes registered")

	notesHTTP.RegisterRoutes(srv.gin, srv.notesHandler)
	srv.l.Infof(ctx, "Notes routes registered")
}
