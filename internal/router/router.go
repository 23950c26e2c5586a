// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/himawari-kids/inquiry-api/internal/handler"
	"github.com/himawari-kids/inquiry-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the echo instance with the full middleware stack and all
// routes registered.
//
// Middleware order matters: RequestID must run before the context
// enhancer so the request-scoped logger carries the correlation id,
// and Recover wraps everything so panics reach the error funnel as
// 500s instead of killing the process.
func New(middlewares *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.Secure())
	e.Use(middlewares.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Global.RequestLogger())

	api := e.Group("/api")
	api.POST("/inquiry", handlers.Inquiry.Submit())

	registerSystemRoutes(api, handlers)

	return e
}
