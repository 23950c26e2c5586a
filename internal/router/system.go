package router

import (
	"github.com/himawari-kids/inquiry-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers "system" endpoints that are not part
// of business logic.
func registerSystemRoutes(api *echo.Group, h *handler.Handlers) {
	// Health status endpoint (used by uptime monitors / load balancers).
	api.GET("/health", h.Health.CheckHealth)
}
