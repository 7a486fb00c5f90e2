package router

import (
	"github.com/deppfellow/student-records/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the public endpoints that sit outside
// the records API: health, docs and the static assets behind them.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
