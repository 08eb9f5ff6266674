// Package handler provides the HTTP handlers and route table.
package handler

import (
	"github.com/labstack/echo/v4"

	"duobuddy-proxy/internal/config"
	"duobuddy-proxy/internal/metrics"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
// m may be nil when metrics are disabled.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, proxy *ProxyHandler, health *HealthHandler, m *metrics.Metrics) {
	e.GET("/", health.Info)
	e.GET("/health", health.Health)
	e.Match(ProxyMethods, "/api/*", proxy.Handle)

	if m != nil {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(m.Handler()))
	}
}
