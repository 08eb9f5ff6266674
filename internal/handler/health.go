package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"duobuddy-proxy/internal/config"
)

// Version is a string type for dependency injection of the build version.
type Version string

// HealthHandler serves the liveness and info endpoints. Neither contacts the upstream.
type HealthHandler struct {
	cfg     *config.Config
	version Version
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(cfg *config.Config, v Version) *HealthHandler {
	return &HealthHandler{cfg: cfg, version: v}
}

// Health reports that the proxy process is up.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.cfg.Service.Name,
	})
}

// Info names the service, its version and the configured backend.
func (h *HealthHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": h.cfg.Service.Title,
		"version": string(h.version),
		"backend": h.cfg.Upstream.BaseURL,
	})
}
