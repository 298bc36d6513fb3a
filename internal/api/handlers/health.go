// Package handlers implements HTTP handlers for the ebay-importer API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devyassinepro/ebay-importer/internal/metrics"
	"github.com/devyassinepro/ebay-importer/internal/store"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	metrics.HealthzUp.Set(1)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if the database is reachable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		metrics.ReadyzUp.Set(0)
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"},
		)
	}
	metrics.ReadyzUp.Set(1)
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
