package handlers

import (
	"github.com/gofiber/fiber/v3"

	"srfibrowse/internal/source"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	sources []source.Source
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(sources []source.Source) *ProbeHandler {
	return &ProbeHandler{sources: sources}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if every data source is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	for _, src := range h.sources {
		if err := src.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  src.Name() + " unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
