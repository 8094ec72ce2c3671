package handlers

import (
	"github.com/gofiber/fiber/v3"

	"srfibrowse/internal/config"
	"srfibrowse/internal/index"
)

// IndexHandler serves the SRFI index page.
type IndexHandler struct {
	renderer *index.Renderer
	cfg      *config.Config
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(renderer *index.Renderer, cfg *config.Config) *IndexHandler {
	return &IndexHandler{renderer: renderer, cfg: cfg}
}

// Index runs one render cycle and renders the table. When a dataset cannot
// be fetched the page is served without a table.
func (h *IndexHandler) Index(c fiber.Ctx) error {
	var table index.Container

	status := fiber.StatusOK
	loaded := true
	if err := h.renderer.Run(c.Context(), &table); err != nil {
		// Already logged by the renderer.
		status = fiber.StatusBadGateway
		loaded = false
	}

	return c.Status(status).Render("index", MergeBranding(fiber.Map{
		"Title":  "Index",
		"Loaded": loaded,
		"Rows":   table.Rows(),
	}, h.cfg))
}
