package api

import (
	"net/url"

	"github.com/gofiber/fiber/v3"

	"srfibrowse/internal/index"
	"srfibrowse/internal/models"
	"srfibrowse/internal/validation"
)

// SRFIHandler serves the joined SRFI data as JSON.
type SRFIHandler struct {
	renderer *index.Renderer
}

// NewSRFIHandler creates a new API SRFI handler.
func NewSRFIHandler(renderer *index.Renderer) *SRFIHandler {
	return &SRFIHandler{renderer: renderer}
}

// List returns every record in listing order.
func (h *SRFIHandler) List(c fiber.Ctx) error {
	records, err := h.renderer.Records(c.Context())
	if err != nil {
		return jsonFetchFailure(c)
	}
	return jsonSuccess(c, records)
}

// Show returns a single record by SRFI number.
func (h *SRFIHandler) Show(c fiber.Ctx) error {
	number, err := url.PathUnescape(c.Params("number"))
	if err != nil || !validation.ValidateSRFIKey(number) {
		return jsonError(c, fiber.StatusBadRequest, "invalid SRFI number")
	}

	records, err := h.renderer.Records(c.Context())
	if err != nil {
		return jsonFetchFailure(c)
	}

	for _, rec := range records {
		if rec.ID == number {
			return jsonSuccess(c, rec)
		}
	}
	return jsonError(c, fiber.StatusNotFound, "SRFI not found")
}

// Symbols returns every known symbol with the SRFIs that define it.
func (h *SRFIHandler) Symbols(c fiber.Ctx) error {
	records, err := h.renderer.Records(c.Context())
	if err != nil {
		return jsonFetchFailure(c)
	}
	return jsonSuccess(c, SymbolIndex(records))
}

// Symbol lists the SRFIs that define a symbol. The name is taken from the
// raw path segment, so an escaped slash stays part of the name.
func (h *SRFIHandler) Symbol(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || !validation.ValidateSymbolName(name) {
		return jsonError(c, fiber.StatusBadRequest, "invalid symbol name")
	}

	records, err := h.renderer.Records(c.Context())
	if err != nil {
		return jsonFetchFailure(c)
	}

	defs := Definitions(records, name)
	if len(defs) == 0 {
		return jsonError(c, fiber.StatusNotFound, "Symbol not found")
	}
	return jsonSuccess(c, models.SymbolAPIResponse{Name: name, Definitions: defs})
}

// Definitions returns where name is defined, in record order.
func Definitions(records []models.DisplayRecord, name string) []models.SymbolDefinition {
	var defs []models.SymbolDefinition
	for _, rec := range records {
		for _, s := range rec.Symbols {
			if s == name {
				defs = append(defs, definedIn(rec.ID))
				break
			}
		}
	}
	return defs
}

// SymbolIndex maps every symbol to its definitions, each list in record order.
// A symbol listed twice by one SRFI yields one definition.
func SymbolIndex(records []models.DisplayRecord) map[string][]models.SymbolDefinition {
	idx := make(map[string][]models.SymbolDefinition)
	for _, rec := range records {
		seen := make(map[string]bool, len(rec.Symbols))
		for _, s := range rec.Symbols {
			if seen[s] {
				continue
			}
			seen[s] = true
			idx[s] = append(idx[s], definedIn(rec.ID))
		}
	}
	return idx
}

func definedIn(id string) models.SymbolDefinition {
	return models.SymbolDefinition{
		DefinedIn: models.DefinitionSource{Type: "srfi", Number: id},
		Type:      models.DefinitionProcedure,
	}
}
