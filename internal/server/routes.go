package server

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"srfibrowse/internal/handlers"
	"srfibrowse/internal/handlers/api"
	"srfibrowse/internal/index"
)

// Raw dataset files served from DataDir.
const (
	InfoFile   = "srfi-map.json"
	SymbolFile = "srfi-to-symbol-map.json"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(renderer *index.Renderer) {
	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(renderer, s.Cfg)
	probeHandler := handlers.NewProbeHandler(renderer.Sources())
	srfiAPI := api.NewSRFIHandler(renderer)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Raw datasets, so the service can act as its own data source
	if s.Cfg.DataDir != "" {
		log.Printf("Serving raw SRFI data from %s", s.Cfg.DataDir)
		s.App.Get("/"+InfoFile, static.New(filepath.Join(s.Cfg.DataDir, InfoFile)))
		s.App.Get("/"+SymbolFile, static.New(filepath.Join(s.Cfg.DataDir, SymbolFile)))
	}

	// JSON API
	s.App.Get("/api/srfi", srfiAPI.List)
	s.App.Get("/api/srfi/:number", srfiAPI.Show)
	s.App.Get("/api/symbol", srfiAPI.Symbols)
	s.App.Get("/api/symbol/:name", srfiAPI.Symbol)

	// Index page
	s.App.Get("/", indexHandler.Index)
}
