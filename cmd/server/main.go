package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"srfibrowse/internal/config"
	"srfibrowse/internal/index"
	"srfibrowse/internal/jobs"
	"srfibrowse/internal/logger"
	"srfibrowse/internal/metrics"
	"srfibrowse/internal/server"
	"srfibrowse/internal/source"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	yamlCfg.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel))
	metrics.Init()

	// Data sources
	client := source.NewClient(cfg.FetchTimeout)
	infoSource := source.New("srfi-info", cfg.InfoSource, client)
	symbolSource := source.New("srfi-symbols", cfg.SymbolSource, client)
	renderer := index.NewRenderer(infoSource, symbolSource, slog.Default())

	srv := server.New(cfg)
	srv.RegisterRoutes(renderer)

	// Background reachability checks
	if cfg.SourceCheckInterval > 0 {
		checker := jobs.NewSourceChecker(renderer.Sources(), cfg.SourceCheckInterval)
		go checker.Start(ctx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
