package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"resumesorter/internal/classify"
	"resumesorter/internal/config"
	"resumesorter/internal/extract"
	"resumesorter/internal/jobs"
	"resumesorter/internal/metrics"
	"resumesorter/internal/server"
	"resumesorter/internal/store"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	classifier := classify.New()
	registry := extract.NewRegistry()
	batchStore := store.New(cfg.SessionTTL)
	metrics.Init()

	srv := server.New(cfg)
	srv.RegisterRoutes(classifier, registry, batchStore)

	// Background cleanup of expired sessions and orphaned upload folders
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleaner := jobs.NewCleaner(batchStore, cfg.UploadDir, cfg.CleanupInterval, cfg.CleanupMaxAge)
	go cleaner.Start(ctx)

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
