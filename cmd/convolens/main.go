package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/convolens/convolens/internal/api"
	"github.com/convolens/convolens/internal/bus"
	"github.com/convolens/convolens/internal/config"
	"github.com/convolens/convolens/internal/store"
	"github.com/convolens/convolens/internal/worker"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("convolens starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected")

	// Upload directory
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// NATS
	busClient, err := bus.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer busClient.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	// Analysis worker
	wrk := worker.New(db, busClient, slog.Default())
	if err := busClient.Subscribe(bus.SubjectAnalysisRequested, wrk.HandleAnalysisRequested); err != nil {
		slog.Error("failed to subscribe to analysis requests", "error", err)
		os.Exit(1)
	}

	// HTTP API
	srv := api.NewServer(api.Options{
		Port:          cfg.Port,
		APIToken:      cfg.APIToken,
		UploadDir:     cfg.UploadDir,
		MaxUploadSize: cfg.MaxUploadSize,
	}, db, busClient, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce availability
	if err := busClient.Publish("convolens.service.started", map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      cfg.Port,
	}); err != nil {
		slog.Warn("failed to publish startup event", "error", err)
	}

	slog.Info("convolens ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("convolens stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
