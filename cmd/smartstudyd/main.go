package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
	"github.com/smartstudy-ai/smartstudy-backend/internal/llm/gemini"
	repo "github.com/smartstudy-ai/smartstudy-backend/internal/repository"
	svc "github.com/smartstudy-ai/smartstudy-backend/internal/server"
	"github.com/smartstudy-ai/smartstudy-backend/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Safe when absent; Cloud Run supplies real env vars.
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env file")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fsClient, err := repo.Open(ctx, cfg.GCP.ProjectID, logger)
	if err != nil {
		logger.Error("document store init failed", "error", err)
		os.Exit(1)
	}
	defer repo.Close(fsClient, logger)
	notes := repo.NewNoteRepository(fsClient, logger)

	uploader, err := storage.NewGCSUploader(ctx, cfg.GCP.BucketName, logger)
	if err != nil {
		logger.Error("object storage init failed", "error", err)
		os.Exit(1)
	}
	defer uploader.Close()

	gen, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("model client init failed", "error", err)
		os.Exit(1)
	}
	defer gen.Close()

	service := svc.NewStudyService(gen, notes, uploader, cfg.Server, logger)
	router := svc.NewRouter(service)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
	logger.Info("server stopped")
}
