package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hongminglow/newsroom-be/internal/config"
	"github.com/hongminglow/newsroom-be/internal/database"
	"github.com/hongminglow/newsroom-be/internal/logging"
	"github.com/hongminglow/newsroom-be/internal/server"
)

func main() {
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.IsDevelopment())
	slog.SetDefault(logger)
	if !envLoaded {
		logger.Info("no .env file found; relying on existing environment")
	}

	ctx := context.Background()
	store, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("init database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	srv := server.New(cfg, store, logger)

	if cfg.AdminPassword != "" {
		if err := srv.EnsureSuperAdmin(ctx, cfg.AdminPassword); err != nil {
			logger.Error("bootstrap super admin", "error", err)
			store.Close()
			os.Exit(1)
		}
	}

	go func() {
		logger.Info("newsroom backend listening", "addr", cfg.HTTPAddress())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", "error", err)
	}
}
