// Package main runs the accounting system HTTP server: double-entry
// transaction recording and hierarchical statement reports over SQLite.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucashv/sistema-contabil/internal/api"
	"github.com/lucashv/sistema-contabil/internal/store"
	"github.com/lucashv/sistema-contabil/pkg/config"
)

func main() {
	// Setup structured JSON logging.
	level := slog.LevelInfo
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Initialize store.
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize store", "error", err, "db_path", cfg.DBPath)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	// Seed the chart of accounts on first run.
	if err := st.Seed(context.Background(), cfg.SeedPath); err != nil {
		slog.Error("failed to seed chart of accounts", "error", err, "seed_path", cfg.SeedPath)
		os.Exit(1)
	}

	slog.Info("database initialized", "db_path", cfg.DBPath)

	r := api.NewRouter(st, cfg.ResultRootCode)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("starting accounting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		if err := server.Close(); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
