// Package server is the Tailora web server: JSON wardrobe APIs, the
// server-rendered UI and its client scripts, media serving and LAN discovery.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tailora-app/tailora/internal/config"
	"github.com/tailora-app/tailora/internal/media"
	"github.com/tailora-app/tailora/internal/store"
)

// app carries the server's collaborators; every handler hangs off it.
type app struct {
	cfg   config.File
	db    *store.Store
	media *media.Library
}

func Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.SeedCategories(cfg.Wardrobe.Categories); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	lib, err := media.NewLibrary(cfg.Server.MediaDir, 64)
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, db: db, media: lib}

	addr := envOrDefault("TAILORA_SERVER_ADDR", cfg.Server.ListenAddr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopMDNS := startMDNSAdvertiser(cfg, addr)
	defer stopMDNS()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("tailora server started", "addr", addr, "db", cfg.Server.DBPath)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		slog.Info("tailora server stopped")
		return nil
	case err := <-errCh:
		if err != nil {
			return err
		}
		slog.Info("tailora server stopped")
		return nil
	}
}

// Seed opens the configured store and inserts any default categories that
// are not already present. Safe to run repeatedly; the server also does
// this on startup, so Seed exists for preparing a database ahead of time.
func Seed() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.SeedCategories(cfg.Wardrobe.Categories); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	cats, err := db.ListCategories()
	if err != nil {
		return err
	}
	slog.Info("categories seeded", "total", len(cats), "db", cfg.Server.DBPath)
	return nil
}

// loadConfig reads TAILORA_CONFIG (default tailora.yaml); a missing file
// means built-in defaults, any other error is fatal.
func loadConfig() (config.File, error) {
	path := envOrDefault("TAILORA_CONFIG", "tailora.yaml")
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no config file, using defaults", "path", path)
		return config.Default(), nil
	}
	return config.File{}, err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
