package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sergdemc/y-lab-1/internal/handlers"
	"github.com/sergdemc/y-lab-1/internal/seed"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log.Info("starting menu api server",
		"version", version,
		"address", cfg.Server.Addr(),
		"store", cfg.Database.Driver,
		"cache", cfg.Cache.Driver,
		"log_level", cfg.LogLevel,
		"auth", cfg.Auth.Enabled(),
	)

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	if len(cfg.Seed.Sources) > 0 {
		log.Info("loading seed data...", "sources", len(cfg.Seed.Sources))
		if _, err := applySeed(ctx, a, cfg.Seed.Sources); err != nil {
			return err
		}
	}

	var cachePinger handlers.Pinger
	if a.cacheOn {
		cachePinger = a.cache
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Menus:          a.menus,
		Submenus:       a.submenus,
		Dishes:         a.dishes,
		Health:         handlers.NewHealthHandler(a.store, cachePinger, version, log),
		Auth:           cfg.Auth,
		RequestTimeout: cfg.Server.RequestTimeout,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}

func applySeed(ctx context.Context, a *app, sources []string) (seed.Stats, error) {
	doc, err := seed.NewLoader(nil).Load(ctx, sources)
	if err != nil {
		return seed.Stats{}, fmt.Errorf("failed to load seed data: %w", err)
	}

	applier := seed.NewApplier(seed.Services{
		Menus:    a.menus,
		Submenus: a.submenus,
		Dishes:   a.dishes,
	}, log)

	stats, err := applier.Apply(ctx, doc)
	if err != nil {
		return stats, fmt.Errorf("failed to apply seed data: %w", err)
	}
	return stats, nil
}
