package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetmanager-api-gateway/internal/app"
	"vetmanager-api-gateway/internal/platform/config"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/router"
)

// @title Vetmanager API Gateway
// @version 1.0
// @description Explorador de solo lectura sobre la API REST de Vetmanager.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer a.Close()

	r := router.NewRouter(router.Options{
		Gateway:  a.Gateway,
		Journal:  a.Journal,
		Log:      log,
		Gatherer: a.Registry,
		Health:   a.Health,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Timeout + 10*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr, "cache_ttl": cfg.CacheTTL.String()})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
