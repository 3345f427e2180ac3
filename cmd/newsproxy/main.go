package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/techradar/news-service/internal/adapter/http"
	"github.com/techradar/news-service/internal/cache"
	"github.com/techradar/news-service/internal/config"
	"github.com/techradar/news-service/internal/observability"
	"github.com/techradar/news-service/internal/service"
	"github.com/techradar/news-service/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Select the upstream transport. The proxy route only exists in webhook
	// mode: the vector endpoint has no meaningful raw GET to relay.
	var fetcher upstream.Fetcher
	var relay httpadapter.UpstreamRelay
	switch cfg.UpstreamMode {
	case config.ModeVector:
		fetcher = upstream.NewVectorClient(cfg.UpstreamURL, cfg.VectorQuery, cfg.UpstreamTimeout, metrics, logger)
	default:
		webhook := upstream.NewWebhookClient(cfg.UpstreamURL, cfg.UpstreamTimeout, metrics, logger)
		fetcher = webhook
		relay = webhook
	}
	logger.Info("upstream configured", "mode", cfg.UpstreamMode, "timeout", cfg.UpstreamTimeout)

	store := cache.New(nil)
	svc := service.New(fetcher, store, service.Options{
		TTL:             cfg.CacheTTL,
		FallbackTTL:     cfg.FallbackTTL,
		RefreshInterval: cfg.RefreshInterval,
	}, metrics, logger, nil)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, relay, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := svc.RunRefreshLoop(ctx); err != nil {
			logger.Error("refresh loop error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
