package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/cache"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/config"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/datasource"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/gateway"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/logger"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store, closeCache, err := cache.Open(ctx, cfg.Cache)
	if err != nil {
		log.Fatal("failed to open cache", zap.Error(err))
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Warn("closing cache failed", zap.Error(err))
		}
	}()

	data := datasource.New(datasource.Deps{
		Backend:    gateway.New(cfg.API.BaseURL, gateway.WithTimeout(cfg.API.Timeout), gateway.WithLogger(log.Named("backend"))),
		SameOrigin: gateway.NewSameOrigin(cfg.API.SiteURL, gateway.WithTimeout(cfg.API.Timeout), gateway.WithLogger(log.Named("same-origin"))),
		Cache:      store,
		Source:     cfg.API.Source,
		Logger:     log.Named("datasource"),
	})
	log.Info("data source resolved",
		zap.Stringer("source", cfg.API.Source),
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("cache", string(cfg.Cache.Backend)),
	)

	router := server.NewRouter(log.Named("http"), server.RouterDependencies{
		Data: data,
		Demo: data.Demo,
	})
	srv := server.New(log, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("server stopped unexpectedly", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
