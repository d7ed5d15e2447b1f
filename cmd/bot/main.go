package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/assistant"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/bot"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/cache"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/config"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/datasource"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/gateway"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/logger"
)

func main() {
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

	if cfg.Telegram.Token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeCache, err := cache.Open(ctx, cfg.Cache)
	if err != nil {
		log.Fatal("failed to open cache", zap.Error(err))
	}
	defer func() { _ = closeCache() }()

	data := datasource.New(datasource.Deps{
		Backend:    gateway.New(cfg.API.BaseURL, gateway.WithTimeout(cfg.API.Timeout), gateway.WithLogger(log.Named("backend"))),
		SameOrigin: gateway.NewSameOrigin(cfg.API.SiteURL, gateway.WithTimeout(cfg.API.Timeout), gateway.WithLogger(log.Named("same-origin"))),
		Cache:      store,
		Source:     cfg.API.Source,
		Logger:     log.Named("datasource"),
	})

	answerer := assistant.NewOpenAIAnswerer(cfg.OpenAI, data.LandingContent(ctx).FAQ, log.Named("assistant"))

	b, err := bot.New(cfg.Telegram.Token, data, answerer, log.Named("bot"))
	if err != nil {
		log.Fatal("failed to start bot", zap.Error(err))
	}

	b.Start(ctx)
	log.Info("bot stopped")
}
