package app

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	youtube_client "github.com/zerocreations/tunegrab/internal/client/youtube"
	"github.com/zerocreations/tunegrab/internal/config"
	"github.com/zerocreations/tunegrab/internal/logger"
	"github.com/zerocreations/tunegrab/internal/server"
	"github.com/zerocreations/tunegrab/internal/service/bot"
	"github.com/zerocreations/tunegrab/internal/transport/telegram"
)

// ExecuteRootCommand is the entry point for the application.
// It wires the media provider client, the pipeline service, and the Telegram
// transport, then serves updates until the context is canceled.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) {
	providerClient, err := youtube_client.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize media provider client: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Telegram client: %v", err)
	}

	registry := bot.NewSelectionRegistry(cfg.MaxSelectionEntries, cfg.ParsedSelectionTTL)
	tagProcessor := bot.NewTagProcessor()
	gateway := telegram.NewGateway(api)

	service := bot.NewService(cfg, providerClient, gateway, registry, tagProcessor)
	listener := telegram.NewListener(api, service)

	healthServer := server.NewServer(cfg.HealthAddr)

	go func() {
		if serveErr := healthServer.Run(ctx); serveErr != nil {
			logger.Errorf(ctx, "Health endpoint failed: %v", serveErr)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}
	}()

	listener.Run(ctx)

	logger.Info(ctx, "Shutdown complete")
}
