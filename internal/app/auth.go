package app

import (
	"context"

	"github.com/zerocreations/tunegrab/internal/config"
	"github.com/zerocreations/tunegrab/internal/logger"
)

// ExecuteAuthTokenCommand saves the provided Telegram bot token to the
// configuration file, so the bot can be started without exporting it
// on every run.
func ExecuteAuthTokenCommand(ctx context.Context, cfg *config.Config, token string) {
	cfg.TelegramToken = token

	if err := config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "You can now start the bot:")
	logger.Info(ctx, "tunegrab")
}
