package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zerocreations/tunegrab/internal/app"
	"github.com/zerocreations/tunegrab/internal/config"
	"github.com/zerocreations/tunegrab/internal/logger"
)

var (
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Credential management commands",
		Long: `Manage the bot's credentials.

Use 'auth token' to store the Telegram bot token in the configuration file.`,
	}

	authTokenCmd = &cobra.Command{
		Use:   "token {bot-token}",
		Short: "Save the Telegram bot token to the configuration file",
		Long: `Saves the Telegram bot token to the configuration file.

Get a token from @BotFather:
1. Open a chat with @BotFather in Telegram
2. Send /newbot and follow the prompts
3. Copy the token it gives you

Then store it:
tunegrab auth token 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11

The token can also be supplied via the TELEGRAM_BOT_TOKEN environment
variable instead of the configuration file.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteAuthTokenCommand(cmd.Context(), loadConfigForAuth(cmd), args[0])
		},
	}
)

// loadConfigForAuth loads the configuration leniently: storing a token is the
// first thing a new user does, so even an unreadable file is not fatal here.
func loadConfigForAuth(cmd *cobra.Command) *config.Config {
	cfg, err := config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Debugf(cmd.Context(), "Starting with a fresh configuration: %v", err)
		return &config.Config{}
	}

	return cfg
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authCmd.AddCommand(authTokenCmd)

	rootCmd.AddCommand(authCmd)
}
