package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zerocreations/tunegrab/internal/app"
	"github.com/zerocreations/tunegrab/internal/config"
	"github.com/zerocreations/tunegrab/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "tunegrab [flags]",
		Short: "Run the Telegram music bot.",
		Long: `Tunegrab is a Telegram bot that finds and delivers music on request.

Send the bot a song or artist name, pick one of the matching results,
and receive the audio file right in the chat.

The application provides result count limits, download concurrency limits,
and a health endpoint for container deployments.`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.Int64P(
		"results",
		"r",
		0,
		"maximum number of search results offered per query.")

	rootCmdFlags.Int64P(
		"workers",
		"w",
		0,
		"maximum number of concurrent downloads across all users.")

	rootCmdFlags.String(
		"health-addr",
		"",
		"listen address of the health endpoint, for example: :8080.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("results"); flag != nil && flag.Changed {
		cfg.MaxSearchResults, _ = flags.GetInt64("results")
	}

	if flag := flags.Lookup("workers"); flag != nil && flag.Changed {
		cfg.MaxConcurrentDownloads, _ = flags.GetInt64("workers")
	}

	if flag := flags.Lookup("health-addr"); flag != nil && flag.Changed {
		cfg.HealthAddr, _ = flags.GetString("health-addr")
	}

	return config.ValidateConfig(cfg)
}
