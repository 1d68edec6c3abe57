package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/zerocreations/tunegrab/internal/constants"
	"github.com/zerocreations/tunegrab/internal/logger"
	"github.com/zerocreations/tunegrab/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// TelegramToken is the Telegram Bot API token used to receive and send messages.
	TelegramToken string `mapstructure:"telegram_token"`
	// YouTubeAPIKey is the API key for the YouTube Data API used for searching.
	YouTubeAPIKey string `mapstructure:"youtube_api_key"`
	// MaxSearchResults is the upper bound on candidates shown per search.
	MaxSearchResults int64 `mapstructure:"max_search_results"`
	// MaxConcurrentDownloads is the size of the worker pool for audio fetches.
	MaxConcurrentDownloads int64 `mapstructure:"max_concurrent_downloads"`
	// MaxDownloadsPerUser caps how many fetches a single user may have in flight.
	MaxDownloadsPerUser int64 `mapstructure:"max_downloads_per_user"`
	// SelectionTTL is how long an unconsumed selection option stays valid (e.g., "15m").
	SelectionTTL string `mapstructure:"selection_ttl"`
	// MaxSelectionEntries bounds the selection registry across all users.
	MaxSelectionEntries int `mapstructure:"max_selection_entries"`
	// MaxAudioSize is the largest audio payload the bot will deliver (e.g., "48MB").
	MaxAudioSize string `mapstructure:"max_audio_size"`
	// RequestTimeout is the timeout for provider HTTP requests (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// HealthAddr is the listen address of the liveness endpoint.
	HealthAddr string `mapstructure:"health_addr"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedSelectionTTL is the parsed selection TTL.
	ParsedSelectionTTL time.Duration
	// ParsedMaxAudioSize is the parsed audio size limit in bytes.
	ParsedMaxAudioSize int64
	// ParsedRequestTimeout is the parsed provider request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".tunegrab.yaml"

	// DefaultMaxSearchResults is the default number of candidates shown per search.
	DefaultMaxSearchResults = 5

	// DefaultMaxConcurrentDownloads is the default fetch worker pool size.
	DefaultMaxConcurrentDownloads = 8

	// DefaultMaxDownloadsPerUser is the default per-user in-flight fetch cap.
	DefaultMaxDownloadsPerUser = 2

	// DefaultSelectionTTL is the default idle window before unconsumed options expire.
	DefaultSelectionTTL = "15m"

	// DefaultMaxSelectionEntries is the default registry size bound.
	DefaultMaxSelectionEntries = 10000

	// DefaultMaxAudioSize is the default delivery size limit.
	// Telegram bots cannot upload files larger than 50 MB, so stay under it.
	DefaultMaxAudioSize = "48MB"

	// DefaultRequestTimeout is the default provider request timeout.
	DefaultRequestTimeout = "30s"

	// DefaultHealthAddr is the default liveness endpoint address.
	DefaultHealthAddr = ":8080"

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged HTTP dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// maxSearchResultsCeiling is the largest permitted value of max_search_results.
	// Telegram inline keyboards get unwieldy beyond ten rows.
	maxSearchResultsCeiling = 10
)

// Environment variable fallbacks for secrets.
const (
	telegramTokenEnvVar = "TELEGRAM_BOT_TOKEN"
	youtubeAPIKeyEnvVar = "YOUTUBE_API_KEY"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyTelegramToken indicates that the Telegram bot token is missing.
	ErrEmptyTelegramToken = errors.New("telegram token cannot be empty")
	// ErrEmptyYouTubeAPIKey indicates that the YouTube API key is missing.
	ErrEmptyYouTubeAPIKey = errors.New("youtube api key cannot be empty")
	// ErrInvalidMaxSearchResults indicates that the search result bound is invalid.
	ErrInvalidMaxSearchResults = errors.New("invalid max_search_results")
	// ErrInvalidConcurrentDownloads indicates that the worker pool size is invalid.
	ErrInvalidConcurrentDownloads = errors.New("max_concurrent_downloads must be a positive integer")
	// ErrInvalidDownloadsPerUser indicates that the per-user fetch cap is invalid.
	ErrInvalidDownloadsPerUser = errors.New("max_downloads_per_user must be a positive integer")
	// ErrInvalidSelectionTTL indicates that the selection TTL is invalid.
	ErrInvalidSelectionTTL = errors.New("selection_ttl must be positive")
	// ErrInvalidSelectionEntries indicates that the registry size bound is invalid.
	ErrInvalidSelectionEntries = errors.New("max_selection_entries must be a positive integer")
	// ErrInvalidMaxAudioSize indicates that the audio size limit is invalid.
	ErrInvalidMaxAudioSize = errors.New("max_audio_size must be positive")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrEmptyHealthAddr indicates that the liveness endpoint address is missing.
	ErrEmptyHealthAddr = errors.New("health_addr cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
// Secrets may also be supplied via the TELEGRAM_BOT_TOKEN and YOUTUBE_API_KEY
// environment variables, which take effect when the file leaves them empty.
// A missing file is not an error: every field has a default or an environment
// fallback, so env-only deployments can start without one.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError

		if !errors.As(err, &notFoundErr) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvironmentFallbacks(&cfg)

	return &cfg, nil
}

// setDefaults registers default values so a minimal config file stays minimal.
func setDefaults() {
	viper.SetDefault("max_search_results", DefaultMaxSearchResults)
	viper.SetDefault("max_concurrent_downloads", DefaultMaxConcurrentDownloads)
	viper.SetDefault("max_downloads_per_user", DefaultMaxDownloadsPerUser)
	viper.SetDefault("selection_ttl", DefaultSelectionTTL)
	viper.SetDefault("max_selection_entries", DefaultMaxSelectionEntries)
	viper.SetDefault("max_audio_size", DefaultMaxAudioSize)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("health_addr", DefaultHealthAddr)
	viper.SetDefault("log_level", "info")
}

// applyEnvironmentFallbacks fills secret fields from the environment when unset.
func applyEnvironmentFallbacks(cfg *Config) {
	if strings.TrimSpace(cfg.TelegramToken) == "" {
		cfg.TelegramToken = os.Getenv(telegramTokenEnvVar)
	}

	if strings.TrimSpace(cfg.YouTubeAPIKey) == "" {
		cfg.YouTubeAPIKey = os.Getenv(youtubeAPIKeyEnvVar)
	}
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	if strings.TrimSpace(cfg.TelegramToken) == "" {
		return ErrEmptyTelegramToken
	}

	if strings.TrimSpace(cfg.YouTubeAPIKey) == "" {
		return ErrEmptyYouTubeAPIKey
	}

	if cfg.MaxSearchResults <= 0 || cfg.MaxSearchResults > maxSearchResultsCeiling {
		return fmt.Errorf("%w: must be between 1 and %d", ErrInvalidMaxSearchResults, maxSearchResultsCeiling)
	}

	if cfg.MaxConcurrentDownloads <= 0 {
		return ErrInvalidConcurrentDownloads
	}

	if cfg.MaxDownloadsPerUser <= 0 {
		return ErrInvalidDownloadsPerUser
	}

	cfg.ParsedSelectionTTL, err = time.ParseDuration(cfg.SelectionTTL)
	if err != nil {
		return fmt.Errorf("failed to parse selection TTL: %w", err)
	}

	if cfg.ParsedSelectionTTL <= 0 {
		return ErrInvalidSelectionTTL
	}

	if cfg.MaxSelectionEntries <= 0 {
		return ErrInvalidSelectionEntries
	}

	parsedMaxAudioSize, err := humanize.ParseBytes(cfg.MaxAudioSize)
	if err != nil {
		return fmt.Errorf("failed to parse max audio size: %w", err)
	}

	if parsedMaxAudioSize == 0 {
		return ErrInvalidMaxAudioSize
	}

	// Payload sizes are compared against int64 lengths, so convert safely.
	cfg.ParsedMaxAudioSize = utils.SafeUint64ToInt64(parsedMaxAudioSize)

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	if strings.TrimSpace(cfg.HealthAddr) == "" {
		return ErrEmptyHealthAddr
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.TelegramToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the telegram_token value in the node tree.
	updateTelegramTokenInNode(&node, cfg.TelegramToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, telegramToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("telegram_token", telegramToken)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateTelegramTokenInNode updates the telegram_token value in the YAML node tree.
func updateTelegramTokenInNode(node *yaml.Node, telegramToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "telegram_token" {
			// Update the value while preserving style.
			valueNode.Value = telegramToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
