// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate the resulting config so the app fails fast on bad values.
//   - Fall back to placeholders for optional delivery credentials,
//     with a startup warning instead of a hard failure.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Placeholder values used when delivery credentials are not configured.
// The server still boots (and logs a warning) so local development does
// not require live credentials; delivery attempts will simply fail and
// be logged, which the pipeline already tolerates.
const (
	PlaceholderBotToken = "YOUR_BOT_TOKEN_HERE"
	PlaceholderChatID   = "YOUR_CHAT_ID_HERE"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are used by go-playground/validator to
// enforce that the config is populated after defaults are applied.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Telegram TelegramConfig `koanf:"telegram" validate:"required"`
	Email    EmailConfig    `koanf:"email"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// TelegramConfig contains the Bot API credentials and call settings
// used to relay inquiries to the staff chat.
type TelegramConfig struct {
	BotToken string `koanf:"bot_token" validate:"required"`
	ChatID   string `koanf:"chat_id" validate:"required"`

	// APIBaseURL is overridable for tests; production uses the default.
	APIBaseURL string `koanf:"api_base_url" validate:"required,url"`

	// TimeoutSeconds bounds the outbound sendMessage call.
	TimeoutSeconds int `koanf:"timeout_seconds" validate:"required,gte=1"`
}

// EmailConfig contains settings for the confirmation email sender.
//
// ResendAPIKey is optional: when empty, the application uses the
// simulated confirmation sender instead of the Resend client.
type EmailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	FromName     string `koanf:"from_name"`
	FromAddress  string `koanf:"from_address"`
}

// New loads configuration from environment variables, unmarshals it
// into Config, applies defaults, and validates the result.
//
// Env vars use the INQUIRY_ prefix with "__" as the nesting delimiter:
//
//	INQUIRY_SERVER__PORT          -> server.port
//	INQUIRY_TELEGRAM__BOT_TOKEN   -> telegram.bot_token
//
// Missing Telegram credentials and the listen port fall back to
// placeholders/defaults with a warning; everything else that is
// required fails fast.
func New() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("INQUIRY_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "INQUIRY_")), "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	applyDefaults(mainConfig, &logger)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	return mainConfig, nil
}

// applyDefaults fills unset fields, warning where the absence likely
// matters in a deployed environment.
func applyDefaults(cfg *Config, logger *zerolog.Logger) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "development"
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "3000"
		logger.Warn().Msg("INQUIRY_SERVER__PORT not set, defaulting to 3000")
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Telegram.BotToken == "" {
		cfg.Telegram.BotToken = PlaceholderBotToken
		logger.Warn().Msg("INQUIRY_TELEGRAM__BOT_TOKEN not set, notifications will fail")
	}
	if cfg.Telegram.ChatID == "" {
		cfg.Telegram.ChatID = PlaceholderChatID
		logger.Warn().Msg("INQUIRY_TELEGRAM__CHAT_ID not set, notifications will fail")
	}
	if cfg.Telegram.APIBaseURL == "" {
		cfg.Telegram.APIBaseURL = "https://api.telegram.org"
	}
	if cfg.Telegram.TimeoutSeconds == 0 {
		cfg.Telegram.TimeoutSeconds = 10
	}

	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Himawari Kids Garden"
	}
	if cfg.Email.FromAddress == "" {
		cfg.Email.FromAddress = "onboarding@resend.dev"
	}
}
