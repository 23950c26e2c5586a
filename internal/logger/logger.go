// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logging: a human-friendly console
// writer during development and plain JSON everywhere else.
package logger

import (
	"os"
	"strings"

	"github.com/himawari-kids/inquiry-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application's main logger from config.
//
// Behavior:
//   - development env -> colorized console output on stderr
//   - anything else   -> JSON lines on stderr (log shippers want JSON)
//
// Each entry carries a timestamp and the service/env fields so logs
// from multiple deployments can be told apart.
func New(cfg *config.Config) *zerolog.Logger {
	var logger zerolog.Logger

	if strings.EqualFold(cfg.Primary.Env, "development") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.With().
		Timestamp().
		Str("service", "inquiry-api").
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}
