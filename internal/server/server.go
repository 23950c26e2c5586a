// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - outbound notifier (Telegram)
//   - confirmation email sender (Resend or simulated)
//   - http.Server
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/himawari-kids/inquiry-api/internal/config"
	"github.com/himawari-kids/inquiry-api/internal/lib/email"
	"github.com/himawari-kids/inquiry-api/internal/lib/telegram"
	"github.com/rs/zerolog"
)

// Notifier delivers a formatted notification text to the staff chat.
// Implemented by *telegram.Client; replaced with fakes in tests.
type Notifier interface {
	Notify(ctx context.Context, text string) telegram.DeliveryResult
}

// ConfirmationSender sends the acknowledgment email for an inquiry.
//
// This is the substitution point the design calls for: the simulated
// sender and the Resend client both satisfy it, and a future provider
// only has to implement this method.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, to, childName string) bool
}

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds the config, the logger,
// the outbound delivery clients, and an internal *http.Server used to
// listen and serve requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// Notifier relays formatted inquiries to the staff chat.
	Notifier Notifier

	// Confirmation sends the acknowledgment email to the submitter.
	Confirmation ConfirmationSender

	// httpServer is the standard library HTTP server instance.
	// It is configured in SetupHTTPServer and started in Start().
	httpServer *http.Server
}

// New constructs a Server and initializes its delivery clients.
//
// It does NOT start the HTTP server; that is done in SetupHTTPServer
// and Start. The confirmation sender is chosen by configuration: with
// a Resend API key present the real client is used, otherwise the
// simulated sender.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	notifier := telegram.NewClient(cfg.Telegram, logger)

	var confirmation ConfirmationSender
	if cfg.Email.ResendAPIKey != "" {
		confirmation = email.NewClient(cfg.Email, logger)
	} else {
		logger.Warn().Msg("no Resend API key configured, using simulated confirmation sender")
		confirmation = email.NewStubSender(logger)
	}

	return &Server{
		Config:       cfg,
		Logger:       logger,
		Notifier:     notifier,
		Confirmation: confirmation,
	}
}

// SetupHTTPServer configures the internal net/http server.
//
// The actual router is passed in as handler (echo.Echo satisfies
// http.Handler).
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// These timeouts protect against slow clients and resource
		// exhaustion. Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be
// called first, and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server: it stops accepting new
// connections and waits for inflight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
