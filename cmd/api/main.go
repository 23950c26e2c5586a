// Command api runs the inquiry relay HTTP server.
//
// Startup order: config -> logger -> server container (delivery
// clients) -> services -> middlewares -> handlers -> router. The
// process then serves until SIGINT/SIGTERM and shuts down gracefully.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/himawari-kids/inquiry-api/internal/config"
	"github.com/himawari-kids/inquiry-api/internal/handler"
	"github.com/himawari-kids/inquiry-api/internal/logger"
	"github.com/himawari-kids/inquiry-api/internal/middleware"
	"github.com/himawari-kids/inquiry-api/internal/router"
	"github.com/himawari-kids/inquiry-api/internal/server"
	"github.com/himawari-kids/inquiry-api/internal/service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New logs fatally on load errors; this guards the
		// error-return path as well.
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv := server.New(cfg, log)
	services := service.NewService(srv)
	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// Block until the process is asked to stop.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
