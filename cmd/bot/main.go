package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"imagestorebot/cmd/app"
	"imagestorebot/internal/config"
	handlers "imagestorebot/internal/handler"
	"imagestorebot/internal/logger"
	"imagestorebot/internal/middleware"
	"imagestorebot/internal/telegram"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// setting up config
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := telegram.Connect(cfg, logg)
	if err != nil {
		logg.Fatal("failed to start telegram bot", zap.Error(err))
	}
	gateway := telegram.NewGateway(bot)

	db, services := app.App(ctx, cfg, logg, gateway)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, gateway, cfg, logg)

	// ops endpoints, disabled with HTTP_PORT=0
	var server *http.Server
	if cfg.HTTPPort != 0 {
		server = &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler: middleware.Chain(
				handlers.NewOpsRouter(handler, db),
				middleware.RecoveryMiddleware(logg),
				middleware.LoggingMiddleware(logg),
			),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			logg.Info("ops server started", zap.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logg.Error("ops server failed", zap.Error(err))
			}
		}()
	}

	poller := telegram.NewPoller(bot, handler, int(cfg.Telegram.PollTimeout/time.Second), cfg.Telegram.Workers, logg)
	if err := poller.Run(ctx); err != nil {
		logg.Error("polling stopped with error", zap.Error(err))
	}

	logg.Info("shutting down")

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Warn("ops server shutdown failed", zap.Error(err))
		}
	}
}
