package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/app"
	"github.com/Freeeeeet/fitness_club/internal/config"
	"github.com/Freeeeeet/fitness_club/internal/controller"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required but not set")
	}

	logger := app.NewLogger(cfg.IsProduction(), cfg.LogFile)
	defer logger.Sync()

	logger.Sugar().Infow("Starting fitness club bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to start", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Close(shutdownCtx)
	}()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	handlers := controller.NewHandlers(
		a.Services.Schedule,
		a.Services.Trainers,
		a.Engine,
		a.Services.Rooms,
		validate.New(cfg.Rules),
		logger.Named("bot"),
	)
	botController := controller.NewBotController(b, handlers, logger)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	botController.Start(ctx)
	logger.Info("Bot stopped")
}
