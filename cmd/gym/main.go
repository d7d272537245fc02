package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/app"
	"github.com/Freeeeeet/fitness_club/internal/config"
	"github.com/Freeeeeet/fitness_club/internal/console"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Лог в файл, чтобы не перемешивался с меню
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "gym.log"
	}
	logger := app.NewLogger(cfg.IsProduction(), logFile)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Close(shutdownCtx)
	}()

	svc := a.Services
	session := console.NewSession(os.Stdin, os.Stdout, console.Services{
		Members:   svc.Members,
		Schedule:  svc.Schedule,
		Trainers:  svc.Trainers,
		Classes:   svc.Classes,
		Rooms:     svc.Rooms,
		Equipment: svc.Equipment,
		Billing:   svc.Billing,
	}, validate.New(cfg.Rules), logger)

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Console session failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
