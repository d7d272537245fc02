package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// BotController телеграм-бот только для чтения расписания клуба
type BotController struct {
	bot      *bot.Bot
	handlers *Handlers
	logger   *zap.Logger
}

func NewBotController(botInstance *bot.Bot, handlers *Handlers, logger *zap.Logger) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует обработчики команд и меню бота
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	for _, cmd := range []string{"/start", "/help", "/classes", "/availability", "/check", "/rooms"} {
		c.bot.RegisterHandler(bot.HandlerTypeMessageText, cmd, bot.MatchTypePrefix, c.handlers.HandleCommand)
	}

	return c.setCommands(ctx)
}

func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start"},
		{Command: "help", Description: "❓ Command reference"},
		{Command: "classes", Description: "📅 All classes"},
		{Command: "availability", Description: "🕒 Trainer availability on a date"},
		{Command: "check", Description: "✅ Is a trainer free at a given time"},
		{Command: "rooms", Description: "🏠 Room bookings on a date"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
