package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type ClassLister interface {
	Classes(ctx context.Context) ([]*model.Class, error)
}

type WindowLister interface {
	Windows(ctx context.Context, trainerID int64, date time.Time) ([]*model.AvailabilityWindow, error)
}

type TrainerChecker interface {
	CheckTrainer(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) error
}

type BookingLister interface {
	Bookings(ctx context.Context, roomNumber int64, date time.Time) ([]*model.RoomBooking, error)
}

// Handlers обработчики команд. Ничего не изменяют в базе
type Handlers struct {
	classes   ClassLister
	windows   WindowLister
	checker   TrainerChecker
	bookings  BookingLister
	validator *validate.Validator
	logger    *zap.Logger
}

func NewHandlers(
	classes ClassLister,
	windows WindowLister,
	checker TrainerChecker,
	bookings BookingLister,
	validator *validate.Validator,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		classes:   classes,
		windows:   windows,
		checker:   checker,
		bookings:  bookings,
		validator: validator,
		logger:    logger,
	}
}

const helpText = "📚 Commands:\n\n" +
	"/classes - all scheduled classes\n" +
	"/availability <trainer id> <YYYY-MM-DD> - trainer availability\n" +
	"/check <trainer id> <YYYY-MM-DD> <HH:MM> <HH:MM> - can the trainer take this slot\n" +
	"/rooms <room number> <YYYY-MM-DD> - room bookings\n" +
	"/help - this message"

// HandleCommand отвечает на любую зарегистрированную команду
func (h *Handlers) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	reply := h.Reply(ctx, update.Message.Text)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   reply,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}

// Reply строит ответ на текст команды
func (h *Handlers) Reply(ctx context.Context, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return helpText
	}
	// "/classes@club_bot" -> "/classes"
	cmd, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	var (
		reply string
		err   error
	)
	switch cmd {
	case "/start":
		reply = "👋 Welcome to the Health and Fitness Club bot!\n\n" + helpText
	case "/classes":
		reply, err = h.classesText(ctx)
	case "/availability":
		reply, err = h.availabilityText(ctx, args)
	case "/check":
		reply, err = h.checkText(ctx, args)
	case "/rooms":
		reply, err = h.roomsText(ctx, args)
	default:
		reply = helpText
	}

	if err != nil {
		if errors.Is(err, apperror.ErrStorage) {
			h.logger.Error("Command failed", zap.String("command", cmd), zap.Error(err))
		}
		return "❌ " + apperror.UserMessage(err)
	}
	return reply
}

func (h *Handlers) classesText(ctx context.Context) (string, error) {
	classes, err := h.classes.Classes(ctx)
	if err != nil {
		return "", err
	}
	if len(classes) == 0 {
		return "📭 No classes are scheduled.", nil
	}

	var sb strings.Builder
	sb.WriteString("📅 Classes:\n")
	for _, c := range classes {
		fmt.Fprintf(&sb, "\n#%d %s\n   %s %s, trainer #%d", c.ID, c.Name, c.Date.Format(model.DateFormat), c.Interval, c.TrainerID)
	}
	return sb.String(), nil
}

func (h *Handlers) availabilityText(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "Usage: /availability <trainer id> <YYYY-MM-DD>", nil
	}
	trainerID, date, err := h.idAndDate("trainer id", args[0], args[1])
	if err != nil {
		return "", err
	}

	windows, err := h.windows.Windows(ctx, trainerID, date)
	if err != nil {
		return "", err
	}
	if len(windows) == 0 {
		return fmt.Sprintf("📭 Trainer #%d has no availability on %s.", trainerID, args[1]), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🕒 Trainer #%d on %s:", trainerID, args[1])
	for _, w := range windows {
		fmt.Fprintf(&sb, "\n• %s", w.Interval)
	}
	return sb.String(), nil
}

func (h *Handlers) checkText(ctx context.Context, args []string) (string, error) {
	if len(args) != 4 {
		return "Usage: /check <trainer id> <YYYY-MM-DD> <HH:MM> <HH:MM>", nil
	}
	trainerID, date, err := h.idAndDate("trainer id", args[0], args[1])
	if err != nil {
		return "", err
	}
	iv, err := validate.Interval(args[2], args[3])
	if err != nil {
		return "", err
	}

	err = h.checker.CheckTrainer(ctx, trainerID, date, iv)
	switch {
	case err == nil:
		return fmt.Sprintf("✅ Trainer #%d is available on %s at %s.", trainerID, args[1], iv), nil
	case errors.Is(err, apperror.ErrConflict):
		return fmt.Sprintf("🚫 %s", err), nil
	default:
		return "", err
	}
}

func (h *Handlers) roomsText(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "Usage: /rooms <room number> <YYYY-MM-DD>", nil
	}
	room, date, err := h.idAndDate("room number", args[0], args[1])
	if err != nil {
		return "", err
	}

	bookings, err := h.bookings.Bookings(ctx, room, date)
	if err != nil {
		return "", err
	}
	if len(bookings) == 0 {
		return fmt.Sprintf("📭 Room %d is free all day on %s.", room, args[1]), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏠 Room %d on %s:", room, args[1])
	for _, bk := range bookings {
		fmt.Fprintf(&sb, "\n• %s (booking #%d)", bk.Interval, bk.ID)
	}
	return sb.String(), nil
}

func (h *Handlers) idAndDate(field, rawID, rawDate string) (int64, time.Time, error) {
	id, err := validate.ID(field, rawID)
	if err != nil {
		return 0, time.Time{}, err
	}
	date, err := h.validator.ScheduleDate(rawDate)
	if err != nil {
		return 0, time.Time{}, err
	}
	return id, date, nil
}
