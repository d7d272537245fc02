package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/config"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubReader struct {
	classes  []*model.Class
	windows  []*model.AvailabilityWindow
	bookings []*model.RoomBooking
	checkErr error
	err      error
}

func (s *stubReader) Classes(context.Context) ([]*model.Class, error) { return s.classes, s.err }

func (s *stubReader) Windows(context.Context, int64, time.Time) ([]*model.AvailabilityWindow, error) {
	return s.windows, s.err
}

func (s *stubReader) CheckTrainer(context.Context, int64, time.Time, model.TimeInterval) error {
	return s.checkErr
}

func (s *stubReader) Bookings(context.Context, int64, time.Time) ([]*model.RoomBooking, error) {
	return s.bookings, s.err
}

func newHandlers(r *stubReader) *Handlers {
	return NewHandlers(r, r, r, r, validate.New(config.DefaultRules()), zap.NewNop())
}

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func interval(sh, eh int) model.TimeInterval {
	return model.NewTimeInterval(model.NewClock(sh, 0), model.NewClock(eh, 0))
}

func TestReplyHelp(t *testing.T) {
	h := newHandlers(&stubReader{})

	assert.Contains(t, h.Reply(context.Background(), "/start"), "Welcome")
	assert.Equal(t, helpText, h.Reply(context.Background(), "/help"))
	assert.Equal(t, helpText, h.Reply(context.Background(), "/unknown"))
}

func TestReplyClasses(t *testing.T) {
	h := newHandlers(&stubReader{classes: []*model.Class{
		{ID: 3, Name: "Yoga", TrainerID: 7, Date: day, Interval: interval(9, 10)},
	}})

	reply := h.Reply(context.Background(), "/classes@club_bot")
	assert.Contains(t, reply, "#3 Yoga")
	assert.Contains(t, reply, "2024-03-01 09:00-10:00, trainer #7")

	assert.Contains(t, newHandlers(&stubReader{}).Reply(context.Background(), "/classes"), "No classes")
}

func TestReplyAvailability(t *testing.T) {
	h := newHandlers(&stubReader{windows: []*model.AvailabilityWindow{
		{ID: 1, TrainerID: 7, Date: day, Interval: interval(9, 12)},
	}})
	ctx := context.Background()

	assert.Contains(t, h.Reply(ctx, "/availability 7 2024-03-01"), "• 09:00-12:00")
	assert.Contains(t, h.Reply(ctx, "/availability 7"), "Usage:")
	assert.Contains(t, h.Reply(ctx, "/availability x 2024-03-01"), "must be a positive whole number")
}

func TestReplyCheck(t *testing.T) {
	ctx := context.Background()

	h := newHandlers(&stubReader{})
	assert.Contains(t, h.Reply(ctx, "/check 7 2024-03-01 10:00 11:00"), "✅ Trainer #7 is available")
	assert.Contains(t, h.Reply(ctx, "/check 7 2024-03-01 11:00 10:00"), "end time is after the start time")

	h = newHandlers(&stubReader{checkErr: apperror.Conflict(string(model.CommitmentSession), 1, "busy")})
	assert.Contains(t, h.Reply(ctx, "/check 7 2024-03-01 10:30 11:30"), "🚫 busy (1 conflicting personal training session)")

	h = newHandlers(&stubReader{checkErr: apperror.Storage("get trainer windows", errors.New("timeout"))})
	reply := h.Reply(ctx, "/check 7 2024-03-01 10:00 11:00")
	assert.Contains(t, reply, "❌")
	assert.NotContains(t, reply, "timeout")
}

func TestReplyRooms(t *testing.T) {
	h := newHandlers(&stubReader{bookings: []*model.RoomBooking{
		{ID: 4, RoomNumber: 101, Date: day, Interval: interval(13, 14)},
	}})

	assert.Contains(t, h.Reply(context.Background(), "/rooms 101 2024-03-01"), "• 13:00-14:00 (booking #4)")
	assert.Contains(t, newHandlers(&stubReader{}).Reply(context.Background(), "/rooms 101 2024-03-01"), "free all day")
}
