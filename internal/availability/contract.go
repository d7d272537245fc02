package availability

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
)

// Store источник занятых интервалов. Возвращает все строки сущности за дату,
// фильтрация по пересечению выполняется движком.
type Store interface {
	TrainerWindows(ctx context.Context, trainerID int64, date time.Time) ([]model.TimeInterval, error)
	TrainerClasses(ctx context.Context, trainerID int64, date time.Time) ([]model.TimeInterval, error)
	TrainerSessions(ctx context.Context, trainerID int64, date time.Time) ([]model.TimeInterval, error)
	MemberClasses(ctx context.Context, memberID int64, date time.Time) ([]model.TimeInterval, error)
	MemberSessions(ctx context.Context, memberID int64, date time.Time) ([]model.TimeInterval, error)
	RoomBookings(ctx context.Context, roomNumber int64, date time.Time) ([]model.TimeInterval, error)
	InsertWindow(ctx context.Context, window *model.AvailabilityWindow) error
}

// Recorder учитывает результаты проверок доступности
type Recorder interface {
	AvailabilityCheck(entity, result string)
}

type nopRecorder struct{}

func (nopRecorder) AvailabilityCheck(string, string) {}
