package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository"
	"github.com/google/uuid"
)

// Transactor выполняет fn в одной транзакции
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Availability проверки движка доступности, которые нужны сервисам
type Availability interface {
	CheckTrainer(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) error
	CheckMember(ctx context.Context, memberID int64, date time.Time, iv model.TimeInterval) error
	CheckRoom(ctx context.Context, roomNumber int64, date time.Time, iv model.TimeInterval) error
	IsTrainerAvailable(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) (bool, error)
	RegisterAvailabilityWindow(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) (*model.AvailabilityWindow, error)
}

// Recorder учитывает созданные брони и переходы счетов
type Recorder interface {
	Booking(kind model.CommitmentKind)
	BillTransition(to model.BillStatus)
}

type MemberStore interface {
	Create(ctx context.Context, m *model.Member) error
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	GetByCredentials(ctx context.Context, email, password string) (*model.Member, error)
	FindByName(ctx context.Context, firstName, lastName string) ([]*model.Member, error)
	UpdateField(ctx context.Context, id int64, field model.PersonalField, value string) error
	UpdateHealthMetrics(ctx context.Context, id int64, weight, bodyFat *float64) error
}

type AccountStore interface {
	GetByCredentials(ctx context.Context, t model.AccountType, email, password string) (*model.Account, error)
	GetTrainer(ctx context.Context, id int64) (*model.Account, error)
	Trainers(ctx context.Context) ([]*model.Account, error)
}

type GoalStore interface {
	Create(ctx context.Context, g *model.Goal) error
	GetByID(ctx context.Context, memberID, goalID int64) (*model.Goal, error)
	ByMember(ctx context.Context, memberID int64, achievedOnly bool) ([]*model.Goal, error)
	MarkAchieved(ctx context.Context, memberID, goalID int64, at time.Time) error
}

type RoutineStore interface {
	Exercises(ctx context.Context) ([]*model.Exercise, error)
	Create(ctx context.Context, routine *model.Routine) error
	ByMember(ctx context.Context, memberID int64) ([]*model.Routine, error)
}

type ClassStore interface {
	Create(ctx context.Context, c *model.Class) error
	GetByID(ctx context.Context, id int64) (*model.Class, error)
	List(ctx context.Context, f repository.ClassFilter) ([]*model.Class, error)
	Enroll(ctx context.Context, memberID, classID int64) (bool, error)
	Unenroll(ctx context.Context, memberID, classID int64) (bool, error)
	Delete(ctx context.Context, classID int64) (bool, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *model.PersonalTrainingSession) error
	ByMember(ctx context.Context, memberID int64) ([]*model.PersonalTrainingSession, error)
	Delete(ctx context.Context, memberID, sessionID int64) (bool, error)
}

type WindowStore interface {
	ListWindows(ctx context.Context, trainerID *int64, date *time.Time) ([]*model.AvailabilityWindow, error)
	DeleteWindow(ctx context.Context, trainerID, windowID int64) (bool, error)
}

type RoomStore interface {
	List(ctx context.Context) ([]*model.Room, error)
	GetByNumber(ctx context.Context, number int64) (*model.Room, error)
	Bookings(ctx context.Context, number int64, date time.Time) ([]*model.RoomBooking, error)
	CreateBooking(ctx context.Context, b *model.RoomBooking) error
	DeleteBooking(ctx context.Context, id int64) (bool, error)
}

type EquipmentStore interface {
	List(ctx context.Context) ([]*model.Equipment, error)
	GetByID(ctx context.Context, id int64) (*model.Equipment, error)
	StartMaintenance(ctx context.Context, id int64) (*model.MaintenanceRecord, error)
	CompleteMaintenance(ctx context.Context, id int64) error
	History(ctx context.Context, id int64) ([]*model.MaintenanceRecord, error)
}

type BillStore interface {
	Create(ctx context.Context, b *model.Bill) error
	GetByNumber(ctx context.Context, number int64) (*model.Bill, error)
	List(ctx context.Context, status *model.BillStatus) ([]*model.Bill, error)
	UpdateStatus(ctx context.Context, number int64, from, to model.BillStatus, ref *uuid.UUID, at time.Time) (bool, error)
}

// PaymentProcessor проводит оплату счёта и возвращает идентификатор платежа
type PaymentProcessor interface {
	Charge(ctx context.Context, bill *model.Bill) (uuid.UUID, error)
}

type nopRecorder struct{}

func (nopRecorder) Booking(model.CommitmentKind)    {}
func (nopRecorder) BillTransition(model.BillStatus) {}
