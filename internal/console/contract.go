package console

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
)

type MemberService interface {
	Register(ctx context.Context, m *model.Member) error
	Login(ctx context.Context, t model.AccountType, email, password string) (*model.Account, error)
	Member(ctx context.Context, memberID int64) (*model.Member, error)
	UpdatePersonalInfo(ctx context.Context, memberID int64, field model.PersonalField, value string) error
	UpdateHealthMetrics(ctx context.Context, memberID int64, weight, bodyFat *float64) error
	Goals(ctx context.Context, memberID int64) ([]*model.Goal, error)
	AddGoal(ctx context.Context, memberID int64, name, description string) (*model.Goal, error)
	MarkGoalAchieved(ctx context.Context, memberID, goalID int64) error
	Dashboard(ctx context.Context, memberID int64) (*model.Dashboard, error)
	Exercises(ctx context.Context) ([]*model.Exercise, error)
	CreateRoutine(ctx context.Context, memberID int64, name, description string, exercises []model.RoutineExercise) (*model.Routine, error)
}

type ScheduleService interface {
	Classes(ctx context.Context) ([]*model.Class, error)
	RegisteredClasses(ctx context.Context, memberID int64) ([]*model.Class, error)
	Sessions(ctx context.Context, memberID int64) ([]*model.PersonalTrainingSession, error)
	JoinClass(ctx context.Context, memberID, classID int64) (*model.Class, error)
	LeaveClass(ctx context.Context, memberID, classID int64) error
	AvailableTrainers(ctx context.Context, memberID int64, date time.Time, iv model.TimeInterval) ([]*model.Account, error)
	BookSession(ctx context.Context, memberID, trainerID int64, date time.Time, iv model.TimeInterval) (*model.PersonalTrainingSession, error)
	CancelSession(ctx context.Context, memberID, sessionID int64) error
}

type TrainerService interface {
	Windows(ctx context.Context, trainerID int64, date time.Time) ([]*model.AvailabilityWindow, error)
	SetAvailability(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) (*model.AvailabilityWindow, error)
	RemoveWindow(ctx context.Context, trainerID, windowID int64) error
	SearchMembers(ctx context.Context, firstName, lastName string) ([]*model.MemberProfile, error)
}

type ClassService interface {
	TrainerWindows(ctx context.Context) ([]*model.AvailabilityWindow, error)
	CreateClass(ctx context.Context, name string, trainerID int64, date time.Time, iv model.TimeInterval) (*model.Class, error)
	DeleteClass(ctx context.Context, classID int64) error
}

type RoomService interface {
	Rooms(ctx context.Context) ([]*model.Room, error)
	Bookings(ctx context.Context, roomNumber int64, date time.Time) ([]*model.RoomBooking, error)
	BookRoom(ctx context.Context, staffID, roomNumber int64, date time.Time, iv model.TimeInterval) (*model.RoomBooking, error)
	RemoveBooking(ctx context.Context, bookingID int64) error
}

type EquipmentService interface {
	Equipment(ctx context.Context) ([]*model.Equipment, error)
	History(ctx context.Context, equipmentID int64) ([]*model.MaintenanceRecord, error)
	ToggleMaintenance(ctx context.Context, equipmentID int64) (*model.Equipment, error)
}

type BillingService interface {
	Bills(ctx context.Context, status *model.BillStatus) ([]*model.Bill, error)
	CreateBill(ctx context.Context, memberID int64, amount float64) (*model.Bill, error)
	CancelBill(ctx context.Context, number int64) (*model.Bill, error)
	PayBill(ctx context.Context, number int64) (*model.Bill, error)
	RefundBill(ctx context.Context, number int64) (*model.Bill, error)
}

// Services сервисы, которыми пользуется консоль
type Services struct {
	Members   MemberService
	Schedule  ScheduleService
	Trainers  TrainerService
	Classes   ClassService
	Rooms     RoomService
	Equipment EquipmentService
	Billing   BillingService
}
