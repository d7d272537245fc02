package availability

import (
	"context"
	"errors"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"go.uber.org/zap"
)

const (
	entityTrainer = "trainer"
	entityMember  = "member"
	entityRoom    = "room"
	entityWindow  = "window"
)

// Engine проверяет, свободна ли сущность в заданный интервал
type Engine struct {
	store    Store
	recorder Recorder
	logger   *zap.Logger
}

func NewEngine(store Store, recorder Recorder, logger *zap.Logger) *Engine {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Engine{
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
}

// CheckTrainer возвращает nil, если тренер доступен.
// Интервал должен целиком лежать в одном окне тренера и не пересекаться
// с его занятиями и персональными тренировками. Проверки выполняются по порядку,
// первая неудачная возвращает ошибку с причиной.
func (e *Engine) CheckTrainer(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) error {
	return e.record(entityTrainer, trainerID, iv, e.checkTrainer(ctx, trainerID, date, iv))
}

// CheckMember возвращает nil, если у участника нет занятий и тренировок в этот интервал
func (e *Engine) CheckMember(ctx context.Context, memberID int64, date time.Time, iv model.TimeInterval) error {
	return e.record(entityMember, memberID, iv, e.checkMember(ctx, memberID, date, iv))
}

// CheckRoom возвращает nil, если зал не забронирован в этот интервал
func (e *Engine) CheckRoom(ctx context.Context, roomNumber int64, date time.Time, iv model.TimeInterval) error {
	return e.record(entityRoom, roomNumber, iv, e.checkRoom(ctx, roomNumber, date, iv))
}

func (e *Engine) checkTrainer(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) error {
	if !iv.Valid() {
		return invalidInterval()
	}

	windows, err := e.store.TrainerWindows(ctx, trainerID, date)
	if err != nil {
		return apperror.Storage("get trainer windows", err)
	}
	if !anyContains(windows, iv) {
		return &NoWindowError{TrainerID: trainerID, Interval: iv}
	}

	classes, err := e.store.TrainerClasses(ctx, trainerID, date)
	if err != nil {
		return apperror.Storage("get trainer classes", err)
	}
	if n := CountOverlaps(classes, iv); n > 0 {
		return apperror.Conflict(string(model.CommitmentClass), n,
			"this is overlapping with trainer #%d's classes", trainerID)
	}

	sessions, err := e.store.TrainerSessions(ctx, trainerID, date)
	if err != nil {
		return apperror.Storage("get trainer sessions", err)
	}
	if n := CountOverlaps(sessions, iv); n > 0 {
		return apperror.Conflict(string(model.CommitmentSession), n,
			"this is overlapping with trainer #%d's personal training sessions", trainerID)
	}

	return nil
}

func (e *Engine) checkMember(ctx context.Context, memberID int64, date time.Time, iv model.TimeInterval) error {
	if !iv.Valid() {
		return invalidInterval()
	}

	classes, err := e.store.MemberClasses(ctx, memberID, date)
	if err != nil {
		return apperror.Storage("get member classes", err)
	}
	if n := CountOverlaps(classes, iv); n > 0 {
		return apperror.Conflict(string(model.CommitmentClass), n,
			"this is overlapping with classes that member #%d is taking", memberID)
	}

	sessions, err := e.store.MemberSessions(ctx, memberID, date)
	if err != nil {
		return apperror.Storage("get member sessions", err)
	}
	if n := CountOverlaps(sessions, iv); n > 0 {
		return apperror.Conflict(string(model.CommitmentSession), n,
			"this is overlapping with personal training sessions that member #%d is taking", memberID)
	}

	return nil
}

func (e *Engine) checkRoom(ctx context.Context, roomNumber int64, date time.Time, iv model.TimeInterval) error {
	if !iv.Valid() {
		return invalidInterval()
	}

	bookings, err := e.store.RoomBookings(ctx, roomNumber, date)
	if err != nil {
		return apperror.Storage("get room bookings", err)
	}
	if n := CountOverlaps(bookings, iv); n > 0 {
		return apperror.Conflict(string(model.CommitmentRoomBooking), n,
			"room #%d is already booked at this time", roomNumber)
	}

	return nil
}

func (e *Engine) IsTrainerAvailable(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) (bool, error) {
	return verdict(e.CheckTrainer(ctx, trainerID, date, iv))
}

func (e *Engine) IsMemberAvailable(ctx context.Context, memberID int64, date time.Time, iv model.TimeInterval) (bool, error) {
	return verdict(e.CheckMember(ctx, memberID, date, iv))
}

func (e *Engine) IsRoomFree(ctx context.Context, roomNumber int64, date time.Time, iv model.TimeInterval) (bool, error) {
	return verdict(e.CheckRoom(ctx, roomNumber, date, iv))
}

// RegisterAvailabilityWindow сохраняет окно тренера, если оно не пересекается
// ни с одним из уже заявленных окон на эту дату. В отличие от проверки
// бронирований, здесь отклоняется любое пересечение.
func (e *Engine) RegisterAvailabilityWindow(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) (*model.AvailabilityWindow, error) {
	if !iv.Valid() {
		return nil, invalidInterval()
	}

	windows, err := e.store.TrainerWindows(ctx, trainerID, date)
	if err != nil {
		return nil, apperror.Storage("get trainer windows", err)
	}
	if n := CountOverlaps(windows, iv); n > 0 {
		e.recorder.AvailabilityCheck(entityWindow, "conflict")
		return nil, apperror.Conflict(string(model.CommitmentWindow), n,
			"this availability overlaps with an existing availability of trainer #%d", trainerID)
	}

	window := &model.AvailabilityWindow{
		TrainerID: trainerID,
		Date:      date,
		Interval:  iv,
	}
	if err := e.store.InsertWindow(ctx, window); err != nil {
		return nil, apperror.Storage("insert trainer window", err)
	}
	e.recorder.AvailabilityCheck(entityWindow, "available")

	e.logger.Debug("Availability window registered",
		zap.Int64("trainer_id", trainerID),
		zap.Time("date", date),
		zap.Stringer("interval", iv))

	return window, nil
}

// record учитывает результат проверки в метриках и возвращает err без изменений
func (e *Engine) record(entity string, id int64, iv model.TimeInterval, err error) error {
	switch {
	case err == nil:
		e.recorder.AvailabilityCheck(entity, "available")
	case errors.Is(err, apperror.ErrConflict):
		e.recorder.AvailabilityCheck(entity, "conflict")
		e.logger.Debug("Not available",
			zap.String("entity", entity),
			zap.Int64("id", id),
			zap.Stringer("interval", iv),
			zap.String("reason", err.Error()))
	default:
		e.recorder.AvailabilityCheck(entity, "error")
	}
	return err
}

// verdict сводит результат проверки к bool: конфликт - это false без ошибки,
// ошибки хранилища и валидации возвращаются вызывающему
func verdict(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperror.ErrConflict):
		return false, nil
	default:
		return false, err
	}
}
