package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"go.uber.org/zap"
)

type TrainerService struct {
	engine   Availability
	windows  WindowStore
	members  MemberStore
	accounts AccountStore
	goals    GoalStore
	tx       Transactor
	logger   *zap.Logger
}

func NewTrainerService(
	engine Availability,
	windows WindowStore,
	members MemberStore,
	accounts AccountStore,
	goals GoalStore,
	tx Transactor,
	logger *zap.Logger,
) *TrainerService {
	return &TrainerService{
		engine:   engine,
		windows:  windows,
		members:  members,
		accounts: accounts,
		goals:    goals,
		tx:       tx,
		logger:   logger,
	}
}

// Windows окна тренера на дату по времени начала
func (s *TrainerService) Windows(ctx context.Context, trainerID int64, date time.Time) ([]*model.AvailabilityWindow, error) {
	windows, err := s.windows.ListWindows(ctx, &trainerID, &date)
	if err != nil {
		return nil, apperror.Storage("list windows", err)
	}
	return windows, nil
}

// SetAvailability добавляет окно, если оно не пересекается с уже заявленными
func (s *TrainerService) SetAvailability(ctx context.Context, trainerID int64, date time.Time, iv model.TimeInterval) (*model.AvailabilityWindow, error) {
	var window *model.AvailabilityWindow
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		trainer, err := s.accounts.GetTrainer(ctx, trainerID)
		if err != nil {
			return apperror.Storage("get trainer", err)
		}
		if trainer == nil {
			return apperror.NotFound("trainer", trainerID)
		}

		window, err = s.engine.RegisterAvailabilityWindow(ctx, trainerID, date, iv)
		return err
	})
	if err != nil {
		s.logger.Warn("Failed to set availability",
			zap.Int64("trainer_id", trainerID),
			zap.Stringer("interval", iv),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Availability set",
		zap.Int64("trainer_id", trainerID),
		zap.Int64("window_id", window.ID),
		zap.String("date", date.Format(model.DateFormat)),
		zap.Stringer("interval", iv))
	return window, nil
}

// RemoveWindow удаляет окно тренера
func (s *TrainerService) RemoveWindow(ctx context.Context, trainerID, windowID int64) error {
	ok, err := s.windows.DeleteWindow(ctx, trainerID, windowID)
	if err != nil {
		return apperror.Storage("delete window", err)
	}
	if !ok {
		return apperror.NotFound("availability window", windowID)
	}

	s.logger.Info("Availability window removed",
		zap.Int64("trainer_id", trainerID),
		zap.Int64("window_id", windowID))
	return nil
}

// SearchMembers профили участников с заданными именем и фамилией
func (s *TrainerService) SearchMembers(ctx context.Context, firstName, lastName string) ([]*model.MemberProfile, error) {
	members, err := s.members.FindByName(ctx, firstName, lastName)
	if err != nil {
		return nil, apperror.Storage("find members", err)
	}

	profiles := make([]*model.MemberProfile, 0, len(members))
	for _, m := range members {
		goals, err := s.goals.ByMember(ctx, m.ID, false)
		if err != nil {
			return nil, apperror.Storage("get member goals", err)
		}
		profiles = append(profiles, &model.MemberProfile{Member: m, Goals: goals})
	}
	return profiles, nil
}
