package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"go.uber.org/zap"
)

// ClassService управление занятиями со стороны администрации
type ClassService struct {
	engine   Availability
	classes  ClassStore
	windows  WindowStore
	accounts AccountStore
	tx       Transactor
	recorder Recorder
	logger   *zap.Logger
}

func NewClassService(
	engine Availability,
	classes ClassStore,
	windows WindowStore,
	accounts AccountStore,
	tx Transactor,
	recorder Recorder,
	logger *zap.Logger,
) *ClassService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ClassService{
		engine:   engine,
		classes:  classes,
		windows:  windows,
		accounts: accounts,
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

// TrainerWindows все заявленные окна тренеров
func (s *ClassService) TrainerWindows(ctx context.Context) ([]*model.AvailabilityWindow, error) {
	windows, err := s.windows.ListWindows(ctx, nil, nil)
	if err != nil {
		return nil, apperror.Storage("list windows", err)
	}
	return windows, nil
}

// CreateClass создаёт занятие, если тренер доступен в этот интервал
func (s *ClassService) CreateClass(ctx context.Context, name string, trainerID int64, date time.Time, iv model.TimeInterval) (*model.Class, error) {
	name, err := validate.Name("class name", name)
	if err != nil {
		return nil, err
	}

	class := &model.Class{
		Name:      name,
		TrainerID: trainerID,
		Date:      date,
		Interval:  iv,
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		trainer, err := s.accounts.GetTrainer(ctx, trainerID)
		if err != nil {
			return apperror.Storage("get trainer", err)
		}
		if trainer == nil {
			return apperror.NotFound("trainer", trainerID)
		}

		if err := s.engine.CheckTrainer(ctx, trainerID, date, iv); err != nil {
			return err
		}

		if err := s.classes.Create(ctx, class); err != nil {
			return apperror.Storage("create class", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to create class",
			zap.String("name", name),
			zap.Int64("trainer_id", trainerID),
			zap.Stringer("interval", iv),
			zap.Error(err))
		return nil, err
	}

	s.recorder.Booking(model.CommitmentClass)
	s.logger.Info("Class created",
		zap.Int64("class_id", class.ID),
		zap.Int64("trainer_id", trainerID))
	return class, nil
}

// DeleteClass удаляет занятие вместе с записями участников
func (s *ClassService) DeleteClass(ctx context.Context, classID int64) error {
	var deleted bool
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.classes.Delete(ctx, classID)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to delete class",
			zap.Int64("class_id", classID),
			zap.Error(err))
		return apperror.Storage("delete class", err)
	}
	if !deleted {
		return apperror.NotFound("class", classID)
	}

	s.logger.Info("Class deleted", zap.Int64("class_id", classID))
	return nil
}
