package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository"
	"go.uber.org/zap"
)

// ScheduleService занятия и персональные тренировки со стороны участника
type ScheduleService struct {
	engine   Availability
	classes  ClassStore
	sessions SessionStore
	members  MemberStore
	accounts AccountStore
	tx       Transactor
	recorder Recorder
	logger   *zap.Logger
}

func NewScheduleService(
	engine Availability,
	classes ClassStore,
	sessions SessionStore,
	members MemberStore,
	accounts AccountStore,
	tx Transactor,
	recorder Recorder,
	logger *zap.Logger,
) *ScheduleService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ScheduleService{
		engine:   engine,
		classes:  classes,
		sessions: sessions,
		members:  members,
		accounts: accounts,
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

// Classes все занятия клуба
func (s *ScheduleService) Classes(ctx context.Context) ([]*model.Class, error) {
	classes, err := s.classes.List(ctx, repository.ClassFilter{})
	if err != nil {
		return nil, apperror.Storage("list classes", err)
	}
	return classes, nil
}

// RegisteredClasses занятия, на которые записан участник
func (s *ScheduleService) RegisteredClasses(ctx context.Context, memberID int64) ([]*model.Class, error) {
	classes, err := s.classes.List(ctx, repository.ClassFilter{MemberID: &memberID})
	if err != nil {
		return nil, apperror.Storage("list registered classes", err)
	}
	return classes, nil
}

// Sessions персональные тренировки участника
func (s *ScheduleService) Sessions(ctx context.Context, memberID int64) ([]*model.PersonalTrainingSession, error) {
	sessions, err := s.sessions.ByMember(ctx, memberID)
	if err != nil {
		return nil, apperror.Storage("list sessions", err)
	}
	return sessions, nil
}

// JoinClass записывает участника на занятие, если у него нет пересечений
func (s *ScheduleService) JoinClass(ctx context.Context, memberID, classID int64) (*model.Class, error) {
	var class *model.Class

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.requireMember(ctx, memberID); err != nil {
			return err
		}

		var err error
		class, err = s.classes.GetByID(ctx, classID)
		if err != nil {
			return apperror.Storage("get class", err)
		}
		if class == nil {
			return apperror.NotFound("class", classID)
		}

		if err := s.engine.CheckMember(ctx, memberID, class.Date, class.Interval); err != nil {
			return err
		}

		enrolled, err := s.classes.Enroll(ctx, memberID, classID)
		if err != nil {
			return apperror.Storage("enroll member", err)
		}
		if !enrolled {
			return apperror.Conflict(string(model.CommitmentClass), 1,
				"member #%d is already registered for class #%d", memberID, classID)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to join class",
			zap.Int64("member_id", memberID),
			zap.Int64("class_id", classID),
			zap.Error(err))
		return nil, err
	}

	s.recorder.Booking(model.CommitmentClass)
	s.logger.Info("Member joined class",
		zap.Int64("member_id", memberID),
		zap.Int64("class_id", classID))
	return class, nil
}

// LeaveClass отменяет запись участника на занятие
func (s *ScheduleService) LeaveClass(ctx context.Context, memberID, classID int64) error {
	ok, err := s.classes.Unenroll(ctx, memberID, classID)
	if err != nil {
		return apperror.Storage("unenroll member", err)
	}
	if !ok {
		return apperror.NotFound("class registration", classID)
	}

	s.logger.Info("Member left class",
		zap.Int64("member_id", memberID),
		zap.Int64("class_id", classID))
	return nil
}

// AvailableTrainers тренеры, которые могут провести тренировку в этот интервал.
// Сначала проверяется, что свободен сам участник.
func (s *ScheduleService) AvailableTrainers(ctx context.Context, memberID int64, date time.Time, iv model.TimeInterval) ([]*model.Account, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}
	if err := s.engine.CheckMember(ctx, memberID, date, iv); err != nil {
		return nil, err
	}

	trainers, err := s.accounts.Trainers(ctx)
	if err != nil {
		return nil, apperror.Storage("list trainers", err)
	}

	var available []*model.Account
	for _, t := range trainers {
		ok, err := s.engine.IsTrainerAvailable(ctx, t.ID, date, iv)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, t)
		}
	}

	s.logger.Debug("Available trainers",
		zap.Int64("member_id", memberID),
		zap.Stringer("interval", iv),
		zap.Int("count", len(available)))
	return available, nil
}

// BookSession бронирует персональную тренировку. Проверки и вставка
// выполняются в одной транзакции.
func (s *ScheduleService) BookSession(ctx context.Context, memberID, trainerID int64, date time.Time, iv model.TimeInterval) (*model.PersonalTrainingSession, error) {
	session := &model.PersonalTrainingSession{
		MemberID:  memberID,
		TrainerID: trainerID,
		Date:      date,
		Interval:  iv,
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.requireMember(ctx, memberID); err != nil {
			return err
		}

		trainer, err := s.accounts.GetTrainer(ctx, trainerID)
		if err != nil {
			return apperror.Storage("get trainer", err)
		}
		if trainer == nil {
			return apperror.NotFound("trainer", trainerID)
		}
		session.TrainerName = trainer.FullName()

		if err := s.engine.CheckMember(ctx, memberID, date, iv); err != nil {
			return err
		}
		if err := s.engine.CheckTrainer(ctx, trainerID, date, iv); err != nil {
			return err
		}

		if err := s.sessions.Create(ctx, session); err != nil {
			return apperror.Storage("create session", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to book session",
			zap.Int64("member_id", memberID),
			zap.Int64("trainer_id", trainerID),
			zap.Stringer("interval", iv),
			zap.Error(err))
		return nil, err
	}

	s.recorder.Booking(model.CommitmentSession)
	s.logger.Info("Session booked",
		zap.Int64("session_id", session.ID),
		zap.Int64("member_id", memberID),
		zap.Int64("trainer_id", trainerID))
	return session, nil
}

// CancelSession отменяет тренировку участника
func (s *ScheduleService) CancelSession(ctx context.Context, memberID, sessionID int64) error {
	ok, err := s.sessions.Delete(ctx, memberID, sessionID)
	if err != nil {
		return apperror.Storage("delete session", err)
	}
	if !ok {
		return apperror.NotFound("personal training session", sessionID)
	}

	s.logger.Info("Session cancelled",
		zap.Int64("member_id", memberID),
		zap.Int64("session_id", sessionID))
	return nil
}

func (s *ScheduleService) requireMember(ctx context.Context, memberID int64) error {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return apperror.Storage("get member", err)
	}
	if member == nil {
		return apperror.NotFound("member", memberID)
	}
	return nil
}
