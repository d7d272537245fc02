package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"go.uber.org/zap"
)

type MemberService struct {
	members  MemberStore
	accounts AccountStore
	goals    GoalStore
	routines RoutineStore
	tx       Transactor
	logger   *zap.Logger
	now      func() time.Time
}

func NewMemberService(
	members MemberStore,
	accounts AccountStore,
	goals GoalStore,
	routines RoutineStore,
	tx Transactor,
	logger *zap.Logger,
) *MemberService {
	return &MemberService{
		members:  members,
		accounts: accounts,
		goals:    goals,
		routines: routines,
		tx:       tx,
		logger:   logger,
		now:      time.Now,
	}
}

// Register регистрирует нового участника. Поля уже прошли валидацию формата,
// здесь проверяются email и пароль, которые сервис принимает и из других мест.
func (s *MemberService) Register(ctx context.Context, m *model.Member) error {
	email, err := validate.Email(m.Email)
	if err != nil {
		return err
	}
	if _, err := validate.Password(m.Password); err != nil {
		return err
	}
	m.Email = email

	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			s.logger.Warn("Email already registered", zap.String("email", m.Email))
			return apperror.Conflict("member", 1, "a member with email %s already exists", m.Email)
		}
		s.logger.Error("Failed to register member", zap.Error(err))
		return apperror.Storage("register member", err)
	}

	s.logger.Info("Member registered",
		zap.Int64("member_id", m.ID),
		zap.String("email", m.Email))
	return nil
}

// Login ищет аккаунт заданного типа. Email сравнивается без учёта регистра,
// пароль посимвольно.
func (s *MemberService) Login(ctx context.Context, t model.AccountType, email, password string) (*model.Account, error) {
	email = strings.TrimSpace(email)

	if t == model.AccountMember {
		m, err := s.members.GetByCredentials(ctx, email, password)
		if err != nil {
			s.logger.Error("Failed to look up member", zap.Error(err))
			return nil, apperror.Storage("login member", err)
		}
		if m == nil {
			return nil, apperror.NotFound(t.String(), email)
		}
		return &model.Account{
			ID:        m.ID,
			Type:      model.AccountMember,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
		}, nil
	}

	acc, err := s.accounts.GetByCredentials(ctx, t, email, password)
	if err != nil {
		s.logger.Error("Failed to look up account",
			zap.Stringer("type", t),
			zap.Error(err))
		return nil, apperror.Storage("login "+t.String(), err)
	}
	if acc == nil {
		return nil, apperror.NotFound(t.String(), email)
	}

	s.logger.Info("Logged in",
		zap.Stringer("type", t),
		zap.Int64("id", acc.ID))
	return acc, nil
}

// Member получает участника по ID
func (s *MemberService) Member(ctx context.Context, memberID int64) (*model.Member, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, apperror.Storage("get member", err)
	}
	if m == nil {
		return nil, apperror.NotFound("member", memberID)
	}
	return m, nil
}

// UpdatePersonalInfo меняет одно поле профиля после проверки значения
func (s *MemberService) UpdatePersonalInfo(ctx context.Context, memberID int64, field model.PersonalField, value string) error {
	var err error
	switch field {
	case model.FieldFirstName:
		value, err = validate.Name("first name", value)
	case model.FieldLastName:
		value, err = validate.Name("last name", value)
	case model.FieldEmail:
		value, err = validate.Email(value)
	case model.FieldPassword:
		value, err = validate.Password(value)
	case model.FieldPhone:
		value, err = validate.Phone(value)
	default:
		return apperror.Validation("field", "Unknown field.")
	}
	if err != nil {
		return err
	}

	if err := s.members.UpdateField(ctx, memberID, field, value); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return apperror.Conflict("member", 1, "a member with email %s already exists", value)
		case errors.Is(err, repository.ErrMemberNotFound):
			return apperror.NotFound("member", memberID)
		}
		s.logger.Error("Failed to update member",
			zap.Int64("member_id", memberID),
			zap.String("field", string(field)),
			zap.Error(err))
		return apperror.Storage("update member", err)
	}

	s.logger.Info("Personal info updated",
		zap.Int64("member_id", memberID),
		zap.String("field", string(field)))
	return nil
}

// UpdateHealthMetrics обновляет вес и процент жира, nil оставляет прежнее значение
func (s *MemberService) UpdateHealthMetrics(ctx context.Context, memberID int64, weight, bodyFat *float64) error {
	if err := s.members.UpdateHealthMetrics(ctx, memberID, weight, bodyFat); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return apperror.NotFound("member", memberID)
		}
		s.logger.Error("Failed to update health metrics",
			zap.Int64("member_id", memberID),
			zap.Error(err))
		return apperror.Storage("update health metrics", err)
	}
	return nil
}

// Goals все цели участника
func (s *MemberService) Goals(ctx context.Context, memberID int64) ([]*model.Goal, error) {
	goals, err := s.goals.ByMember(ctx, memberID, false)
	if err != nil {
		return nil, apperror.Storage("get goals", err)
	}
	return goals, nil
}

func (s *MemberService) AddGoal(ctx context.Context, memberID int64, name, description string) (*model.Goal, error) {
	name, err := validate.Name("goal name", name)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		MemberID:    memberID,
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		s.logger.Error("Failed to create goal",
			zap.Int64("member_id", memberID),
			zap.Error(err))
		return nil, apperror.Storage("create goal", err)
	}

	s.logger.Info("Goal added",
		zap.Int64("member_id", memberID),
		zap.Int64("goal_id", goal.ID))
	return goal, nil
}

// MarkGoalAchieved отмечает цель участника достигнутой
func (s *MemberService) MarkGoalAchieved(ctx context.Context, memberID, goalID int64) error {
	goal, err := s.goals.GetByID(ctx, memberID, goalID)
	if err != nil {
		return apperror.Storage("get goal", err)
	}
	if goal == nil {
		return apperror.NotFound("goal", goalID)
	}
	if goal.Achieved() {
		return apperror.Conflict("goal", 0, "goal #%d is already achieved", goalID)
	}

	if err := s.goals.MarkAchieved(ctx, memberID, goalID, s.now()); err != nil {
		s.logger.Error("Failed to mark goal achieved",
			zap.Int64("goal_id", goalID),
			zap.Error(err))
		return apperror.Storage("mark goal achieved", err)
	}

	s.logger.Info("Goal achieved",
		zap.Int64("member_id", memberID),
		zap.Int64("goal_id", goalID))
	return nil
}

// Dashboard показатели здоровья, достигнутые цели и программы тренировок
func (s *MemberService) Dashboard(ctx context.Context, memberID int64) (*model.Dashboard, error) {
	m, err := s.Member(ctx, memberID)
	if err != nil {
		return nil, err
	}

	achieved, err := s.goals.ByMember(ctx, memberID, true)
	if err != nil {
		return nil, apperror.Storage("get achievements", err)
	}

	routines, err := s.routines.ByMember(ctx, memberID)
	if err != nil {
		return nil, apperror.Storage("get routines", err)
	}

	return &model.Dashboard{
		Member:       m,
		Achievements: achieved,
		Routines:     routines,
	}, nil
}

// Exercises каталог упражнений
func (s *MemberService) Exercises(ctx context.Context) ([]*model.Exercise, error) {
	exercises, err := s.routines.Exercises(ctx)
	if err != nil {
		return nil, apperror.Storage("get exercises", err)
	}
	return exercises, nil
}

// CreateRoutine сохраняет программу тренировок вместе с упражнениями в одной транзакции
func (s *MemberService) CreateRoutine(ctx context.Context, memberID int64, name, description string, exercises []model.RoutineExercise) (*model.Routine, error) {
	name, err := validate.Name("routine name", name)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, apperror.Validation("exercises", "A routine needs at least one exercise.")
	}

	catalogue, err := s.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[int64]string, len(catalogue))
	for _, e := range catalogue {
		known[e.ID] = e.Name
	}
	for i, e := range exercises {
		exName, ok := known[e.ExerciseID]
		if !ok {
			return nil, apperror.NotFound("exercise", e.ExerciseID)
		}
		if e.Sets <= 0 {
			return nil, apperror.Validation("sets", "The number of sets must be a positive whole number.")
		}
		exercises[i].Name = exName
	}

	routine := &model.Routine{
		MemberID:    memberID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Exercises:   exercises,
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		return s.routines.Create(ctx, routine)
	})
	if err != nil {
		s.logger.Error("Failed to create routine",
			zap.Int64("member_id", memberID),
			zap.Error(err))
		return nil, apperror.Storage("create routine", err)
	}

	s.logger.Info("Routine created",
		zap.Int64("member_id", memberID),
		zap.Int64("routine_id", routine.ID),
		zap.Int("exercises", len(exercises)))
	return routine, nil
}
