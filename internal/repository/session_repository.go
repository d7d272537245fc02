package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository персональные тренировки
type SessionRepository struct {
	*base.Repository
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет тренировку
func (r *SessionRepository) Create(ctx context.Context, s *model.PersonalTrainingSession) error {
	query := `
		INSERT INTO personal_training_sessions (member_id, trainer_id, session_date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.QueryRow(ctx, query,
		s.MemberID,
		s.TrainerID,
		s.Date,
		base.ClockParam(s.Interval.Start),
		base.ClockParam(s.Interval.End),
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// ByMember тренировки участника с именем тренера
func (r *SessionRepository) ByMember(ctx context.Context, memberID int64) ([]*model.PersonalTrainingSession, error) {
	query := `
		SELECT s.id, s.member_id, s.trainer_id, s.session_date, s.start_time, s.end_time,
		       t.first_name || ' ' || t.last_name
		FROM personal_training_sessions s
		JOIN trainers t ON t.id = s.trainer_id
		WHERE s.member_id = $1
		ORDER BY s.session_date, s.start_time
	`

	rows, err := r.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("get sessions by member: %w", err)
	}
	defer rows.Close()

	var sessions []*model.PersonalTrainingSession
	for rows.Next() {
		var s model.PersonalTrainingSession
		var start, end pgtype.Time
		err := rows.Scan(&s.ID, &s.MemberID, &s.TrainerID, &s.Date, &start, &end, &s.TrainerName)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Interval = model.NewTimeInterval(base.ClockFromPg(start), base.ClockFromPg(end))
		sessions = append(sessions, &s)
	}

	return sessions, rows.Err()
}

// Delete отменяет тренировку участника. Возвращает false, если её нет
func (r *SessionRepository) Delete(ctx context.Context, memberID, sessionID int64) (bool, error) {
	affected, err := r.ExecAffected(ctx,
		`DELETE FROM personal_training_sessions WHERE id = $1 AND member_id = $2`,
		sessionID, memberID)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return affected > 0, nil
}
