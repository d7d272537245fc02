package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalRepository struct {
	*base.Repository
}

func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{Repository: base.NewRepository(pool)}
}

// Create добавляет цель участнику
func (r *GoalRepository) Create(ctx context.Context, g *model.Goal) error {
	err := r.QueryRow(ctx,
		`INSERT INTO goals (member_id, name, description) VALUES ($1, $2, $3) RETURNING id`,
		g.MemberID, g.Name, g.Description,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// GetByID получает цель участника. Цель другого участника не возвращается
func (r *GoalRepository) GetByID(ctx context.Context, memberID, goalID int64) (*model.Goal, error) {
	var g model.Goal
	err := r.QueryRow(ctx,
		`SELECT id, member_id, name, description, achieved_at FROM goals WHERE id = $1 AND member_id = $2`,
		goalID, memberID,
	).Scan(&g.ID, &g.MemberID, &g.Name, &g.Description, &g.AchievedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goal by id: %w", err)
	}
	return &g, nil
}

// ByMember возвращает цели участника. achievedOnly - только достигнутые
func (r *GoalRepository) ByMember(ctx context.Context, memberID int64, achievedOnly bool) ([]*model.Goal, error) {
	query := `SELECT id, member_id, name, description, achieved_at FROM goals WHERE member_id = $1`
	if achievedOnly {
		query += ` AND achieved_at IS NOT NULL`
	}
	query += ` ORDER BY id`

	rows, err := r.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("get goals by member: %w", err)
	}
	defer rows.Close()

	var goals []*model.Goal
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.MemberID, &g.Name, &g.Description, &g.AchievedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, &g)
	}

	return goals, rows.Err()
}

// MarkAchieved отмечает цель достигнутой
func (r *GoalRepository) MarkAchieved(ctx context.Context, memberID, goalID int64, at time.Time) error {
	affected, err := r.ExecAffected(ctx,
		`UPDATE goals SET achieved_at = $1 WHERE id = $2 AND member_id = $3 AND achieved_at IS NULL`,
		at, goalID, memberID)
	if err != nil {
		return fmt.Errorf("mark goal achieved: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal not found or already achieved")
	}
	return nil
}
