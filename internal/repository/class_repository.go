package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClassRepository struct {
	*base.Repository
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{Repository: base.NewRepository(pool)}
}

// ClassFilter фильтр выборки занятий, все поля необязательны
type ClassFilter struct {
	TrainerID *int64
	MemberID  *int64
	Date      *time.Time
}

func scanClass(row pgx.Row) (*model.Class, error) {
	var c model.Class
	var start, end pgtype.Time
	if err := row.Scan(&c.ID, &c.Name, &c.TrainerID, &c.Date, &start, &end); err != nil {
		return nil, err
	}
	c.Interval = model.NewTimeInterval(base.ClockFromPg(start), base.ClockFromPg(end))
	return &c, nil
}

// Create создаёт занятие
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	query := `
		INSERT INTO classes (name, trainer_id, class_date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.QueryRow(ctx, query,
		c.Name,
		c.TrainerID,
		c.Date,
		base.ClockParam(c.Interval.Start),
		base.ClockParam(c.Interval.End),
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// GetByID получает занятие по ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	c, err := scanClass(r.QueryRow(ctx,
		`SELECT id, name, trainer_id, class_date, start_time, end_time FROM classes WHERE id = $1`, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class by id: %w", err)
	}
	return c, nil
}

// List занятия по фильтру в хронологическом порядке
func (r *ClassRepository) List(ctx context.Context, f ClassFilter) ([]*model.Class, error) {
	b := base.Psql.
		Select("c.id", "c.name", "c.trainer_id", "c.class_date", "c.start_time", "c.end_time").
		From("classes c").
		OrderBy("c.class_date", "c.start_time", "c.id")
	if f.TrainerID != nil {
		b = b.Where(sq.Eq{"c.trainer_id": *f.TrainerID})
	}
	if f.Date != nil {
		b = b.Where(sq.Eq{"c.class_date": *f.Date})
	}
	if f.MemberID != nil {
		b = b.Join("member_classes mc ON mc.class_id = c.id").
			Where(sq.Eq{"mc.member_id": *f.MemberID})
	}

	rows, err := r.QueryBuilder(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, c)
	}

	return classes, rows.Err()
}

// Enroll записывает участника на занятие. Возвращает false, если он уже записан
func (r *ClassRepository) Enroll(ctx context.Context, memberID, classID int64) (bool, error) {
	affected, err := r.ExecAffected(ctx,
		`INSERT INTO member_classes (member_id, class_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		memberID, classID)
	if err != nil {
		return false, fmt.Errorf("enroll member: %w", err)
	}
	return affected > 0, nil
}

// Unenroll отписывает участника. Возвращает false, если записи не было
func (r *ClassRepository) Unenroll(ctx context.Context, memberID, classID int64) (bool, error) {
	affected, err := r.ExecAffected(ctx,
		`DELETE FROM member_classes WHERE member_id = $1 AND class_id = $2`,
		memberID, classID)
	if err != nil {
		return false, fmt.Errorf("unenroll member: %w", err)
	}
	return affected > 0, nil
}

// Delete удаляет занятие вместе с записями участников. Вызывать внутри транзакции
func (r *ClassRepository) Delete(ctx context.Context, classID int64) (bool, error) {
	if _, err := r.ExecAffected(ctx, `DELETE FROM member_classes WHERE class_id = $1`, classID); err != nil {
		return false, fmt.Errorf("delete class enrolments: %w", err)
	}

	affected, err := r.ExecAffected(ctx, `DELETE FROM classes WHERE id = $1`, classID)
	if err != nil {
		return false, fmt.Errorf("delete class: %w", err)
	}
	return affected > 0, nil
}
