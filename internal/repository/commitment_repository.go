package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommitmentRepository отдаёт занятые интервалы тренеров, участников и залов.
// Реализует availability.Store.
type CommitmentRepository struct {
	*base.Repository
}

func NewCommitmentRepository(pool *pgxpool.Pool) *CommitmentRepository {
	return &CommitmentRepository{Repository: base.NewRepository(pool)}
}

func (r *CommitmentRepository) intervals(ctx context.Context, op string, b sq.SelectBuilder) ([]model.TimeInterval, error) {
	rows, err := r.QueryBuilder(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	intervals, err := base.ScanIntervals(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return intervals, nil
}

func (r *CommitmentRepository) TrainerWindows(ctx context.Context, trainerID int64, date time.Time) ([]model.TimeInterval, error) {
	return r.intervals(ctx, "get trainer windows", base.Psql.
		Select("start_time", "end_time").
		From("trainer_availability").
		Where(sq.Eq{"trainer_id": trainerID, "availability_date": date}).
		OrderBy("start_time"))
}

func (r *CommitmentRepository) TrainerClasses(ctx context.Context, trainerID int64, date time.Time) ([]model.TimeInterval, error) {
	return r.intervals(ctx, "get trainer classes", base.Psql.
		Select("start_time", "end_time").
		From("classes").
		Where(sq.Eq{"trainer_id": trainerID, "class_date": date}))
}

func (r *CommitmentRepository) TrainerSessions(ctx context.Context, trainerID int64, date time.Time) ([]model.TimeInterval, error) {
	return r.intervals(ctx, "get trainer sessions", base.Psql.
		Select("start_time", "end_time").
		From("personal_training_sessions").
		Where(sq.Eq{"trainer_id": trainerID, "session_date": date}))
}

func (r *CommitmentRepository) MemberClasses(ctx context.Context, memberID int64, date time.Time) ([]model.TimeInterval, error) {
	return r.intervals(ctx, "get member classes", base.Psql.
		Select("c.start_time", "c.end_time").
		From("member_classes mc").
		Join("classes c ON c.id = mc.class_id").
		Where(sq.Eq{"mc.member_id": memberID, "c.class_date": date}))
}

func (r *CommitmentRepository) MemberSessions(ctx context.Context, memberID int64, date time.Time) ([]model.TimeInterval, error) {
	return r.intervals(ctx, "get member sessions", base.Psql.
		Select("start_time", "end_time").
		From("personal_training_sessions").
		Where(sq.Eq{"member_id": memberID, "session_date": date}))
}

func (r *CommitmentRepository) RoomBookings(ctx context.Context, roomNumber int64, date time.Time) ([]model.TimeInterval, error) {
	return r.intervals(ctx, "get room bookings", base.Psql.
		Select("start_time", "end_time").
		From("room_bookings").
		Where(sq.Eq{"room_number": roomNumber, "booking_date": date}))
}

// InsertWindow сохраняет окно тренера
func (r *CommitmentRepository) InsertWindow(ctx context.Context, w *model.AvailabilityWindow) error {
	query := `
		INSERT INTO trainer_availability (trainer_id, availability_date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.QueryRow(ctx, query,
		w.TrainerID,
		w.Date,
		base.ClockParam(w.Interval.Start),
		base.ClockParam(w.Interval.End),
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert window: %w", err)
	}
	return nil
}

// ListWindows окна тренеров. trainerID и date необязательны
func (r *CommitmentRepository) ListWindows(ctx context.Context, trainerID *int64, date *time.Time) ([]*model.AvailabilityWindow, error) {
	b := base.Psql.
		Select("id", "trainer_id", "availability_date", "start_time", "end_time").
		From("trainer_availability").
		OrderBy("availability_date", "trainer_id", "start_time")
	if trainerID != nil {
		b = b.Where(sq.Eq{"trainer_id": *trainerID})
	}
	if date != nil {
		b = b.Where(sq.Eq{"availability_date": *date})
	}

	rows, err := r.QueryBuilder(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	defer rows.Close()

	var windows []*model.AvailabilityWindow
	for rows.Next() {
		var w model.AvailabilityWindow
		var start, end pgtype.Time
		if err := rows.Scan(&w.ID, &w.TrainerID, &w.Date, &start, &end); err != nil {
			return nil, fmt.Errorf("scan window: %w", err)
		}
		w.Interval = model.NewTimeInterval(base.ClockFromPg(start), base.ClockFromPg(end))
		windows = append(windows, &w)
	}

	return windows, rows.Err()
}

// DeleteWindow удаляет окно тренера. Возвращает false, если окно не найдено
func (r *CommitmentRepository) DeleteWindow(ctx context.Context, trainerID, windowID int64) (bool, error) {
	affected, err := r.ExecAffected(ctx,
		`DELETE FROM trainer_availability WHERE id = $1 AND trainer_id = $2`,
		windowID, trainerID)
	if err != nil {
		return false, fmt.Errorf("delete window: %w", err)
	}
	return affected > 0, nil
}
