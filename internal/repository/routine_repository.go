package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoutineRepository struct {
	*base.Repository
}

func NewRoutineRepository(pool *pgxpool.Pool) *RoutineRepository {
	return &RoutineRepository{Repository: base.NewRepository(pool)}
}

// Exercises каталог упражнений
func (r *RoutineRepository) Exercises(ctx context.Context) ([]*model.Exercise, error) {
	rows, err := r.Query(ctx, `SELECT id, name, description FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Description); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, &e)
	}

	return exercises, rows.Err()
}

// Create сохраняет программу и её упражнения. Вызывать внутри транзакции
func (r *RoutineRepository) Create(ctx context.Context, routine *model.Routine) error {
	err := r.QueryRow(ctx,
		`INSERT INTO routines (member_id, name, description) VALUES ($1, $2, $3) RETURNING id`,
		routine.MemberID, routine.Name, routine.Description,
	).Scan(&routine.ID)
	if err != nil {
		return fmt.Errorf("create routine: %w", err)
	}

	for _, e := range routine.Exercises {
		_, err := r.ExecAffected(ctx,
			`INSERT INTO routine_exercises (routine_id, exercise_id, num_sets) VALUES ($1, $2, $3)`,
			routine.ID, e.ExerciseID, e.Sets)
		if err != nil {
			return fmt.Errorf("assign exercise %d to routine: %w", e.ExerciseID, err)
		}
	}

	return nil
}

// ByMember программы участника вместе с упражнениями в порядке добавления
func (r *RoutineRepository) ByMember(ctx context.Context, memberID int64) ([]*model.Routine, error) {
	rows, err := r.Query(ctx,
		`SELECT id, member_id, name, description FROM routines WHERE member_id = $1 ORDER BY id`,
		memberID)
	if err != nil {
		return nil, fmt.Errorf("get routines by member: %w", err)
	}

	var routines []*model.Routine
	for rows.Next() {
		var rt model.Routine
		if err := rows.Scan(&rt.ID, &rt.MemberID, &rt.Name, &rt.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		routines = append(routines, &rt)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routines: %w", err)
	}

	for _, rt := range routines {
		exercises, err := r.routineExercises(ctx, rt.ID)
		if err != nil {
			return nil, err
		}
		rt.Exercises = exercises
	}

	return routines, nil
}

func (r *RoutineRepository) routineExercises(ctx context.Context, routineID int64) ([]model.RoutineExercise, error) {
	query := `
		SELECT e.id, e.name, re.num_sets
		FROM routine_exercises re
		JOIN exercises e ON e.id = re.exercise_id
		WHERE re.routine_id = $1
		ORDER BY re.id
	`

	rows, err := r.Query(ctx, query, routineID)
	if err != nil {
		return nil, fmt.Errorf("get routine exercises: %w", err)
	}
	defer rows.Close()

	var exercises []model.RoutineExercise
	for rows.Next() {
		var e model.RoutineExercise
		if err := rows.Scan(&e.ExerciseID, &e.Name, &e.Sets); err != nil {
			return nil, fmt.Errorf("scan routine exercise: %w", err)
		}
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}
