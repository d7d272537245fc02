package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository тренеры и сотрудники администрации
type AccountRepository struct {
	*base.Repository
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{Repository: base.NewRepository(pool)}
}

func accountTable(t model.AccountType) (string, error) {
	switch t {
	case model.AccountTrainer:
		return "trainers", nil
	case model.AccountStaff:
		return "staff", nil
	}
	return "", fmt.Errorf("account type %d has no accounts table", t)
}

// GetByCredentials ищет тренера или сотрудника по email без учёта регистра и паролю
func (r *AccountRepository) GetByCredentials(ctx context.Context, t model.AccountType, email, password string) (*model.Account, error) {
	table, err := accountTable(t)
	if err != nil {
		return nil, err
	}

	a := model.Account{Type: t}
	err = r.QueryRow(ctx,
		fmt.Sprintf(`SELECT id, first_name, last_name, email, password FROM %s WHERE LOWER(email) = LOWER($1) AND password = $2`, table),
		email, password,
	).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Password)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s by credentials: %w", t, err)
	}
	return &a, nil
}

// GetTrainer получает тренера по ID
func (r *AccountRepository) GetTrainer(ctx context.Context, id int64) (*model.Account, error) {
	a := model.Account{Type: model.AccountTrainer}
	err := r.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, password FROM trainers WHERE id = $1`, id,
	).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Password)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trainer by id: %w", err)
	}
	return &a, nil
}

// Trainers возвращает всех тренеров
func (r *AccountRepository) Trainers(ctx context.Context) ([]*model.Account, error) {
	rows, err := r.Query(ctx, `SELECT id, first_name, last_name, email, password FROM trainers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	defer rows.Close()

	var trainers []*model.Account
	for rows.Next() {
		a := model.Account{Type: model.AccountTrainer}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Password); err != nil {
			return nil, fmt.Errorf("scan trainer: %w", err)
		}
		trainers = append(trainers, &a)
	}

	return trainers, rows.Err()
}
