package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const memberColumns = `id, first_name, last_name, email, password, date_of_birth, phone_number, weight_lbs, body_fat_percentage, created_at`

type MemberRepository struct {
	*base.Repository
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{Repository: base.NewRepository(pool)}
}

func scanMember(row pgx.Row) (*model.Member, error) {
	var m model.Member
	err := row.Scan(
		&m.ID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Password,
		&m.DateOfBirth,
		&m.PhoneNumber,
		&m.WeightLbs,
		&m.BodyFatPercentage,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create регистрирует нового участника
func (r *MemberRepository) Create(ctx context.Context, m *model.Member) error {
	query := `
		INSERT INTO members (first_name, last_name, email, password, date_of_birth, phone_number, weight_lbs, body_fat_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Password,
		m.DateOfBirth,
		m.PhoneNumber,
		m.WeightLbs,
		m.BodyFatPercentage,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create member: %w", err)
	}

	return nil
}

// GetByID получает участника по ID
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	m, err := scanMember(r.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by id: %w", err)
	}
	return m, nil
}

// GetByCredentials ищет участника по email без учёта регистра и паролю
func (r *MemberRepository) GetByCredentials(ctx context.Context, email, password string) (*model.Member, error) {
	m, err := scanMember(r.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE LOWER(email) = LOWER($1) AND password = $2`,
		email, password))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by credentials: %w", err)
	}
	return m, nil
}

// FindByName ищет участников по имени и фамилии без учёта регистра
func (r *MemberRepository) FindByName(ctx context.Context, firstName, lastName string) ([]*model.Member, error) {
	rows, err := r.Query(ctx,
		`SELECT `+memberColumns+` FROM members WHERE LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2) ORDER BY id`,
		firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("find members by name: %w", err)
	}
	defer rows.Close()

	var members []*model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// List возвращает всех участников
func (r *MemberRepository) List(ctx context.Context) ([]*model.Member, error) {
	rows, err := r.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []*model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// UpdateField обновляет одно поле профиля. Имя колонки берётся из
// фиксированного набора model.PersonalField.
func (r *MemberRepository) UpdateField(ctx context.Context, id int64, field model.PersonalField, value string) error {
	switch field {
	case model.FieldFirstName, model.FieldLastName, model.FieldEmail, model.FieldPassword, model.FieldPhone:
	default:
		return fmt.Errorf("update member: unknown field %q", field)
	}

	affected, err := r.ExecAffected(ctx,
		fmt.Sprintf(`UPDATE members SET %s = $1 WHERE id = $2`, field),
		value, id)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("update member %s: %w", field, err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// UpdateHealthMetrics обновляет вес и процент жира. nil не меняет значение
func (r *MemberRepository) UpdateHealthMetrics(ctx context.Context, id int64, weight, bodyFat *float64) error {
	query := `
		UPDATE members
		SET weight_lbs = COALESCE($1, weight_lbs),
		    body_fat_percentage = COALESCE($2, body_fat_percentage)
		WHERE id = $3
	`

	affected, err := r.ExecAffected(ctx, query, weight, bodyFat, id)
	if err != nil {
		return fmt.Errorf("update health metrics: %w", err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
