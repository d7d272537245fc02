package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	*base.Repository
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{Repository: base.NewRepository(pool)}
}

var billColumns = []string{"bill_number", "member_id", "amount", "status", "reference", "status_updated_at"}

func scanBill(row pgx.Row) (*model.Bill, error) {
	var b model.Bill
	var status string
	var ref pgtype.UUID
	if err := row.Scan(&b.Number, &b.MemberID, &b.Amount, &status, &ref, &b.StatusUpdatedAt); err != nil {
		return nil, err
	}
	b.Status = model.BillStatus(status)
	if ref.Valid {
		id := uuid.UUID(ref.Bytes)
		b.Reference = &id
	}
	return &b, nil
}

// Create выставляет счёт
func (r *PaymentRepository) Create(ctx context.Context, b *model.Bill) error {
	err := r.QueryRow(ctx,
		`INSERT INTO payments (member_id, amount, status, status_updated_at) VALUES ($1, $2, $3, $4) RETURNING bill_number`,
		b.MemberID, b.Amount, string(b.Status), b.StatusUpdatedAt,
	).Scan(&b.Number)
	if err != nil {
		return fmt.Errorf("create bill: %w", err)
	}
	return nil
}

// GetByNumber получает счёт по номеру
func (r *PaymentRepository) GetByNumber(ctx context.Context, number int64) (*model.Bill, error) {
	query, args, err := base.Psql.Select(billColumns...).
		From("payments").
		Where(sq.Eq{"bill_number": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	b, err := scanBill(r.QueryRow(ctx, query, args...))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// List счета, необязательно отфильтрованные по статусу
func (r *PaymentRepository) List(ctx context.Context, status *model.BillStatus) ([]*model.Bill, error) {
	b := base.Psql.Select(billColumns...).
		From("payments").
		OrderBy("bill_number")
	if status != nil {
		b = b.Where(sq.Eq{"status": string(*status)})
	}

	rows, err := r.QueryBuilder(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var bills []*model.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, bill)
	}

	return bills, rows.Err()
}

// UpdateStatus переводит счёт в новый статус только из ожидаемого текущего
func (r *PaymentRepository) UpdateStatus(ctx context.Context, number int64, from, to model.BillStatus, ref *uuid.UUID, at time.Time) (bool, error) {
	b := base.Psql.Update("payments").
		Set("status", string(to)).
		Set("status_updated_at", at).
		Where(sq.Eq{"bill_number": number, "status": string(from)})
	if ref != nil {
		b = b.Set("reference", pgtype.UUID{Bytes: *ref, Valid: true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	affected, err := r.ExecAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update bill status: %w", err)
	}
	return affected > 0, nil
}
