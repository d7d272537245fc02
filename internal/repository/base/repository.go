package base

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Psql построитель запросов с плейсхолдерами $1, $2 ...
var Psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Executor общий интерфейс пула и транзакции
type Executor interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type txKey struct{}

// Repository базовый репозиторий с общими методами
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый базовый репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Executor возвращает транзакцию из контекста, если она есть, иначе пул
func (r *Repository) Executor(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.pool
}

// QueryRow выполняет запрос и возвращает одну строку
func (r *Repository) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return r.Executor(ctx).QueryRow(ctx, query, args...)
}

// Query выполняет запрос и возвращает множество строк
func (r *Repository) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	return r.Executor(ctx).Query(ctx, query, args...)
}

// QueryBuilder выполняет запрос, собранный squirrel
func (r *Repository) QueryBuilder(ctx context.Context, b squirrel.Sqlizer) (pgx.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.Query(ctx, query, args...)
}

// ExecAffected выполняет команду и возвращает количество затронутых строк
func (r *Repository) ExecAffected(ctx context.Context, query string, args ...interface{}) (int64, error) {
	tag, err := r.Executor(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// IsNotFound проверяет является ли ошибка "строка не найдена"
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation нарушение уникального индекса (23505)
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ClockParam переводит время суток в параметр для колонки TIME
func ClockParam(c model.Clock) pgtype.Time {
	return pgtype.Time{Microseconds: int64(c) * 60 * 1_000_000, Valid: true}
}

// ClockFromPg переводит значение колонки TIME во время суток с точностью до минуты
func ClockFromPg(t pgtype.Time) model.Clock {
	return model.Clock(t.Microseconds / (60 * 1_000_000))
}

// ScanIntervals читает строки вида (start_time, end_time)
func ScanIntervals(rows pgx.Rows) ([]model.TimeInterval, error) {
	defer rows.Close()

	var intervals []model.TimeInterval
	for rows.Next() {
		var start, end pgtype.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("scan interval: %w", err)
		}
		intervals = append(intervals, model.NewTimeInterval(ClockFromPg(start), ClockFromPg(end)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intervals: %w", err)
	}
	return intervals, nil
}
