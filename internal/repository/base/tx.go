package base

import (
	"context"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager выполняет функцию в транзакции. Репозитории, получившие
// контекст из Do, работают внутри этой транзакции.
type TxManager struct {
	db beginner
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{db: pool}
}

// Do открывает транзакцию, если её ещё нет в контексте.
// Ошибка fn откатывает транзакцию.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return apperror.Storage("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Storage("commit transaction", err)
	}
	return nil
}
