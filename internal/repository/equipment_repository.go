package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepository struct {
	*base.Repository
}

func NewEquipmentRepository(pool *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{Repository: base.NewRepository(pool)}
}

// List всё оборудование
func (r *EquipmentRepository) List(ctx context.Context) ([]*model.Equipment, error) {
	rows, err := r.Query(ctx, `SELECT id, name, under_maintenance FROM equipment ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var items []*model.Equipment
	for rows.Next() {
		var e model.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.UnderMaintenance); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, &e)
	}

	return items, rows.Err()
}

// GetByID получает оборудование по ID
func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*model.Equipment, error) {
	var e model.Equipment
	err := r.QueryRow(ctx,
		`SELECT id, name, under_maintenance FROM equipment WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.UnderMaintenance)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &e, nil
}

// StartMaintenance ставит оборудование на обслуживание и открывает запись
func (r *EquipmentRepository) StartMaintenance(ctx context.Context, id int64) (*model.MaintenanceRecord, error) {
	if _, err := r.ExecAffected(ctx, `UPDATE equipment SET under_maintenance = TRUE WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("set under maintenance: %w", err)
	}

	rec := model.MaintenanceRecord{EquipmentID: id}
	err := r.QueryRow(ctx,
		`INSERT INTO equipment_maintenance (equipment_id) VALUES ($1) RETURNING id, started_at`, id,
	).Scan(&rec.ID, &rec.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("open maintenance record: %w", err)
	}
	return &rec, nil
}

// CompleteMaintenance снимает оборудование с обслуживания и закрывает открытую запись
func (r *EquipmentRepository) CompleteMaintenance(ctx context.Context, id int64) error {
	if _, err := r.ExecAffected(ctx, `UPDATE equipment SET under_maintenance = FALSE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("clear under maintenance: %w", err)
	}

	_, err := r.ExecAffected(ctx,
		`UPDATE equipment_maintenance SET completed_at = CURRENT_TIMESTAMP WHERE equipment_id = $1 AND completed_at IS NULL`,
		id)
	if err != nil {
		return fmt.Errorf("complete maintenance record: %w", err)
	}
	return nil
}

// History история обслуживания: сначала открытая запись, затем по дате завершения
func (r *EquipmentRepository) History(ctx context.Context, id int64) ([]*model.MaintenanceRecord, error) {
	query := `
		SELECT id, equipment_id, started_at, completed_at
		FROM equipment_maintenance
		WHERE equipment_id = $1
		ORDER BY completed_at DESC NULLS FIRST
	`

	rows, err := r.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get maintenance history: %w", err)
	}
	defer rows.Close()

	var records []*model.MaintenanceRecord
	for rows.Next() {
		var rec model.MaintenanceRecord
		if err := rows.Scan(&rec.ID, &rec.EquipmentID, &rec.StartedAt, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan maintenance record: %w", err)
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
