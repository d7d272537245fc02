package service

import (
	"context"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"go.uber.org/zap"
)

type EquipmentService struct {
	equipment EquipmentStore
	tx        Transactor
	logger    *zap.Logger
}

func NewEquipmentService(equipment EquipmentStore, tx Transactor, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{
		equipment: equipment,
		tx:        tx,
		logger:    logger,
	}
}

func (s *EquipmentService) Equipment(ctx context.Context) ([]*model.Equipment, error) {
	items, err := s.equipment.List(ctx)
	if err != nil {
		return nil, apperror.Storage("list equipment", err)
	}
	return items, nil
}

// History история обслуживания, открытая запись первой
func (s *EquipmentService) History(ctx context.Context, equipmentID int64) ([]*model.MaintenanceRecord, error) {
	if _, err := s.get(ctx, equipmentID); err != nil {
		return nil, err
	}

	records, err := s.equipment.History(ctx, equipmentID)
	if err != nil {
		return nil, apperror.Storage("get maintenance history", err)
	}
	return records, nil
}

// ToggleMaintenance ставит оборудование на обслуживание или снимает с него.
// Возвращает новое состояние.
func (s *EquipmentService) ToggleMaintenance(ctx context.Context, equipmentID int64) (*model.Equipment, error) {
	var item *model.Equipment

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.get(ctx, equipmentID)
		if err != nil {
			return err
		}

		if item.UnderMaintenance {
			if err := s.equipment.CompleteMaintenance(ctx, equipmentID); err != nil {
				return apperror.Storage("complete maintenance", err)
			}
		} else {
			if _, err := s.equipment.StartMaintenance(ctx, equipmentID); err != nil {
				return apperror.Storage("start maintenance", err)
			}
		}
		item.UnderMaintenance = !item.UnderMaintenance
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to toggle maintenance",
			zap.Int64("equipment_id", equipmentID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Maintenance toggled",
		zap.Int64("equipment_id", equipmentID),
		zap.Bool("under_maintenance", item.UnderMaintenance))
	return item, nil
}

func (s *EquipmentService) get(ctx context.Context, equipmentID int64) (*model.Equipment, error) {
	item, err := s.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, apperror.Storage("get equipment", err)
	}
	if item == nil {
		return nil, apperror.NotFound("equipment", equipmentID)
	}
	return item, nil
}
