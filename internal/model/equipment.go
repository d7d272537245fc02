package model

import "time"

type Equipment struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	UnderMaintenance bool   `json:"under_maintenance"`
}

// MaintenanceRecord запись обслуживания. Открытая запись имеет CompletedAt == nil
type MaintenanceRecord struct {
	ID          int64      `json:"id"`
	EquipmentID int64      `json:"equipment_id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
