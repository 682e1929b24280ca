package usecases

import (
	"time"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
)

type EquipmentDTO struct {
	ID                      uint      `json:"id"`
	Name                    string    `json:"name"`
	Kind                    string    `json:"kind,omitempty"`
	Location                string    `json:"location,omitempty"`
	MaintenanceIntervalDays *int      `json:"maintenance_interval_days,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}

func toEquipmentDTO(e *equipment.Equipment) *EquipmentDTO {
	return &EquipmentDTO{
		ID:                      e.ID(),
		Name:                    e.Name(),
		Kind:                    e.Kind(),
		Location:                e.Location(),
		MaintenanceIntervalDays: e.MaintenanceIntervalDays(),
		CreatedAt:               e.CreatedAt(),
	}
}
