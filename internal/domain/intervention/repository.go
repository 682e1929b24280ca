package intervention

import (
	"context"

	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
)

// Repository persists interventions. GetByID returns (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, i *Intervention) error
	// GetByIDForUpdate locks the row for the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Intervention, error)
	GetByID(ctx context.Context, id uint) (*Intervention, error)
	// Update writes i only if the stored version equals expectedVersion,
	// otherwise it returns ErrConcurrentModification.
	Update(ctx context.Context, i *Intervention, expectedVersion int) error
	List(ctx context.Context, filter Filter) ([]*Intervention, int64, error)
	CountActiveByEquipment(ctx context.Context, equipmentID uint) (int64, error)
	CountActiveByTechnician(ctx context.Context, technicianID uint) (int64, error)
}

// HistoryRepository is append-only: it has no update or delete.
type HistoryRepository interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	ListByIntervention(ctx context.Context, interventionID uint) ([]*HistoryEntry, error)
}

type Filter struct {
	Status       *vo.Status
	Type         *vo.InterventionType
	Priority     *vo.Priority
	Urgent       *bool
	TechnicianID *uint
	EquipmentID  *uint
	Page         int
	PageSize     int
}
