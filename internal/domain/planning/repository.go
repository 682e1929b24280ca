package planning

import (
	"context"
	"time"
)

// Repository persists plannings. Get methods return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, p *Planning) error
	GetByID(ctx context.Context, id uint) (*Planning, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*Planning, error)
	// Update writes p only if the stored version equals expectedVersion.
	Update(ctx context.Context, p *Planning, expectedVersion int) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, equipmentID *uint) ([]*Planning, error)
	ListDue(ctx context.Context, now time.Time) ([]*Planning, error)
}
