// Package equipment holds the industrial assets interventions are performed on.
package equipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type Equipment struct {
	id                      uint
	name                    string
	kind                    string
	location                string
	maintenanceIntervalDays *int
	createdAt               time.Time
}

func NewEquipment(name, kind, location string, maintenanceIntervalDays *int, now time.Time) (*Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("equipment name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("equipment name exceeds maximum length of 150 characters")
	}
	if maintenanceIntervalDays != nil && *maintenanceIntervalDays <= 0 {
		return nil, fmt.Errorf("maintenance interval must be positive")
	}
	return &Equipment{
		name:                    name,
		kind:                    strings.TrimSpace(kind),
		location:                strings.TrimSpace(location),
		maintenanceIntervalDays: maintenanceIntervalDays,
		createdAt:               shared.StorageTime(now),
	}, nil
}

func ReconstructEquipment(id uint, name, kind, location string, maintenanceIntervalDays *int, createdAt time.Time) *Equipment {
	return &Equipment{
		id:                      id,
		name:                    name,
		kind:                    kind,
		location:                location,
		maintenanceIntervalDays: maintenanceIntervalDays,
		createdAt:               createdAt,
	}
}

func (e *Equipment) ID() uint                      { return e.id }
func (e *Equipment) Name() string                  { return e.name }
func (e *Equipment) Kind() string                  { return e.kind }
func (e *Equipment) Location() string              { return e.location }
func (e *Equipment) MaintenanceIntervalDays() *int { return e.maintenanceIntervalDays }
func (e *Equipment) CreatedAt() time.Time          { return e.createdAt }

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	e.id = id
	return nil
}

// Repository persists equipment. Get methods return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, id uint) (*Equipment, error)
	// GetByIDForUpdate locks the row for the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Equipment, error)
	GetByName(ctx context.Context, name string) (*Equipment, error)
	List(ctx context.Context) ([]*Equipment, error)
	Delete(ctx context.Context, id uint) error
}
