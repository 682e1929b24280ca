// Package technician holds the staff members interventions are assigned to.
package technician

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type Technician struct {
	id        uint
	userID    uint
	team      string
	available bool
	createdAt time.Time
}

func NewTechnician(userID uint, team string, now time.Time) (*Technician, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Technician{
		userID:    userID,
		team:      strings.TrimSpace(team),
		available: true,
		createdAt: shared.StorageTime(now),
	}, nil
}

func ReconstructTechnician(id, userID uint, team string, available bool, createdAt time.Time) *Technician {
	return &Technician{id: id, userID: userID, team: team, available: available, createdAt: createdAt}
}

func (t *Technician) ID() uint             { return t.id }
func (t *Technician) UserID() uint         { return t.userID }
func (t *Technician) Team() string         { return t.team }
func (t *Technician) Available() bool      { return t.available }
func (t *Technician) CreatedAt() time.Time { return t.createdAt }

func (t *Technician) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("technician ID is already set")
	}
	t.id = id
	return nil
}

func (t *Technician) SetAvailable(available bool) {
	t.available = available
}

// Repository persists technicians. Get methods return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, t *Technician) error
	GetByID(ctx context.Context, id uint) (*Technician, error)
	// GetByIDForUpdate locks the row for the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Technician, error)
	GetByUserID(ctx context.Context, userID uint) (*Technician, error)
	List(ctx context.Context) ([]*Technician, error)
	Delete(ctx context.Context, id uint) error
}
