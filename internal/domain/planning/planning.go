// Package planning models recurring maintenance schedules bound to equipment.
package planning

import (
	"fmt"
	"time"

	vo "github.com/mif-gmao/gmao/internal/domain/planning/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type Planning struct {
	id                uint
	equipmentID       uint
	frequency         vo.Frequency
	nextDueDate       time.Time
	lastGeneratedDate *time.Time
	remarks           string
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewPlanning(equipmentID uint, frequency vo.Frequency, nextDueDate time.Time, remarks string, now time.Time) (*Planning, error) {
	if equipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid planning frequency: %q", frequency)
	}
	if nextDueDate.IsZero() {
		return nil, fmt.Errorf("next due date is required")
	}
	now = shared.StorageTime(now)
	return &Planning{
		equipmentID: equipmentID,
		frequency:   frequency,
		nextDueDate: shared.StorageTime(nextDueDate),
		remarks:     remarks,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPlanning(
	id, equipmentID uint,
	frequency vo.Frequency,
	nextDueDate time.Time,
	lastGeneratedDate *time.Time,
	remarks string,
	version int,
	createdAt, updatedAt time.Time,
) (*Planning, error) {
	if id == 0 {
		return nil, fmt.Errorf("planning ID cannot be zero")
	}
	if !frequency.IsValid() {
		frequency = vo.FallbackFrequency
	}
	return &Planning{
		id:                id,
		equipmentID:       equipmentID,
		frequency:         frequency,
		nextDueDate:       nextDueDate,
		lastGeneratedDate: lastGeneratedDate,
		remarks:           remarks,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Planning) ID() uint                      { return p.id }
func (p *Planning) EquipmentID() uint             { return p.equipmentID }
func (p *Planning) Frequency() vo.Frequency       { return p.frequency }
func (p *Planning) NextDueDate() time.Time        { return p.nextDueDate }
func (p *Planning) LastGeneratedDate() *time.Time { return p.lastGeneratedDate }
func (p *Planning) Remarks() string               { return p.remarks }
func (p *Planning) Version() int                  { return p.version }
func (p *Planning) CreatedAt() time.Time          { return p.createdAt }
func (p *Planning) UpdatedAt() time.Time          { return p.updatedAt }

func (p *Planning) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("planning ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("planning ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsDue reports whether the next due date has been reached at now.
func (p *Planning) IsDue(now time.Time) bool {
	return !p.nextDueDate.After(now)
}

// Advance moves the schedule forward one period after an intervention was
// generated: lastGenerated takes the old next date, which then moves by the frequency.
func (p *Planning) Advance(now time.Time) error {
	if !p.IsDue(now) {
		return fmt.Errorf("%w: planning %d next due %s", ErrNotDue, p.id, p.nextDueDate.Format(time.RFC3339))
	}
	previous := p.nextDueDate
	p.lastGeneratedDate = &previous
	p.nextDueDate = p.frequency.Next(previous)
	p.touch(now)
	return nil
}

// Reschedule moves the next due date manually. The previous next date is kept
// as the last generated date.
func (p *Planning) Reschedule(nextDueDate time.Time, now time.Time) error {
	if nextDueDate.IsZero() {
		return fmt.Errorf("next due date is required")
	}
	previous := p.nextDueDate
	p.lastGeneratedDate = &previous
	p.nextDueDate = shared.StorageTime(nextDueDate)
	p.touch(now)
	return nil
}

// ChangeFrequency normalizes raw, falling back to monthly for unknown words.
func (p *Planning) ChangeFrequency(raw string, now time.Time) vo.Frequency {
	f := vo.NormalizeFrequency(raw)
	if f != p.frequency {
		p.frequency = f
		p.touch(now)
	}
	return f
}

func (p *Planning) UpdateRemarks(remarks string, now time.Time) {
	if remarks != p.remarks {
		p.remarks = remarks
		p.touch(now)
	}
}

func (p *Planning) touch(now time.Time) {
	p.updatedAt = shared.StorageTime(now)
	p.version++
}
