// Package intervention holds the maintenance work aggregate and its lifecycle rules.
package intervention

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/shared"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Intervention is a unit of maintenance work. Status, closure timestamp and every
// other field are only changed through its methods, which enforce that closed
// records accept only archiving and archived records never change.
type Intervention struct {
	id           uint
	title        string
	description  string
	kind         vo.InterventionType
	status       vo.Status
	priority     vo.Priority
	urgent       bool
	dueDate      *time.Time
	closedAt     *time.Time
	technicianID *uint
	equipmentID  *uint
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	events       []Event
}

// NewInterventionParams carries the creation attributes.
type NewInterventionParams struct {
	Title        string
	Description  string
	Type         vo.InterventionType
	Priority     vo.Priority
	Urgent       bool
	DueDate      *time.Time
	TechnicianID *uint
	EquipmentID  *uint
	// InitialStatus defaults to open. Any other value must be reachable from open.
	InitialStatus vo.Status
}

func NewIntervention(p NewInterventionParams, now time.Time) (*Intervention, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(p.Description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid intervention type: %q", p.Type)
	}
	priority := p.Priority
	if priority == "" {
		priority = vo.PriorityNormal
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %q", p.Priority)
	}
	if p.TechnicianID != nil && *p.TechnicianID == 0 {
		return nil, fmt.Errorf("technician ID cannot be zero")
	}
	if p.EquipmentID != nil && *p.EquipmentID == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}

	status := p.InitialStatus
	if status == "" {
		status = vo.StatusOpen
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid intervention status: %q", status)
	}
	if status != vo.StatusOpen && !vo.StatusOpen.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot create an intervention as %s", ErrInvalidTransition, status)
	}

	now = shared.StorageTime(now)
	var dueDate *time.Time
	if p.DueDate != nil {
		d := shared.StorageTime(*p.DueDate)
		dueDate = &d
	}
	i := &Intervention{
		title:        title,
		description:  p.Description,
		kind:         p.Type,
		status:       status,
		priority:     priority,
		urgent:       p.Urgent,
		dueDate:      dueDate,
		technicianID: p.TechnicianID,
		equipmentID:  p.EquipmentID,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}
	if status.IsFinished() {
		closedAt := now
		i.closedAt = &closedAt
	}
	return i, nil
}

// ReconstructIntervention rebuilds an intervention from storage.
func ReconstructIntervention(
	id uint,
	title, description string,
	kind vo.InterventionType,
	status vo.Status,
	priority vo.Priority,
	urgent bool,
	dueDate, closedAt *time.Time,
	technicianID, equipmentID *uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Intervention, error) {
	if id == 0 {
		return nil, fmt.Errorf("intervention ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid intervention type: %q", kind)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid intervention status: %q", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %q", priority)
	}
	if status.IsFinished() != (closedAt != nil) {
		return nil, fmt.Errorf("intervention %d: closure timestamp inconsistent with status %s", id, status)
	}

	return &Intervention{
		id:           id,
		title:        title,
		description:  description,
		kind:         kind,
		status:       status,
		priority:     priority,
		urgent:       urgent,
		dueDate:      dueDate,
		closedAt:     closedAt,
		technicianID: technicianID,
		equipmentID:  equipmentID,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (i *Intervention) ID() uint                  { return i.id }
func (i *Intervention) Title() string             { return i.title }
func (i *Intervention) Description() string       { return i.description }
func (i *Intervention) Type() vo.InterventionType { return i.kind }
func (i *Intervention) Status() vo.Status         { return i.status }
func (i *Intervention) Priority() vo.Priority     { return i.priority }
func (i *Intervention) Urgent() bool              { return i.urgent }
func (i *Intervention) DueDate() *time.Time       { return i.dueDate }
func (i *Intervention) ClosedAt() *time.Time      { return i.closedAt }
func (i *Intervention) TechnicianID() *uint       { return i.technicianID }
func (i *Intervention) EquipmentID() *uint        { return i.equipmentID }
func (i *Intervention) Version() int              { return i.version }
func (i *Intervention) CreatedAt() time.Time      { return i.createdAt }
func (i *Intervention) UpdatedAt() time.Time      { return i.updatedAt }

// IsLocked reports whether the record is closed or archived.
func (i *Intervention) IsLocked() bool {
	return i.status.IsFinished()
}

func (i *Intervention) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("intervention ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("intervention ID cannot be zero")
	}
	i.id = id
	return nil
}

// ChangeStatus applies a requested status. Rules are evaluated in order:
// archived is terminal, closed only accepts archived, re-applying the current
// status is a no-op, and anything outside the transition table is rejected.
// changed is false for the no-op case.
func (i *Intervention) ChangeStatus(requested vo.Status, actorID uint, now time.Time) (changed bool, err error) {
	if !requested.IsValid() {
		return false, fmt.Errorf("invalid intervention status: %q", requested)
	}

	switch {
	case i.status.IsArchived():
		return false, fmt.Errorf("%w: intervention %d is archived", ErrStateLocked, i.id)
	case i.status.IsClosed() && requested != vo.StatusArchived:
		return false, fmt.Errorf("%w: intervention %d is closed and can only be archived", ErrStateLocked, i.id)
	case requested == i.status:
		return false, nil
	case !i.status.CanTransitionTo(requested):
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.status, requested)
	}

	from := i.status
	now = shared.StorageTime(now)
	i.status = requested
	if requested.IsClosed() && i.closedAt == nil {
		closedAt := now
		i.closedAt = &closedAt
	}
	i.updatedAt = now
	i.version++

	i.record(NewStatusChangedEvent(i, from, actorID, now))
	return true, nil
}

// AssignTechnician sets the technician. Locked records reject assignment.
// changed is false when the same technician is already assigned.
func (i *Intervention) AssignTechnician(technicianID, actorID uint, now time.Time) (changed bool, err error) {
	if technicianID == 0 {
		return false, fmt.Errorf("technician ID cannot be zero")
	}
	if i.IsLocked() {
		return false, fmt.Errorf("%w: intervention %d is %s", ErrStateLocked, i.id, i.status)
	}
	if i.technicianID != nil && *i.technicianID == technicianID {
		return false, nil
	}

	now = shared.StorageTime(now)
	i.technicianID = &technicianID
	i.updatedAt = now
	i.version++

	i.record(NewAssignedEvent(i, actorID, now))
	return true, nil
}

// MarkCreated records the creation event once the intervention has an ID.
func (i *Intervention) MarkCreated(actorID uint) {
	i.record(NewCreatedEvent(i, actorID, i.createdAt))
}

func (i *Intervention) record(e Event) {
	i.events = append(i.events, e)
}

// PullEvents returns and clears the events recorded since the last call.
func (i *Intervention) PullEvents() []Event {
	events := i.events
	i.events = nil
	return events
}
