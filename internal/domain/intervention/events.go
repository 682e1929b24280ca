package intervention

import (
	"time"

	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
)

type EventKind string

const (
	EventCreated       EventKind = "intervention.created"
	EventAssigned      EventKind = "intervention.assigned"
	EventStatusChanged EventKind = "intervention.status_changed"
)

// Event describes something that happened to an intervention. It is a snapshot:
// later mutations of the aggregate do not affect it.
type Event struct {
	Kind           EventKind
	InterventionID uint
	Title          string
	Type           vo.InterventionType
	Priority       vo.Priority
	Urgent         bool
	From           vo.Status
	To             vo.Status
	TechnicianID   *uint
	EquipmentID    *uint
	ActorID        uint
	OccurredAt     time.Time
}

func snapshot(kind EventKind, i *Intervention, actorID uint, at time.Time) Event {
	return Event{
		Kind:           kind,
		InterventionID: i.id,
		Title:          i.title,
		Type:           i.kind,
		Priority:       i.priority,
		Urgent:         i.urgent,
		From:           i.status,
		To:             i.status,
		TechnicianID:   copyID(i.technicianID),
		EquipmentID:    copyID(i.equipmentID),
		ActorID:        actorID,
		OccurredAt:     at,
	}
}

func NewCreatedEvent(i *Intervention, actorID uint, at time.Time) Event {
	return snapshot(EventCreated, i, actorID, at)
}

func NewAssignedEvent(i *Intervention, actorID uint, at time.Time) Event {
	return snapshot(EventAssigned, i, actorID, at)
}

func NewStatusChangedEvent(i *Intervention, from vo.Status, actorID uint, at time.Time) Event {
	e := snapshot(EventStatusChanged, i, actorID, at)
	e.From = from
	return e
}

// IsClosure reports a status change that landed on closed.
func (e Event) IsClosure() bool {
	return e.Kind == EventStatusChanged && e.To.IsClosed() && !e.From.IsClosed()
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
