package intervention

import (
	"fmt"
	"time"

	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/shared"
)

const maxRemarkLength = 2000

// HistoryEntry is an append-only audit record of a status on an intervention.
type HistoryEntry struct {
	id             uint
	interventionID uint
	status         vo.Status
	remark         string
	principalID    uint
	createdAt      time.Time
}

func NewHistoryEntry(interventionID uint, status vo.Status, remark string, principalID uint, at time.Time) (*HistoryEntry, error) {
	if interventionID == 0 {
		return nil, fmt.Errorf("intervention ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid intervention status: %q", status)
	}
	if len(remark) > maxRemarkLength {
		return nil, fmt.Errorf("remark exceeds maximum length of %d characters", maxRemarkLength)
	}
	return &HistoryEntry{
		interventionID: interventionID,
		status:         status,
		remark:         remark,
		principalID:    principalID,
		createdAt:      shared.StorageTime(at),
	}, nil
}

func ReconstructHistoryEntry(id, interventionID uint, status vo.Status, remark string, principalID uint, createdAt time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:             id,
		interventionID: interventionID,
		status:         status,
		remark:         remark,
		principalID:    principalID,
		createdAt:      createdAt,
	}
}

func (h *HistoryEntry) ID() uint             { return h.id }
func (h *HistoryEntry) InterventionID() uint { return h.interventionID }
func (h *HistoryEntry) Status() vo.Status    { return h.status }
func (h *HistoryEntry) Remark() string       { return h.remark }
func (h *HistoryEntry) PrincipalID() uint    { return h.principalID }
func (h *HistoryEntry) CreatedAt() time.Time { return h.createdAt }

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	h.id = id
	return nil
}
