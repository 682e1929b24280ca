package dto

import (
	"time"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
)

type InterventionDTO struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Urgent       bool       `json:"urgent"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	TechnicianID *uint      `json:"technician_id,omitempty"`
	EquipmentID  *uint      `json:"equipment_id,omitempty"`
	Version      int        `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type HistoryEntryDTO struct {
	ID             uint      `json:"id"`
	InterventionID uint      `json:"intervention_id"`
	Status         string    `json:"status"`
	Remark         string    `json:"remark,omitempty"`
	PrincipalID    uint      `json:"principal_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type InterventionListDTO struct {
	Items    []*InterventionDTO `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func ToInterventionDTO(i *intervention.Intervention) *InterventionDTO {
	if i == nil {
		return nil
	}
	return &InterventionDTO{
		ID:           i.ID(),
		Title:        i.Title(),
		Description:  i.Description(),
		Type:         i.Type().String(),
		Status:       i.Status().String(),
		Priority:     i.Priority().String(),
		Urgent:       i.Urgent(),
		DueDate:      i.DueDate(),
		ClosedAt:     i.ClosedAt(),
		TechnicianID: i.TechnicianID(),
		EquipmentID:  i.EquipmentID(),
		Version:      i.Version(),
		CreatedAt:    i.CreatedAt(),
		UpdatedAt:    i.UpdatedAt(),
	}
}

func ToHistoryEntryDTO(h *intervention.HistoryEntry) *HistoryEntryDTO {
	if h == nil {
		return nil
	}
	return &HistoryEntryDTO{
		ID:             h.ID(),
		InterventionID: h.InterventionID(),
		Status:         h.Status().String(),
		Remark:         h.Remark(),
		PrincipalID:    h.PrincipalID(),
		CreatedAt:      h.CreatedAt(),
	}
}

func ToHistoryEntryDTOs(entries []*intervention.HistoryEntry) []*HistoryEntryDTO {
	out := make([]*HistoryEntryDTO, 0, len(entries))
	for _, h := range entries {
		out = append(out, ToHistoryEntryDTO(h))
	}
	return out
}
