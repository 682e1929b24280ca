package dto

import (
	"time"

	"github.com/mif-gmao/gmao/internal/domain/planning"
)

type PlanningDTO struct {
	ID                uint       `json:"id"`
	EquipmentID       uint       `json:"equipment_id"`
	Frequency         string     `json:"frequency"`
	NextDueDate       time.Time  `json:"next_due_date"`
	LastGeneratedDate *time.Time `json:"last_generated_date,omitempty"`
	Remarks           string     `json:"remarks,omitempty"`
	Version           int        `json:"version"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// GenerationResultDTO summarizes one generator run.
type GenerationResultDTO struct {
	RunID   string   `json:"run_id"`
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

func ToPlanningDTO(p *planning.Planning) *PlanningDTO {
	if p == nil {
		return nil
	}
	return &PlanningDTO{
		ID:                p.ID(),
		EquipmentID:       p.EquipmentID(),
		Frequency:         p.Frequency().String(),
		NextDueDate:       p.NextDueDate(),
		LastGeneratedDate: p.LastGeneratedDate(),
		Remarks:           p.Remarks(),
		Version:           p.Version(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func ToPlanningDTOs(items []*planning.Planning) []*PlanningDTO {
	out := make([]*PlanningDTO, 0, len(items))
	for _, p := range items {
		out = append(out, ToPlanningDTO(p))
	}
	return out
}
