package dto

import (
	"github.com/mif-gmao/gmao/internal/application/planning/usecases"
	"github.com/mif-gmao/gmao/internal/shared/errors"
)

type CreatePlanningRequest struct {
	EquipmentID uint   `json:"equipment_id" binding:"required"`
	Frequency   string `json:"frequency" binding:"required"`
	NextDueDate string `json:"next_due_date" binding:"required"`
	Remarks     string `json:"remarks"`
}

func (r *CreatePlanningRequest) ToCommand() (usecases.CreatePlanningCommand, error) {
	due, err := parseOptionalDate(r.NextDueDate, "next_due_date")
	if err != nil {
		return usecases.CreatePlanningCommand{}, err
	}
	if due == nil {
		return usecases.CreatePlanningCommand{}, errors.NewValidationError("next_due_date is required")
	}
	return usecases.CreatePlanningCommand{
		EquipmentID: r.EquipmentID,
		Frequency:   r.Frequency,
		NextDueDate: *due,
		Remarks:     r.Remarks,
	}, nil
}

// UpdatePlanningRequest leaves absent fields unchanged.
type UpdatePlanningRequest struct {
	Frequency   *string `json:"frequency"`
	NextDueDate *string `json:"next_due_date"`
	Remarks     *string `json:"remarks"`
}

func (r *UpdatePlanningRequest) ToCommand(id uint) (usecases.UpdatePlanningCommand, error) {
	cmd := usecases.UpdatePlanningCommand{
		PlanningID: id,
		Frequency:  r.Frequency,
		Remarks:    r.Remarks,
	}
	if r.NextDueDate != nil {
		due, err := parseOptionalDate(*r.NextDueDate, "next_due_date")
		if err != nil {
			return cmd, err
		}
		cmd.NextDueDate = due
	}
	return cmd, nil
}
