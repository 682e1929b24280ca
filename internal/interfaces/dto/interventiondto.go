// Package dto holds the HTTP request shapes and their conversion into
// application commands.
package dto

import (
	"time"

	"github.com/mif-gmao/gmao/internal/application/intervention/usecases"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/errors"
)

// CreateInterventionRequest accepts French or English literals for type,
// priority and status. DueDate is YYYY-MM-DD.
type CreateInterventionRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	Priority     string `json:"priority"`
	Urgent       bool   `json:"urgent"`
	DueDate      string `json:"due_date"`
	TechnicianID *uint  `json:"technician_id"`
	EquipmentID  *uint  `json:"equipment_id"`
	Status       string `json:"status"`
}

func (r *CreateInterventionRequest) ToCommand(creatorID uint) (usecases.CreateInterventionCommand, error) {
	due, err := parseOptionalDate(r.DueDate, "due_date")
	if err != nil {
		return usecases.CreateInterventionCommand{}, err
	}
	return usecases.CreateInterventionCommand{
		Title:         r.Title,
		Description:   r.Description,
		Type:          r.Type,
		Priority:      r.Priority,
		Urgent:        r.Urgent,
		DueDate:       due,
		TechnicianID:  r.TechnicianID,
		EquipmentID:   r.EquipmentID,
		InitialStatus: r.Status,
		CreatorID:     creatorID,
	}, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Remark string `json:"remark"`
}

type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

type AddHistoryRequest struct {
	Status string `json:"status" binding:"required"`
	Remark string `json:"remark"`
}

// ListInterventionsParams binds the list query string.
type ListInterventionsParams struct {
	Status       string `form:"status"`
	Type         string `form:"type"`
	Priority     string `form:"priority"`
	Urgent       *bool  `form:"urgent"`
	TechnicianID *uint  `form:"technician_id"`
	EquipmentID  *uint  `form:"equipment_id"`
	// Page and PageSize are filled from utils.ParsePagination.
	Page     int `form:"-"`
	PageSize int `form:"-"`
}

func (p *ListInterventionsParams) ToQuery() usecases.ListInterventionsQuery {
	return usecases.ListInterventionsQuery{
		Status:       p.Status,
		Type:         p.Type,
		Priority:     p.Priority,
		Urgent:       p.Urgent,
		TechnicianID: p.TechnicianID,
		EquipmentID:  p.EquipmentID,
		Page:         p.Page,
		PageSize:     p.PageSize,
	}
}

func parseOptionalDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+field, "expected YYYY-MM-DD")
	}
	return &t, nil
}
