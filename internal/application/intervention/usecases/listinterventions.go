package usecases

import (
	"context"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

// ListInterventionsQuery takes raw literals; each one accepts the same aliases
// as the write paths.
type ListInterventionsQuery struct {
	Status       string
	Type         string
	Priority     string
	Urgent       *bool
	TechnicianID *uint
	EquipmentID  *uint
	Page         int
	PageSize     int
}

type ListInterventionsUseCase struct {
	repo   intervention.Repository
	logger logger.Interface
}

func NewListInterventionsUseCase(repo intervention.Repository, logger logger.Interface) *ListInterventionsUseCase {
	return &ListInterventionsUseCase{repo: repo, logger: logger}
}

func (uc *ListInterventionsUseCase) Execute(ctx context.Context, query ListInterventionsQuery) (*dto.InterventionListDTO, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list interventions", "error", err)
		return nil, apperrors.NewInternalError("failed to list interventions")
	}

	out := make([]*dto.InterventionDTO, 0, len(items))
	for _, i := range items {
		out = append(out, dto.ToInterventionDTO(i))
	}
	return &dto.InterventionListDTO{
		Items:    out,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func buildFilter(q ListInterventionsQuery) (intervention.Filter, error) {
	f := intervention.Filter{
		Urgent:       q.Urgent,
		TechnicianID: q.TechnicianID,
		EquipmentID:  q.EquipmentID,
	}
	pagination := utils.ValidatePagination(q.Page, q.PageSize)
	f.Page, f.PageSize = pagination.Page, pagination.PageSize
	if q.Status != "" {
		s, err := vo.ParseStatus(q.Status)
		if err != nil {
			return f, apperrors.NewValidationError(err.Error())
		}
		f.Status = &s
	}
	if q.Type != "" {
		t, err := vo.ParseType(q.Type)
		if err != nil {
			return f, apperrors.NewValidationError(err.Error())
		}
		f.Type = &t
	}
	if q.Priority != "" {
		p, err := vo.ParsePriority(q.Priority)
		if err != nil {
			return f, apperrors.NewValidationError(err.Error())
		}
		f.Priority = &p
	}
	return f, nil
}
