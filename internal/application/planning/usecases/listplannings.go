package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/application/planning/dto"
	"github.com/mif-gmao/gmao/internal/domain/planning"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type ListPlanningsUseCase struct {
	repo   planning.Repository
	logger logger.Interface
}

func NewListPlanningsUseCase(repo planning.Repository, logger logger.Interface) *ListPlanningsUseCase {
	return &ListPlanningsUseCase{repo: repo, logger: logger}
}

// Execute lists every planning, or those of one equipment when equipmentID is set.
func (uc *ListPlanningsUseCase) Execute(ctx context.Context, equipmentID *uint) ([]*dto.PlanningDTO, error) {
	items, err := uc.repo.List(ctx, equipmentID)
	if err != nil {
		uc.logger.Errorw("failed to list plannings", "error", err)
		return nil, apperrors.NewInternalError("failed to list plannings")
	}
	return dto.ToPlanningDTOs(items), nil
}

type GetPlanningUseCase struct {
	repo   planning.Repository
	logger logger.Interface
}

func NewGetPlanningUseCase(repo planning.Repository, logger logger.Interface) *GetPlanningUseCase {
	return &GetPlanningUseCase{repo: repo, logger: logger}
}

func (uc *GetPlanningUseCase) Execute(ctx context.Context, id uint) (*dto.PlanningDTO, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get planning", "planning_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get planning")
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("planning not found", fmt.Sprintf("id=%d", id))
	}
	return dto.ToPlanningDTO(p), nil
}
