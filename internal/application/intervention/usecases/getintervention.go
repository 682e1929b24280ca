package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type GetInterventionUseCase struct {
	repo   intervention.Repository
	logger logger.Interface
}

func NewGetInterventionUseCase(repo intervention.Repository, logger logger.Interface) *GetInterventionUseCase {
	return &GetInterventionUseCase{repo: repo, logger: logger}
}

func (uc *GetInterventionUseCase) Execute(ctx context.Context, id uint) (*dto.InterventionDTO, error) {
	if id == 0 {
		return nil, apperrors.NewValidationError("intervention ID is required")
	}
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get intervention", "intervention_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get intervention")
	}
	if i == nil {
		return nil, apperrors.NewNotFoundError("intervention not found", fmt.Sprintf("id=%d", id))
	}
	return dto.ToInterventionDTO(i), nil
}
