package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/planning"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type DeletePlanningUseCase struct {
	repo   planning.Repository
	logger logger.Interface
}

func NewDeletePlanningUseCase(repo planning.Repository, logger logger.Interface) *DeletePlanningUseCase {
	return &DeletePlanningUseCase{repo: repo, logger: logger}
}

func (uc *DeletePlanningUseCase) Execute(ctx context.Context, id uint) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load planning", "planning_id", id, "error", err)
		return apperrors.NewInternalError("failed to delete planning")
	}
	if p == nil {
		return apperrors.NewNotFoundError("planning not found", fmt.Sprintf("id=%d", id))
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete planning", "planning_id", id, "error", err)
		return apperrors.NewInternalError("failed to delete planning")
	}
	uc.logger.Infow("planning deleted", "planning_id", id, "equipment_id", p.EquipmentID())
	return nil
}
