package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type ListHistoryUseCase struct {
	repo    intervention.Repository
	history intervention.HistoryRepository
	logger  logger.Interface
}

func NewListHistoryUseCase(
	repo intervention.Repository,
	history intervention.HistoryRepository,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{repo: repo, history: history, logger: logger}
}

// Execute returns entries oldest first.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, interventionID uint) ([]*dto.HistoryEntryDTO, error) {
	if interventionID == 0 {
		return nil, apperrors.NewValidationError("intervention ID is required")
	}
	i, err := uc.repo.GetByID(ctx, interventionID)
	if err != nil {
		uc.logger.Errorw("failed to get intervention", "intervention_id", interventionID, "error", err)
		return nil, apperrors.NewInternalError("failed to list history")
	}
	if i == nil {
		return nil, apperrors.NewNotFoundError("intervention not found", fmt.Sprintf("id=%d", interventionID))
	}

	entries, err := uc.history.ListByIntervention(ctx, interventionID)
	if err != nil {
		uc.logger.Errorw("failed to list history", "intervention_id", interventionID, "error", err)
		return nil, apperrors.NewInternalError("failed to list history")
	}
	return dto.ToHistoryEntryDTOs(entries), nil
}
