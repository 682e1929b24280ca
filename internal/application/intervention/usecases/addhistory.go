package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type AddHistoryCommand struct {
	InterventionID uint
	Status         string
	Remark         string
	PrincipalID    uint
}

// AddHistoryUseCase appends a free audit entry. It never changes the
// intervention itself.
type AddHistoryUseCase struct {
	repo    intervention.Repository
	history *HistoryRecorder
	txMgr   *db.TransactionManager
	logger  logger.Interface
}

func NewAddHistoryUseCase(
	repo intervention.Repository,
	history *HistoryRecorder,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AddHistoryUseCase {
	return &AddHistoryUseCase{repo: repo, history: history, txMgr: txMgr, logger: logger}
}

func (uc *AddHistoryUseCase) Execute(ctx context.Context, cmd AddHistoryCommand) (*dto.HistoryEntryDTO, error) {
	if cmd.InterventionID == 0 {
		return nil, apperrors.NewValidationError("intervention ID is required")
	}
	if cmd.PrincipalID == 0 {
		return nil, apperrors.NewValidationError("principal is required")
	}
	status, err := vo.ParseStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var entry *intervention.HistoryEntry
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		i, err := uc.repo.GetByID(txCtx, cmd.InterventionID)
		if err != nil {
			return fmt.Errorf("failed to load intervention: %w", err)
		}
		if i == nil {
			return apperrors.NewNotFoundError("intervention not found", fmt.Sprintf("id=%d", cmd.InterventionID))
		}
		entry, err = uc.history.Record(txCtx, i.ID(), cmd.PrincipalID, status, cmd.Remark)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to add history entry", "intervention_id", cmd.InterventionID, "error", err)
		return nil, mapDomainError(err)
	}

	uc.logger.Infow("history entry added",
		"intervention_id", cmd.InterventionID,
		"status", status,
		"principal_id", cmd.PrincipalID,
	)
	return dto.ToHistoryEntryDTO(entry), nil
}
