package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/mif-gmao/gmao/internal/application/planning/dto"
	"github.com/mif-gmao/gmao/internal/domain/planning"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// UpdatePlanningCommand carries optional changes. A nil field is left as is.
type UpdatePlanningCommand struct {
	PlanningID  uint
	Frequency   *string
	NextDueDate *time.Time
	Remarks     *string
}

type UpdatePlanningUseCase struct {
	repo   planning.Repository
	txMgr  *db.TransactionManager
	logger logger.Interface
}

func NewUpdatePlanningUseCase(repo planning.Repository, txMgr *db.TransactionManager, logger logger.Interface) *UpdatePlanningUseCase {
	return &UpdatePlanningUseCase{repo: repo, txMgr: txMgr, logger: logger}
}

func (uc *UpdatePlanningUseCase) Execute(ctx context.Context, cmd UpdatePlanningCommand) (*dto.PlanningDTO, error) {
	if cmd.PlanningID == 0 {
		return nil, apperrors.NewValidationError("planning ID is required")
	}
	if cmd.NextDueDate != nil && cmd.NextDueDate.IsZero() {
		return nil, apperrors.NewValidationError("next due date cannot be empty")
	}

	var result *planning.Planning
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.repo.GetByIDForUpdate(txCtx, cmd.PlanningID)
		if err != nil {
			return fmt.Errorf("failed to load planning: %w", err)
		}
		if p == nil {
			return apperrors.NewNotFoundError("planning not found", fmt.Sprintf("id=%d", cmd.PlanningID))
		}

		expectedVersion := p.Version()
		now := biztime.NowUTC()
		if cmd.Frequency != nil {
			if f := p.ChangeFrequency(*cmd.Frequency, now); f.String() != *cmd.Frequency {
				uc.logger.Debugw("planning frequency normalized", "planning_id", p.ID(), "input", *cmd.Frequency, "frequency", f)
			}
		}
		if cmd.NextDueDate != nil {
			if err := p.Reschedule(*cmd.NextDueDate, now); err != nil {
				return apperrors.NewValidationError(err.Error())
			}
		}
		if cmd.Remarks != nil {
			p.UpdateRemarks(*cmd.Remarks, now)
		}

		if p.Version() != expectedVersion {
			if err := uc.repo.Update(txCtx, p, expectedVersion); err != nil {
				return err
			}
		}
		result = p
		return nil
	})
	if err != nil {
		err = mapDomainError(err)
		uc.logger.Warnw("failed to update planning", "planning_id", cmd.PlanningID, "error", err)
		return nil, err
	}

	uc.logger.Infow("planning updated",
		"planning_id", result.ID(),
		"frequency", result.Frequency(),
		"next_due_date", biztime.FormatDate(result.NextDueDate()),
	)
	return dto.ToPlanningDTO(result), nil
}
