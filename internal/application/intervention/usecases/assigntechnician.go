package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type AssignTechnicianCommand struct {
	InterventionID uint
	TechnicianID   uint
	PrincipalID    uint
}

type AssignTechnicianUseCase struct {
	repo           intervention.Repository
	technicianRepo technician.Repository
	txMgr          *db.TransactionManager
	notifier       EventNotifier
	logger         logger.Interface
}

func NewAssignTechnicianUseCase(
	repo intervention.Repository,
	technicianRepo technician.Repository,
	txMgr *db.TransactionManager,
	notifier EventNotifier,
	logger logger.Interface,
) *AssignTechnicianUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &AssignTechnicianUseCase{
		repo:           repo,
		technicianRepo: technicianRepo,
		txMgr:          txMgr,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*dto.InterventionDTO, error) {
	if cmd.InterventionID == 0 || cmd.TechnicianID == 0 {
		return nil, apperrors.NewValidationError("intervention ID and technician ID are required")
	}
	if cmd.PrincipalID == 0 {
		return nil, apperrors.NewValidationError("principal is required")
	}

	var (
		result  *intervention.Intervention
		changed bool
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.technicianRepo.GetByIDForUpdate(txCtx, cmd.TechnicianID)
		if err != nil {
			return fmt.Errorf("failed to load technician: %w", err)
		}
		if t == nil {
			return apperrors.NewNotFoundError("technician not found", fmt.Sprintf("technician_id=%d", cmd.TechnicianID))
		}

		i, err := uc.repo.GetByIDForUpdate(txCtx, cmd.InterventionID)
		if err != nil {
			return fmt.Errorf("failed to load intervention: %w", err)
		}
		if i == nil {
			return apperrors.NewNotFoundError("intervention not found", fmt.Sprintf("id=%d", cmd.InterventionID))
		}

		expectedVersion := i.Version()
		if changed, err = i.AssignTechnician(t.ID(), cmd.PrincipalID, biztime.NowUTC()); err != nil {
			return err
		}
		if changed {
			if err := uc.repo.Update(txCtx, i, expectedVersion); err != nil {
				return err
			}
		}
		result = i
		return nil
	})
	if err != nil {
		err = mapDomainError(err)
		uc.logger.Warnw("failed to assign technician",
			"intervention_id", cmd.InterventionID,
			"technician_id", cmd.TechnicianID,
			"error", err,
		)
		return nil, err
	}

	if changed {
		uc.notifier.Notify(ctx, result.PullEvents())
		uc.logger.Infow("technician assigned",
			"intervention_id", result.ID(),
			"technician_id", cmd.TechnicianID,
			"principal_id", cmd.PrincipalID,
		)
	}
	return dto.ToInterventionDTO(result), nil
}
