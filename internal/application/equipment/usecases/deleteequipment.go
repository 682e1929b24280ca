package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// CanDeleteEquipmentUseCase reports whether an equipment may be removed. Any
// intervention on it that is not archived blocks deletion.
type CanDeleteEquipmentUseCase struct {
	repo          equipment.Repository
	interventions intervention.Repository
	logger        logger.Interface
}

func NewCanDeleteEquipmentUseCase(
	repo equipment.Repository,
	interventions intervention.Repository,
	logger logger.Interface,
) *CanDeleteEquipmentUseCase {
	return &CanDeleteEquipmentUseCase{repo: repo, interventions: interventions, logger: logger}
}

// Execute returns (false, Conflict) while active interventions reference the equipment.
// Inside a transaction the equipment row stays locked until commit, so a
// concurrent creation cannot reference it between the count and the delete.
func (uc *CanDeleteEquipmentUseCase) Execute(ctx context.Context, id uint) (bool, error) {
	e, err := uc.repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to load equipment: %w", err)
	}
	if e == nil {
		return false, apperrors.NewNotFoundError("equipment not found", fmt.Sprintf("id=%d", id))
	}

	active, err := uc.interventions.CountActiveByEquipment(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to count interventions: %w", err)
	}
	if active > 0 {
		return false, apperrors.NewConflictError(
			"equipment has interventions that are not archived",
			fmt.Sprintf("equipment_id=%d active=%d", id, active),
		)
	}
	return true, nil
}

type DeleteEquipmentUseCase struct {
	repo   equipment.Repository
	guard  *CanDeleteEquipmentUseCase
	txMgr  *db.TransactionManager
	logger logger.Interface
}

func NewDeleteEquipmentUseCase(
	repo equipment.Repository,
	guard *CanDeleteEquipmentUseCase,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteEquipmentUseCase {
	return &DeleteEquipmentUseCase{repo: repo, guard: guard, txMgr: txMgr, logger: logger}
}

// Execute runs the guard and the delete in one transaction.
func (uc *DeleteEquipmentUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.guard.Execute(txCtx, id); err != nil {
			return err
		}
		return uc.repo.Delete(txCtx, id)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			uc.logger.Warnw("equipment deletion refused", "equipment_id", id, "error", err)
			return err
		}
		uc.logger.Errorw("failed to delete equipment", "equipment_id", id, "error", err)
		return apperrors.NewInternalError("failed to delete equipment")
	}
	uc.logger.Infow("equipment deleted", "equipment_id", id)
	return nil
}
