package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type CreateEquipmentCommand struct {
	Name                    string
	Kind                    string
	Location                string
	MaintenanceIntervalDays *int
}

type CreateEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewCreateEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*EquipmentDTO, error) {
	e, err := equipment.NewEquipment(cmd.Name, cmd.Kind, cmd.Location, cmd.MaintenanceIntervalDays, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := uc.repo.GetByName(ctx, e.Name())
	if err != nil {
		uc.logger.Errorw("failed to check equipment name", "name", e.Name(), "error", err)
		return nil, apperrors.NewInternalError("failed to create equipment")
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("equipment name already exists", fmt.Sprintf("name=%s", e.Name()))
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("equipment name already exists", fmt.Sprintf("name=%s", e.Name()))
		}
		uc.logger.Errorw("failed to create equipment", "name", e.Name(), "error", err)
		return nil, apperrors.NewInternalError("failed to create equipment")
	}

	uc.logger.Infow("equipment created", "equipment_id", e.ID(), "name", e.Name())
	return toEquipmentDTO(e), nil
}
