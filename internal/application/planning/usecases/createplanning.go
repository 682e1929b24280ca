package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/mif-gmao/gmao/internal/application/planning/dto"
	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/planning"
	vo "github.com/mif-gmao/gmao/internal/domain/planning/valueobjects"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type CreatePlanningCommand struct {
	EquipmentID uint
	Frequency   string
	NextDueDate time.Time
	Remarks     string
}

type CreatePlanningUseCase struct {
	repo          planning.Repository
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewCreatePlanningUseCase(repo planning.Repository, equipmentRepo equipment.Repository, logger logger.Interface) *CreatePlanningUseCase {
	return &CreatePlanningUseCase{repo: repo, equipmentRepo: equipmentRepo, logger: logger}
}

// Execute rejects unknown frequency literals. Updates are lenient, creation is not.
func (uc *CreatePlanningUseCase) Execute(ctx context.Context, cmd CreatePlanningCommand) (*dto.PlanningDTO, error) {
	if cmd.EquipmentID == 0 {
		return nil, apperrors.NewValidationError("equipment ID is required")
	}
	freq, err := vo.ParseFrequency(cmd.Frequency)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), "accepted: weekly, monthly, quarterly")
	}

	e, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
	if err != nil {
		uc.logger.Errorw("failed to load equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return nil, apperrors.NewInternalError("failed to create planning")
	}
	if e == nil {
		return nil, apperrors.NewNotFoundError("equipment not found", fmt.Sprintf("equipment_id=%d", cmd.EquipmentID))
	}

	p, err := planning.NewPlanning(e.ID(), freq, cmd.NextDueDate, cmd.Remarks, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create planning", "equipment_id", e.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to create planning")
	}

	uc.logger.Infow("planning created",
		"planning_id", p.ID(),
		"equipment_id", e.ID(),
		"frequency", freq,
		"next_due_date", biztime.FormatDate(p.NextDueDate()),
	)
	return dto.ToPlanningDTO(p), nil
}
