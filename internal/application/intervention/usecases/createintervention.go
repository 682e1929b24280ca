package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

const creationRemark = "Intervention créée"

type CreateInterventionCommand struct {
	Title         string
	Description   string
	Type          string
	Priority      string
	Urgent        bool
	DueDate       *time.Time
	TechnicianID  *uint
	EquipmentID   *uint
	InitialStatus string
	CreatorID     uint
}

type CreateInterventionUseCase struct {
	repo           intervention.Repository
	history        *HistoryRecorder
	equipmentRepo  equipment.Repository
	technicianRepo technician.Repository
	txMgr          *db.TransactionManager
	notifier       EventNotifier
	logger         logger.Interface
}

func NewCreateInterventionUseCase(
	repo intervention.Repository,
	history *HistoryRecorder,
	equipmentRepo equipment.Repository,
	technicianRepo technician.Repository,
	txMgr *db.TransactionManager,
	notifier EventNotifier,
	logger logger.Interface,
) *CreateInterventionUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &CreateInterventionUseCase{
		repo:           repo,
		history:        history,
		equipmentRepo:  equipmentRepo,
		technicianRepo: technicianRepo,
		txMgr:          txMgr,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *CreateInterventionUseCase) Execute(ctx context.Context, cmd CreateInterventionCommand) (*dto.InterventionDTO, error) {
	params, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Warnw("invalid create intervention command", "error", err)
		return nil, err
	}

	var created *intervention.Intervention
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		i, err := uc.CreateInTx(txCtx, params, cmd.CreatorID, creationRemark)
		if err != nil {
			return err
		}
		created = i
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create intervention", "title", cmd.Title, "error", err)
		return nil, mapDomainError(err)
	}

	uc.notifier.Notify(ctx, created.PullEvents())

	uc.logger.Infow("intervention created",
		"intervention_id", created.ID(),
		"type", created.Type(),
		"status", created.Status(),
		"creator_id", cmd.CreatorID,
	)
	return dto.ToInterventionDTO(created), nil
}

// CreateInTx persists a new intervention together with its first history entry.
// It must run inside a transaction carried by ctx. The returned aggregate still
// holds its creation event; callers pull it once the transaction has committed.
func (uc *CreateInterventionUseCase) CreateInTx(
	ctx context.Context,
	params intervention.NewInterventionParams,
	creatorID uint,
	remark string,
) (*intervention.Intervention, error) {
	if !db.InTransaction(ctx) {
		return nil, fmt.Errorf("intervention creation requires a transaction")
	}
	if err := uc.checkReferences(ctx, params); err != nil {
		return nil, err
	}

	i, err := intervention.NewIntervention(params, biztime.NowUTC())
	if err != nil {
		if errors.Is(err, intervention.ErrInvalidTransition) {
			return nil, apperrors.NewInvalidTransitionError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, fmt.Errorf("failed to create intervention: %w", err)
	}
	if _, err := uc.history.Record(ctx, i.ID(), creatorID, i.Status(), remark); err != nil {
		return nil, err
	}
	i.MarkCreated(creatorID)
	return i, nil
}

// checkReferences locks the referenced rows so a concurrent delete waits for
// this transaction to commit.
func (uc *CreateInterventionUseCase) checkReferences(ctx context.Context, params intervention.NewInterventionParams) error {
	if params.EquipmentID != nil {
		e, err := uc.equipmentRepo.GetByIDForUpdate(ctx, *params.EquipmentID)
		if err != nil {
			return fmt.Errorf("failed to load equipment: %w", err)
		}
		if e == nil {
			return apperrors.NewNotFoundError("equipment not found", fmt.Sprintf("equipment_id=%d", *params.EquipmentID))
		}
	}
	if params.TechnicianID != nil {
		t, err := uc.technicianRepo.GetByIDForUpdate(ctx, *params.TechnicianID)
		if err != nil {
			return fmt.Errorf("failed to load technician: %w", err)
		}
		if t == nil {
			return apperrors.NewNotFoundError("technician not found", fmt.Sprintf("technician_id=%d", *params.TechnicianID))
		}
	}
	return nil
}

func (uc *CreateInterventionUseCase) validateCommand(cmd CreateInterventionCommand) (intervention.NewInterventionParams, error) {
	var params intervention.NewInterventionParams

	if cmd.CreatorID == 0 {
		return params, apperrors.NewValidationError("creator is required")
	}
	kind, err := vo.ParseType(cmd.Type)
	if err != nil {
		return params, apperrors.NewValidationError(err.Error())
	}
	priority, err := vo.ParsePriority(cmd.Priority)
	if err != nil {
		return params, apperrors.NewValidationError(err.Error())
	}
	status := vo.StatusOpen
	if cmd.InitialStatus != "" {
		if status, err = vo.ParseStatus(cmd.InitialStatus); err != nil {
			return params, apperrors.NewValidationError(err.Error())
		}
	}

	params = intervention.NewInterventionParams{
		Title:         cmd.Title,
		Description:   cmd.Description,
		Type:          kind,
		Priority:      priority,
		Urgent:        cmd.Urgent,
		DueDate:       cmd.DueDate,
		TechnicianID:  cmd.TechnicianID,
		EquipmentID:   cmd.EquipmentID,
		InitialStatus: status,
	}
	return params, nil
}
