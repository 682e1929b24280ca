package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type TechnicianDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Team      string    `json:"team,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

func toTechnicianDTO(t *technician.Technician) *TechnicianDTO {
	return &TechnicianDTO{
		ID:        t.ID(),
		UserID:    t.UserID(),
		Team:      t.Team(),
		Available: t.Available(),
		CreatedAt: t.CreatedAt(),
	}
}

type CreateTechnicianCommand struct {
	UserID uint
	Team   string
}

type CreateTechnicianUseCase struct {
	repo   technician.Repository
	users  user.Repository
	logger logger.Interface
}

func NewCreateTechnicianUseCase(repo technician.Repository, users user.Repository, logger logger.Interface) *CreateTechnicianUseCase {
	return &CreateTechnicianUseCase{repo: repo, users: users, logger: logger}
}

func (uc *CreateTechnicianUseCase) Execute(ctx context.Context, cmd CreateTechnicianCommand) (*TechnicianDTO, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	u, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to create technician")
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found", fmt.Sprintf("user_id=%d", cmd.UserID))
	}

	existing, err := uc.repo.GetByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to check technician", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to create technician")
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("user is already a technician", fmt.Sprintf("technician_id=%d", existing.ID()))
	}

	t, err := technician.NewTechnician(u.ID(), cmd.Team, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create technician", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to create technician")
	}

	uc.logger.Infow("technician created", "technician_id", t.ID(), "user_id", u.ID())
	return toTechnicianDTO(t), nil
}

type ListTechniciansUseCase struct {
	repo   technician.Repository
	logger logger.Interface
}

func NewListTechniciansUseCase(repo technician.Repository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{repo: repo, logger: logger}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context) ([]*TechnicianDTO, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, apperrors.NewInternalError("failed to list technicians")
	}
	out := make([]*TechnicianDTO, 0, len(items))
	for _, t := range items {
		out = append(out, toTechnicianDTO(t))
	}
	return out, nil
}

// DeleteTechnicianUseCase refuses while an intervention that is not archived
// is assigned to the technician.
type DeleteTechnicianUseCase struct {
	repo          technician.Repository
	interventions intervention.Repository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewDeleteTechnicianUseCase(
	repo technician.Repository,
	interventions intervention.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteTechnicianUseCase {
	return &DeleteTechnicianUseCase{repo: repo, interventions: interventions, txMgr: txMgr, logger: logger}
}

func (uc *DeleteTechnicianUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.repo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load technician: %w", err)
		}
		if t == nil {
			return apperrors.NewNotFoundError("technician not found", fmt.Sprintf("id=%d", id))
		}
		active, err := uc.interventions.CountActiveByTechnician(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count interventions: %w", err)
		}
		if active > 0 {
			return apperrors.NewConflictError(
				"technician has interventions that are not archived",
				fmt.Sprintf("technician_id=%d active=%d", id, active),
			)
		}
		return uc.repo.Delete(txCtx, id)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			uc.logger.Warnw("technician deletion refused", "technician_id", id, "error", err)
			return err
		}
		uc.logger.Errorw("failed to delete technician", "technician_id", id, "error", err)
		return apperrors.NewInternalError("failed to delete technician")
	}
	uc.logger.Infow("technician deleted", "technician_id", id)
	return nil
}
