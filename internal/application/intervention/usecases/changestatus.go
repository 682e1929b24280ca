package usecases

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

const tracerName = "github.com/mif-gmao/gmao/internal/application/intervention"

type ChangeStatusCommand struct {
	InterventionID uint
	Status         string
	Remark         string
	PrincipalID    uint
}

// ChangeStatusUseCase is the single entry point for status changes. The row is
// locked, the rules are applied, and the status, closure timestamp and history
// entry are committed together. Notifications go out after commit.
type ChangeStatusUseCase struct {
	repo     intervention.Repository
	history  *HistoryRecorder
	txMgr    *db.TransactionManager
	notifier EventNotifier
	observer TransitionObserver
	logger   logger.Interface
}

func NewChangeStatusUseCase(
	repo intervention.Repository,
	history *HistoryRecorder,
	txMgr *db.TransactionManager,
	notifier EventNotifier,
	observer TransitionObserver,
	logger logger.Interface,
) *ChangeStatusUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &ChangeStatusUseCase{
		repo:     repo,
		history:  history,
		txMgr:    txMgr,
		notifier: notifier,
		observer: observer,
		logger:   logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.InterventionDTO, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "intervention.change_status")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("intervention.id", int64(cmd.InterventionID)),
		attribute.String("intervention.requested_status", cmd.Status),
	)

	requested, err := uc.validateCommand(cmd)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	start := time.Now()
	var (
		current vo.Status
		result  *intervention.Intervention
		changed bool
	)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		i, err := uc.repo.GetByIDForUpdate(txCtx, cmd.InterventionID)
		if err != nil {
			return fmt.Errorf("failed to load intervention: %w", err)
		}
		if i == nil {
			return apperrors.NewNotFoundError("intervention not found", fmt.Sprintf("id=%d", cmd.InterventionID))
		}

		current = i.Status()
		expectedVersion := i.Version()
		changed, err = i.ChangeStatus(requested, cmd.PrincipalID, biztime.NowUTC())
		if err != nil {
			return err
		}

		if changed {
			if err := uc.repo.Update(txCtx, i, expectedVersion); err != nil {
				return err
			}
		}
		// A no-op request leaves an audit trace only when it carries a remark.
		if changed || cmd.Remark != "" {
			if _, err := uc.history.Record(txCtx, i.ID(), cmd.PrincipalID, i.Status(), cmd.Remark); err != nil {
				return err
			}
		}
		result = i
		return nil
	})

	err = mapDomainError(err)
	uc.observer.ObserveTransition(current, requested, outcomeOf(err), time.Since(start))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if apperrors.IsAppError(err) && !apperrors.IsType(err, apperrors.ErrorTypeInternal) {
			uc.logger.Warnw("status change rejected",
				"intervention_id", cmd.InterventionID,
				"from", current,
				"to", requested,
				"error", err,
			)
		} else {
			uc.logger.Errorw("failed to change intervention status",
				"intervention_id", cmd.InterventionID,
				"error", err,
			)
		}
		return nil, err
	}

	if changed {
		uc.notifier.Notify(ctx, result.PullEvents())
		uc.logger.Infow("intervention status changed",
			"intervention_id", result.ID(),
			"from", current,
			"to", result.Status(),
			"principal_id", cmd.PrincipalID,
		)
	} else {
		uc.logger.Debugw("status change is a no-op",
			"intervention_id", result.ID(),
			"status", result.Status(),
		)
	}
	span.SetAttributes(attribute.Bool("intervention.changed", changed))

	return dto.ToInterventionDTO(result), nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) (vo.Status, error) {
	if cmd.InterventionID == 0 {
		return "", apperrors.NewValidationError("intervention ID is required")
	}
	if cmd.PrincipalID == 0 {
		return "", apperrors.NewValidationError("principal is required")
	}
	status, err := vo.ParseStatus(cmd.Status)
	if err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}
	return status, nil
}
