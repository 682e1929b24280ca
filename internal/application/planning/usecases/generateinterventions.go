package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mif-gmao/gmao/internal/application/planning/dto"
	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	ivo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/planning"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/db"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

const tracerName = "github.com/mif-gmao/gmao/internal/application/planning"

// errSkipped marks a planning that another run already advanced.
var errSkipped = errors.New("planning no longer due")

// GenerateInterventionsUseCase turns due plannings into preventive
// interventions. Each planning is handled in its own transaction so one
// failure does not roll back the others.
type GenerateInterventionsUseCase struct {
	repo          planning.Repository
	equipmentRepo equipment.Repository
	creator       InterventionCreator
	txMgr         *db.TransactionManager
	notifier      EventNotifier
	observer      GenerationObserver
	principalID   uint
	logger        logger.Interface
}

func NewGenerateInterventionsUseCase(
	repo planning.Repository,
	equipmentRepo equipment.Repository,
	creator InterventionCreator,
	txMgr *db.TransactionManager,
	notifier EventNotifier,
	observer GenerationObserver,
	systemPrincipalID uint,
	logger logger.Interface,
) *GenerateInterventionsUseCase {
	if observer == nil {
		observer = noopGenerationObserver{}
	}
	return &GenerateInterventionsUseCase{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		creator:       creator,
		txMgr:         txMgr,
		notifier:      notifier,
		observer:      observer,
		principalID:   systemPrincipalID,
		logger:        logger,
	}
}

// Execute returns the number of interventions created. The error, if any,
// joins one entry per failed planning; successful plannings stay committed.
func (uc *GenerateInterventionsUseCase) Execute(ctx context.Context) (int, error) {
	result, err := uc.Run(ctx)
	if result == nil {
		return 0, err
	}
	return result.Created, err
}

// Run is Execute with a detailed summary.
func (uc *GenerateInterventionsUseCase) Run(ctx context.Context) (*dto.GenerationResultDTO, error) {
	runID := uuid.NewString()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "planning.generate_interventions")
	defer span.End()
	span.SetAttributes(attribute.String("generation.run_id", runID))

	start := time.Now()
	now := biztime.NowUTC()
	log := uc.logger.With("run_id", runID)

	due, err := uc.repo.ListDue(ctx, now)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorw("failed to list due plannings", "error", err)
		return nil, apperrors.NewInternalError("failed to list due plannings")
	}

	result := &dto.GenerationResultDTO{RunID: runID}
	var errs []error
	for _, p := range due {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		err := uc.generateOne(ctx, p.ID(), now)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, errSkipped):
			result.Skipped++
			log.Debugw("planning skipped", "planning_id", p.ID())
		default:
			result.Failed++
			errs = append(errs, fmt.Errorf("planning %d: %w", p.ID(), err))
			result.Errors = append(result.Errors, fmt.Sprintf("planning %d: %v", p.ID(), err))
			log.Warnw("planning generation failed", "planning_id", p.ID(), "equipment_id", p.EquipmentID(), "error", err)
		}
	}

	elapsed := time.Since(start)
	uc.observer.ObserveGeneration(result.Created, result.Skipped, result.Failed, elapsed)
	span.SetAttributes(
		attribute.Int("generation.due", len(due)),
		attribute.Int("generation.created", result.Created),
		attribute.Int("generation.failed", result.Failed),
	)
	log.Infow("planning generation finished",
		"due", len(due),
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"duration", elapsed,
	)

	if len(errs) > 0 {
		joined := errors.Join(errs...)
		span.SetStatus(codes.Error, joined.Error())
		return result, joined
	}
	return result, nil
}

func (uc *GenerateInterventionsUseCase) generateOne(ctx context.Context, planningID uint, now time.Time) error {
	var created *intervention.Intervention
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.repo.GetByIDForUpdate(txCtx, planningID)
		if err != nil {
			return fmt.Errorf("failed to lock planning: %w", err)
		}
		if p == nil || !p.IsDue(now) {
			return errSkipped
		}

		e, err := uc.equipmentRepo.GetByID(txCtx, p.EquipmentID())
		if err != nil {
			return fmt.Errorf("failed to load equipment: %w", err)
		}
		if e == nil {
			return apperrors.NewNotFoundError("equipment not found", fmt.Sprintf("equipment_id=%d", p.EquipmentID()))
		}

		equipmentID := e.ID()
		dueDate := p.NextDueDate()
		i, err := uc.creator.CreateInTx(txCtx, intervention.NewInterventionParams{
			Title:         fmt.Sprintf("Maintenance préventive %s", e.Name()),
			Description:   p.Remarks(),
			Type:          ivo.TypePreventive,
			Priority:      ivo.PriorityNormal,
			DueDate:       &dueDate,
			EquipmentID:   &equipmentID,
			InitialStatus: ivo.StatusOpen,
		}, uc.principalID, fmt.Sprintf("Générée depuis le planning #%d (%s)", p.ID(), p.Frequency()))
		if err != nil {
			return err
		}

		expectedVersion := p.Version()
		if err := p.Advance(now); err != nil {
			return err
		}
		if err := uc.repo.Update(txCtx, p, expectedVersion); err != nil {
			return mapDomainError(err)
		}
		created = i
		return nil
	})
	if err != nil {
		return err
	}

	if uc.notifier != nil {
		uc.notifier.Notify(ctx, created.PullEvents())
	}
	return nil
}
