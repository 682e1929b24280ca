package usecases

import (
	"context"
	"time"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
)

type CreateInterventionExecutor interface {
	Execute(ctx context.Context, cmd CreateInterventionCommand) (*dto.InterventionDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.InterventionDTO, error)
}

type AddHistoryExecutor interface {
	Execute(ctx context.Context, cmd AddHistoryCommand) (*dto.HistoryEntryDTO, error)
}

type AssignTechnicianExecutor interface {
	Execute(ctx context.Context, cmd AssignTechnicianCommand) (*dto.InterventionDTO, error)
}

type GetInterventionExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.InterventionDTO, error)
}

type ListInterventionsExecutor interface {
	Execute(ctx context.Context, query ListInterventionsQuery) (*dto.InterventionListDTO, error)
}

type ListHistoryExecutor interface {
	Execute(ctx context.Context, interventionID uint) ([]*dto.HistoryEntryDTO, error)
}

// EventNotifier receives committed lifecycle events. Implementations must not
// fail the caller; delivery problems are theirs to log.
type EventNotifier interface {
	Notify(ctx context.Context, events []intervention.Event)
}

// TransitionObserver records the outcome of every status change request.
type TransitionObserver interface {
	ObserveTransition(from, to vo.Status, outcome string, elapsed time.Duration)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, []intervention.Event) {}

type noopObserver struct{}

func (noopObserver) ObserveTransition(vo.Status, vo.Status, string, time.Duration) {}
