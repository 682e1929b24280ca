package usecases

import (
	"context"
	"time"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
)

// InterventionCreator creates an intervention with its first history entry
// inside the transaction carried by ctx.
type InterventionCreator interface {
	CreateInTx(ctx context.Context, params intervention.NewInterventionParams, creatorID uint, remark string) (*intervention.Intervention, error)
}

type EventNotifier interface {
	Notify(ctx context.Context, events []intervention.Event)
}

// GenerationObserver records generator runs.
type GenerationObserver interface {
	ObserveGeneration(created, skipped, failed int, elapsed time.Duration)
}

type noopGenerationObserver struct{}

func (noopGenerationObserver) ObserveGeneration(int, int, int, time.Duration) {}
