package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
)

// HistoryRecorder appends audit entries. It joins the transaction carried by
// ctx so the entry commits or rolls back with the status write.
type HistoryRecorder struct {
	repo intervention.HistoryRepository
}

func NewHistoryRecorder(repo intervention.HistoryRepository) *HistoryRecorder {
	return &HistoryRecorder{repo: repo}
}

func (r *HistoryRecorder) Record(
	ctx context.Context,
	interventionID, principalID uint,
	status vo.Status,
	remark string,
) (*intervention.HistoryEntry, error) {
	entry, err := intervention.NewHistoryEntry(interventionID, status, remark, principalID, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := r.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append history entry: %w", err)
	}
	return entry, nil
}
