package usecases

import (
	"context"

	"github.com/mif-gmao/gmao/internal/application/notification/dto"
	"github.com/mif-gmao/gmao/internal/domain/notification"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ListNotificationsQuery struct {
	UserID         *uint
	InterventionID *uint
	Limit          int
	Offset         int
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

// Execute returns the newest notifications first. Limit defaults to 50 and is
// capped at 200.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) ([]*dto.NotificationDTO, error) {
	if query.Offset < 0 {
		return nil, apperrors.NewValidationError("offset cannot be negative")
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := uc.repo.List(ctx, notification.Filter{
		UserID:         query.UserID,
		InterventionID: query.InterventionID,
		Limit:          limit,
		Offset:         query.Offset,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err)
		return nil, apperrors.NewInternalError("failed to list notifications")
	}

	out := make([]*dto.NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, dto.ToNotificationDTO(n))
	}
	return out, nil
}
