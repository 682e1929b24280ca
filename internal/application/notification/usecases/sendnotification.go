package usecases

import (
	"context"
	"fmt"

	"github.com/mif-gmao/gmao/internal/application/notification/dto"
	"github.com/mif-gmao/gmao/internal/domain/notification"
	vo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	apperrors "github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// Deliverer persists and dispatches a notification.
type Deliverer interface {
	Deliver(ctx context.Context, n *notification.Notification) error
	Channel() vo.Channel
}

type SendNotificationCommand struct {
	UserID         uint
	InterventionID *uint
	Type           string
	Subject        string
	Content        string
}

// SendNotificationUseCase lets an operator send an ad hoc message. The
// delivery outcome is reported in the returned record, not as an error.
type SendNotificationUseCase struct {
	users     user.Repository
	deliverer Deliverer
	logger    logger.Interface
}

func NewSendNotificationUseCase(users user.Repository, deliverer Deliverer, logger logger.Interface) *SendNotificationUseCase {
	return &SendNotificationUseCase{users: users, deliverer: deliverer, logger: logger}
}

func (uc *SendNotificationUseCase) Execute(ctx context.Context, cmd SendNotificationCommand) (*dto.NotificationDTO, error) {
	kind := vo.TypeInformation
	if cmd.Type != "" {
		var err error
		if kind, err = vo.ParseNotificationType(cmd.Type); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	u, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to send notification")
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found", fmt.Sprintf("user_id=%d", cmd.UserID))
	}

	n, err := notification.NewNotification(u.ID(), cmd.InterventionID, kind, uc.deliverer.Channel(),
		cmd.Subject, cmd.Content, map[string]any{"manual": true}, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.deliverer.Deliver(ctx, n); err != nil {
		uc.logger.Errorw("failed to send notification", "user_id", cmd.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to send notification")
	}
	return dto.ToNotificationDTO(n), nil
}
