package notifier

import (
	"context"

	appnotification "github.com/mif-gmao/gmao/internal/application/notification"
	"github.com/mif-gmao/gmao/internal/domain/notification"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// LogDispatcher writes notifications to the application log. It is the
// default channel for development.
type LogDispatcher struct {
	logger logger.Interface
}

func NewLogDispatcher(logger logger.Interface) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Notify(_ context.Context, recipient appnotification.Recipient, n *notification.Notification) error {
	d.logger.Infow("notification",
		"to", recipient.Email,
		"user_id", recipient.UserID,
		"type", n.Type(),
		"subject", n.Subject(),
		"content", n.Content(),
	)
	return nil
}
