package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/mif-gmao/gmao/internal/domain/notification"
	vo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
)

func NotificationToModel(n *notification.Notification) (*models.NotificationModel, error) {
	meta, err := json.Marshal(n.Metadata())
	if err != nil {
		return nil, err
	}
	return &models.NotificationModel{
		ID:             n.ID(),
		UserID:         n.UserID(),
		InterventionID: n.InterventionID(),
		Type:           n.Type().String(),
		Channel:        n.Channel().String(),
		Subject:        n.Subject(),
		Content:        n.Content(),
		Status:         n.Status().String(),
		FailureReason:  n.FailureReason(),
		Metadata:       datatypes.JSON(meta),
		CreatedAt:      toMillis(n.CreatedAt()),
		SentAt:         toMillisPtr(n.SentAt()),
	}, nil
}

func NotificationToDomain(m *models.NotificationModel) *notification.Notification {
	var meta map[string]any
	if len(m.Metadata) > 0 {
		_ = json.Unmarshal(m.Metadata, &meta)
	}
	return notification.ReconstructNotification(
		m.ID,
		m.UserID,
		m.InterventionID,
		vo.NotificationType(m.Type),
		vo.Channel(m.Channel),
		m.Subject,
		m.Content,
		vo.DeliveryStatus(m.Status),
		m.FailureReason,
		meta,
		fromMillis(m.CreatedAt),
		fromMillisPtr(m.SentAt),
	)
}
