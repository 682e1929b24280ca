package dto

import (
	"time"

	"github.com/mif-gmao/gmao/internal/domain/notification"
)

type NotificationDTO struct {
	ID             uint           `json:"id"`
	UserID         uint           `json:"user_id"`
	InterventionID *uint          `json:"intervention_id,omitempty"`
	Type           string         `json:"type"`
	Channel        string         `json:"channel"`
	Subject        string         `json:"subject,omitempty"`
	Content        string         `json:"content"`
	Status         string         `json:"status"`
	FailureReason  string         `json:"failure_reason,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	SentAt         *time.Time     `json:"sent_at,omitempty"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:             n.ID(),
		UserID:         n.UserID(),
		InterventionID: n.InterventionID(),
		Type:           n.Type().String(),
		Channel:        n.Channel().String(),
		Subject:        n.Subject(),
		Content:        n.Content(),
		Status:         n.Status().String(),
		FailureReason:  n.FailureReason(),
		Metadata:       n.Metadata(),
		CreatedAt:      n.CreatedAt(),
		SentAt:         n.SentAt(),
	}
}
