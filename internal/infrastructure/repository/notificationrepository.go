package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/domain/notification"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/mappers"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/db"
)

// MaxNotificationPage caps list queries.
const MaxNotificationPage = 200

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model, err := mappers.NotificationToModel(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return n.SetID(model.ID)
}

func (r *NotificationRepository) UpdateDelivery(ctx context.Context, n *notification.Notification) error {
	model, err := mappers.NotificationToModel(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	err = db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"status":         model.Status,
			"failure_reason": model.FailureReason,
			"sent_at":        model.SentAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update notification %d: %w", model.ID, err)
	}
	return nil
}

func (r *NotificationRepository) List(ctx context.Context, filter notification.Filter) ([]*notification.Notification, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.InterventionID != nil {
		q = q.Where("intervention_id = ?", *filter.InterventionID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > MaxNotificationPage {
		limit = MaxNotificationPage
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var rows []models.NotificationModel
	if err := q.Order("id DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	out := make([]*notification.Notification, 0, len(rows))
	for idx := range rows {
		out = append(out, mappers.NotificationToDomain(&rows[idx]))
	}
	return out, nil
}
