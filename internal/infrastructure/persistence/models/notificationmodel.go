package models

import "gorm.io/datatypes"

type NotificationModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	InterventionID *uint  `gorm:"index"`
	Type           string `gorm:"size:20;not null"`
	Channel        string `gorm:"size:10;not null"`
	Subject        string `gorm:"size:200"`
	Content        string `gorm:"type:text;not null"`
	Status         string `gorm:"size:10;not null;index"`
	FailureReason  string `gorm:"size:500"`
	Metadata       datatypes.JSON
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null;index"`
	SentAt         *int64
}

func (NotificationModel) TableName() string {
	return "notifications"
}
