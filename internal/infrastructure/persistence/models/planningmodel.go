package models

type PlanningModel struct {
	ID                uint   `gorm:"primaryKey"`
	EquipmentID       uint   `gorm:"not null;index"`
	Frequency         string `gorm:"size:20;not null"`
	NextDueDate       int64  `gorm:"not null;index"`
	LastGeneratedDate *int64
	Remarks           string `gorm:"type:text"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PlanningModel) TableName() string {
	return "plannings"
}
