package models

// InterventionModel is the persistence shape of an intervention.
// Timestamps are unix milliseconds in UTC.
type InterventionModel struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	Type         string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	Priority     string `gorm:"size:20;not null"`
	Urgent       bool   `gorm:"not null;default:false"`
	DueDate      *int64
	ClosedAt     *int64
	TechnicianID *uint `gorm:"index"`
	EquipmentID  *uint `gorm:"index"`
	Version      int   `gorm:"not null;default:1"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (InterventionModel) TableName() string {
	return "interventions"
}

// InterventionHistoryModel rows are inserted once and never updated.
type InterventionHistoryModel struct {
	ID             uint   `gorm:"primaryKey"`
	InterventionID uint   `gorm:"not null;index"`
	Status         string `gorm:"size:20;not null"`
	Remark         string `gorm:"type:text"`
	PrincipalID    uint   `gorm:"not null;index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (InterventionHistoryModel) TableName() string {
	return "intervention_history"
}
