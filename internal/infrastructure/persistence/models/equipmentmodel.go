package models

type EquipmentModel struct {
	ID                      uint   `gorm:"primaryKey"`
	Name                    string `gorm:"uniqueIndex;size:150;not null"`
	Kind                    string `gorm:"size:100"`
	Location                string `gorm:"size:150"`
	MaintenanceIntervalDays *int
	CreatedAt               int64 `gorm:"autoCreateTime:milli;not null"`
}

func (EquipmentModel) TableName() string {
	return "equipments"
}

type TechnicianModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Team      string `gorm:"size:100"`
	Available bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TechnicianModel) TableName() string {
	return "technicians"
}

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	FullName  string `gorm:"size:150"`
	Role      string `gorm:"size:20;not null;index"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
