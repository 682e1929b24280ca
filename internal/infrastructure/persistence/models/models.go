// Package models holds the gorm persistence shapes. There are no gorm
// associations; references are plain IDs checked by the application layer.
package models

// All returns every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&EquipmentModel{},
		&TechnicianModel{},
		&InterventionModel{},
		&InterventionHistoryModel{},
		&PlanningModel{},
		&NotificationModel{},
	}
}
