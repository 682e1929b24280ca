package mappers

import (
	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

func EquipmentToModel(e *equipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:                      e.ID(),
		Name:                    e.Name(),
		Kind:                    e.Kind(),
		Location:                e.Location(),
		MaintenanceIntervalDays: e.MaintenanceIntervalDays(),
		CreatedAt:               toMillis(e.CreatedAt()),
	}
}

func EquipmentToDomain(m *models.EquipmentModel) *equipment.Equipment {
	return equipment.ReconstructEquipment(m.ID, m.Name, m.Kind, m.Location, m.MaintenanceIntervalDays, fromMillis(m.CreatedAt))
}

func TechnicianToModel(t *technician.Technician) *models.TechnicianModel {
	return &models.TechnicianModel{
		ID:        t.ID(),
		UserID:    t.UserID(),
		Team:      t.Team(),
		Available: t.Available(),
		CreatedAt: toMillis(t.CreatedAt()),
	}
}

func TechnicianToDomain(m *models.TechnicianModel) *technician.Technician {
	return technician.ReconstructTechnician(m.ID, m.UserID, m.Team, m.Available, fromMillis(m.CreatedAt))
}

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Email:     u.Email(),
		FullName:  u.FullName(),
		Role:      u.Role().String(),
		Active:    u.Active(),
		CreatedAt: toMillis(u.CreatedAt()),
	}
}

func UserToDomain(m *models.UserModel) *user.User {
	role, _ := authorization.ParseRole(m.Role)
	return user.ReconstructUser(m.ID, m.Email, m.FullName, role, m.Active, fromMillis(m.CreatedAt))
}
