package http

import (
	"github.com/mif-gmao/gmao/internal/infrastructure/repository"
	"github.com/mif-gmao/gmao/internal/shared/db"
)

type repositories struct {
	txMgr        *db.TransactionManager
	intervention *repository.InterventionRepository
	history      *repository.HistoryRepository
	planning     *repository.PlanningRepository
	equipment    *repository.EquipmentRepository
	technician   *repository.TechnicianRepository
	user         *repository.UserRepository
	notification *repository.NotificationRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		txMgr:        db.NewTransactionManager(c.db),
		intervention: repository.NewInterventionRepository(c.db),
		history:      repository.NewHistoryRepository(c.db),
		planning:     repository.NewPlanningRepository(c.db),
		equipment:    repository.NewEquipmentRepository(c.db),
		technician:   repository.NewTechnicianRepository(c.db),
		user:         repository.NewUserRepository(c.db),
		notification: repository.NewNotificationRepository(c.db),
	}
}
