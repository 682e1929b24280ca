package http

import (
	"context"
	"errors"

	planningDto "github.com/mif-gmao/gmao/internal/application/planning/dto"
	"github.com/mif-gmao/gmao/internal/interfaces/http/handlers"
)

type allHandlers struct {
	intervention *handlers.InterventionHandler
	planning     *handlers.PlanningHandler
	equipment    *handlers.EquipmentHandler
	technician   *handlers.TechnicianHandler
	notification *handlers.NotificationHandler
	health       *handlers.HealthHandler
}

// BatchRunner runs one generation pass and reports its outcome.
type BatchRunner interface {
	Run(ctx context.Context) (*planningDto.GenerationResultDTO, error)
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		intervention: handlers.NewInterventionHandler(
			ucs.createIntervention,
			ucs.changeStatus,
			ucs.assignTechnician,
			ucs.addHistory,
			ucs.getIntervention,
			ucs.listInterventions,
			ucs.listHistory,
			c.log,
		),
		planning: handlers.NewPlanningHandler(
			ucs.createPlanning,
			ucs.updatePlanning,
			ucs.deletePlanning,
			ucs.listPlannings,
			ucs.getPlanning,
			ucs.generateInterventions,
			c.log,
		),
		equipment: handlers.NewEquipmentHandler(
			ucs.createEquipment,
			ucs.getEquipment,
			ucs.listEquipment,
			ucs.canDeleteEquipment,
			ucs.deleteEquipment,
			c.log,
		),
		technician:   handlers.NewTechnicianHandler(ucs.createTechnician, ucs.listTechnicians, ucs.deleteTechnician, c.log),
		notification: handlers.NewNotificationHandler(ucs.listNotifications, ucs.sendNotification, c.log),
		health:       handlers.NewHealthHandler(dbPinger{c}, c.version),
	}
}

type dbPinger struct {
	c *Container
}

func (p dbPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.c.db.DB()
	if err != nil {
		return err
	}
	if sqlDB == nil {
		return errors.New("database not initialized")
	}
	return sqlDB.PingContext(ctx)
}
