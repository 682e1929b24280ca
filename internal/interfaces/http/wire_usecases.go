package http

import (
	equipmentUsecases "github.com/mif-gmao/gmao/internal/application/equipment/usecases"
	interventionUsecases "github.com/mif-gmao/gmao/internal/application/intervention/usecases"
	notificationUsecases "github.com/mif-gmao/gmao/internal/application/notification/usecases"
	planningUsecases "github.com/mif-gmao/gmao/internal/application/planning/usecases"
	technicianUsecases "github.com/mif-gmao/gmao/internal/application/technician/usecases"
)

type allUseCases struct {
	// Intervention
	createIntervention *interventionUsecases.CreateInterventionUseCase
	changeStatus       *interventionUsecases.ChangeStatusUseCase
	assignTechnician   *interventionUsecases.AssignTechnicianUseCase
	addHistory         *interventionUsecases.AddHistoryUseCase
	getIntervention    *interventionUsecases.GetInterventionUseCase
	listInterventions  *interventionUsecases.ListInterventionsUseCase
	listHistory        *interventionUsecases.ListHistoryUseCase

	// Planning
	createPlanning        *planningUsecases.CreatePlanningUseCase
	updatePlanning        *planningUsecases.UpdatePlanningUseCase
	deletePlanning        *planningUsecases.DeletePlanningUseCase
	listPlannings         *planningUsecases.ListPlanningsUseCase
	getPlanning           *planningUsecases.GetPlanningUseCase
	generateInterventions *planningUsecases.GenerateInterventionsUseCase

	// Reference data
	createEquipment    *equipmentUsecases.CreateEquipmentUseCase
	getEquipment       *equipmentUsecases.GetEquipmentUseCase
	listEquipment      *equipmentUsecases.ListEquipmentUseCase
	canDeleteEquipment *equipmentUsecases.CanDeleteEquipmentUseCase
	deleteEquipment    *equipmentUsecases.DeleteEquipmentUseCase
	createTechnician   *technicianUsecases.CreateTechnicianUseCase
	listTechnicians    *technicianUsecases.ListTechniciansUseCase
	deleteTechnician   *technicianUsecases.DeleteTechnicianUseCase

	// Notification
	listNotifications *notificationUsecases.ListNotificationsUseCase
	sendNotification  *notificationUsecases.SendNotificationUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	trigger := c.newNotificationTrigger()
	recorder := interventionUsecases.NewHistoryRecorder(r.history)

	ucs := &allUseCases{}

	ucs.createIntervention = interventionUsecases.NewCreateInterventionUseCase(
		r.intervention, recorder, r.equipment, r.technician, r.txMgr, trigger, log,
	)
	ucs.changeStatus = interventionUsecases.NewChangeStatusUseCase(
		r.intervention, recorder, r.txMgr, trigger, c.metrics, log,
	)
	ucs.assignTechnician = interventionUsecases.NewAssignTechnicianUseCase(
		r.intervention, r.technician, r.txMgr, trigger, log,
	)
	ucs.addHistory = interventionUsecases.NewAddHistoryUseCase(r.intervention, recorder, r.txMgr, log)
	ucs.getIntervention = interventionUsecases.NewGetInterventionUseCase(r.intervention, log)
	ucs.listInterventions = interventionUsecases.NewListInterventionsUseCase(r.intervention, log)
	ucs.listHistory = interventionUsecases.NewListHistoryUseCase(r.intervention, r.history, log)

	ucs.createPlanning = planningUsecases.NewCreatePlanningUseCase(r.planning, r.equipment, log)
	ucs.updatePlanning = planningUsecases.NewUpdatePlanningUseCase(r.planning, r.txMgr, log)
	ucs.deletePlanning = planningUsecases.NewDeletePlanningUseCase(r.planning, log)
	ucs.listPlannings = planningUsecases.NewListPlanningsUseCase(r.planning, log)
	ucs.getPlanning = planningUsecases.NewGetPlanningUseCase(r.planning, log)
	ucs.generateInterventions = planningUsecases.NewGenerateInterventionsUseCase(
		r.planning,
		r.equipment,
		ucs.createIntervention,
		r.txMgr,
		trigger,
		c.metrics,
		c.cfg.Scheduler.SystemPrincipalID,
		log.With("component", "planning.generator"),
	)

	ucs.createEquipment = equipmentUsecases.NewCreateEquipmentUseCase(r.equipment, log)
	ucs.getEquipment = equipmentUsecases.NewGetEquipmentUseCase(r.equipment, log)
	ucs.listEquipment = equipmentUsecases.NewListEquipmentUseCase(r.equipment, log)
	ucs.canDeleteEquipment = equipmentUsecases.NewCanDeleteEquipmentUseCase(r.equipment, r.intervention, log)
	ucs.deleteEquipment = equipmentUsecases.NewDeleteEquipmentUseCase(r.equipment, ucs.canDeleteEquipment, r.txMgr, log)
	ucs.createTechnician = technicianUsecases.NewCreateTechnicianUseCase(r.technician, r.user, log)
	ucs.listTechnicians = technicianUsecases.NewListTechniciansUseCase(r.technician, log)
	ucs.deleteTechnician = technicianUsecases.NewDeleteTechnicianUseCase(r.technician, r.intervention, r.txMgr, log)

	ucs.listNotifications = notificationUsecases.NewListNotificationsUseCase(r.notification, log)
	ucs.sendNotification = notificationUsecases.NewSendNotificationUseCase(r.user, trigger, log)

	c.ucs = ucs
}
