package dto

import (
	equipmentUsecases "github.com/mif-gmao/gmao/internal/application/equipment/usecases"
	notificationUsecases "github.com/mif-gmao/gmao/internal/application/notification/usecases"
	technicianUsecases "github.com/mif-gmao/gmao/internal/application/technician/usecases"
)

type CreateEquipmentRequest struct {
	Name                    string `json:"name" binding:"required,max=150"`
	Kind                    string `json:"kind" binding:"max=100"`
	Location                string `json:"location" binding:"max=150"`
	MaintenanceIntervalDays *int   `json:"maintenance_interval_days" binding:"omitempty,min=1"`
}

func (r *CreateEquipmentRequest) ToCommand() equipmentUsecases.CreateEquipmentCommand {
	return equipmentUsecases.CreateEquipmentCommand{
		Name:                    r.Name,
		Kind:                    r.Kind,
		Location:                r.Location,
		MaintenanceIntervalDays: r.MaintenanceIntervalDays,
	}
}

type CreateTechnicianRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Team   string `json:"team" binding:"max=100"`
}

func (r *CreateTechnicianRequest) ToCommand() technicianUsecases.CreateTechnicianCommand {
	return technicianUsecases.CreateTechnicianCommand{UserID: r.UserID, Team: r.Team}
}

type SendNotificationRequest struct {
	UserID         uint   `json:"user_id" binding:"required"`
	InterventionID *uint  `json:"intervention_id"`
	Type           string `json:"type"`
	Subject        string `json:"subject" binding:"max=200"`
	Content        string `json:"content" binding:"required"`
}

func (r *SendNotificationRequest) ToCommand() notificationUsecases.SendNotificationCommand {
	return notificationUsecases.SendNotificationCommand{
		UserID:         r.UserID,
		InterventionID: r.InterventionID,
		Type:           r.Type,
		Subject:        r.Subject,
		Content:        r.Content,
	}
}

type ListNotificationsParams struct {
	UserID         *uint `form:"user_id"`
	InterventionID *uint `form:"intervention_id"`
	Limit          int   `form:"limit"`
	Offset         int   `form:"offset"`
}

func (p *ListNotificationsParams) ToQuery() notificationUsecases.ListNotificationsQuery {
	return notificationUsecases.ListNotificationsQuery{
		UserID:         p.UserID,
		InterventionID: p.InterventionID,
		Limit:          p.Limit,
		Offset:         p.Offset,
	}
}
