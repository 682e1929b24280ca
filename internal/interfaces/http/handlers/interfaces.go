package handlers

import (
	"context"

	equipmentUsecases "github.com/mif-gmao/gmao/internal/application/equipment/usecases"
	notificationDto "github.com/mif-gmao/gmao/internal/application/notification/dto"
	notificationUsecases "github.com/mif-gmao/gmao/internal/application/notification/usecases"
	planningDto "github.com/mif-gmao/gmao/internal/application/planning/dto"
	planningUsecases "github.com/mif-gmao/gmao/internal/application/planning/usecases"
	technicianUsecases "github.com/mif-gmao/gmao/internal/application/technician/usecases"
)

type CreatePlanningExecutor interface {
	Execute(ctx context.Context, cmd planningUsecases.CreatePlanningCommand) (*planningDto.PlanningDTO, error)
}

type UpdatePlanningExecutor interface {
	Execute(ctx context.Context, cmd planningUsecases.UpdatePlanningCommand) (*planningDto.PlanningDTO, error)
}

type DeletePlanningExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type ListPlanningsExecutor interface {
	Execute(ctx context.Context, equipmentID *uint) ([]*planningDto.PlanningDTO, error)
}

type GetPlanningExecutor interface {
	Execute(ctx context.Context, id uint) (*planningDto.PlanningDTO, error)
}

type GenerationRunner interface {
	Run(ctx context.Context) (*planningDto.GenerationResultDTO, error)
}

type CreateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd equipmentUsecases.CreateEquipmentCommand) (*equipmentUsecases.EquipmentDTO, error)
}

type GetEquipmentExecutor interface {
	Execute(ctx context.Context, id uint) (*equipmentUsecases.EquipmentDTO, error)
}

type ListEquipmentExecutor interface {
	Execute(ctx context.Context) ([]*equipmentUsecases.EquipmentDTO, error)
}

type CanDeleteEquipmentExecutor interface {
	Execute(ctx context.Context, id uint) (bool, error)
}

type DeleteExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type CreateTechnicianExecutor interface {
	Execute(ctx context.Context, cmd technicianUsecases.CreateTechnicianCommand) (*technicianUsecases.TechnicianDTO, error)
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context) ([]*technicianUsecases.TechnicianDTO, error)
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query notificationUsecases.ListNotificationsQuery) ([]*notificationDto.NotificationDTO, error)
}

type SendNotificationExecutor interface {
	Execute(ctx context.Context, cmd notificationUsecases.SendNotificationCommand) (*notificationDto.NotificationDTO, error)
}
