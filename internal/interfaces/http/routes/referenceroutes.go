package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/interfaces/http/handlers"
	"github.com/mif-gmao/gmao/internal/interfaces/http/middleware"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

// ReferenceRouteConfig holds dependencies for equipment, technician and
// notification routes.
type ReferenceRouteConfig struct {
	EquipmentHandler     *handlers.EquipmentHandler
	TechnicianHandler    *handlers.TechnicianHandler
	NotificationHandler  *handlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReferenceRoutes(engine *gin.Engine, cfg *ReferenceRouteConfig) {
	can := cfg.PermissionMiddleware.RequireCapability
	auth := cfg.AuthMiddleware.RequireAuth()

	equipments := engine.Group("/equipments")
	equipments.Use(auth)
	{
		equipments.POST("", can(authorization.CapEquipmentManage), cfg.EquipmentHandler.Create)
		equipments.GET("", can(authorization.CapEquipmentRead), cfg.EquipmentHandler.List)
		equipments.GET("/:id", can(authorization.CapEquipmentRead), cfg.EquipmentHandler.Get)
		equipments.GET("/:id/deletable", can(authorization.CapEquipmentRead), cfg.EquipmentHandler.CanDelete)
		equipments.DELETE("/:id", can(authorization.CapEquipmentDelete), cfg.EquipmentHandler.Delete)
	}

	technicians := engine.Group("/technicians")
	technicians.Use(auth)
	{
		technicians.POST("", can(authorization.CapTechnicianManage), cfg.TechnicianHandler.Create)
		technicians.GET("", can(authorization.CapInterventionRead), cfg.TechnicianHandler.List)
		technicians.DELETE("/:id", can(authorization.CapTechnicianManage), cfg.TechnicianHandler.Delete)
	}

	notifications := engine.Group("/notifications")
	notifications.Use(auth)
	{
		notifications.GET("", can(authorization.CapNotificationRead), cfg.NotificationHandler.List)
		notifications.POST("", can(authorization.CapNotificationSend), cfg.NotificationHandler.Send)
	}
}
