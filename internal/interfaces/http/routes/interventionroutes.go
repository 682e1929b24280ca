package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/interfaces/http/handlers"
	"github.com/mif-gmao/gmao/internal/interfaces/http/middleware"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

// InterventionRouteConfig holds dependencies for intervention routes.
type InterventionRouteConfig struct {
	InterventionHandler  *handlers.InterventionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupInterventionRoutes configures intervention lifecycle routes.
func SetupInterventionRoutes(engine *gin.Engine, cfg *InterventionRouteConfig) {
	can := cfg.PermissionMiddleware.RequireCapability
	h := cfg.InterventionHandler

	interventions := engine.Group("/interventions")
	interventions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		interventions.POST("", can(authorization.CapInterventionCreate), h.Create)
		interventions.GET("", can(authorization.CapInterventionRead), h.List)
		interventions.GET("/:id", can(authorization.CapInterventionRead), h.Get)
		interventions.PATCH("/:id/status", can(authorization.CapInterventionStatus), h.ChangeStatus)
		interventions.PATCH("/:id/technician", can(authorization.CapInterventionAssign), h.AssignTechnician)
		interventions.GET("/:id/history", can(authorization.CapInterventionRead), h.ListHistory)
		interventions.POST("/:id/history", can(authorization.CapHistoryWrite), h.AddHistory)
	}
}
