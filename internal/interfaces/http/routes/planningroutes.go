package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/interfaces/http/handlers"
	"github.com/mif-gmao/gmao/internal/interfaces/http/middleware"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

// PlanningRouteConfig holds dependencies for planning routes.
type PlanningRouteConfig struct {
	PlanningHandler      *handlers.PlanningHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanningRoutes configures planning routes. The generation trigger is
// registered before /:id so it is not captured as an ID.
func SetupPlanningRoutes(engine *gin.Engine, cfg *PlanningRouteConfig) {
	can := cfg.PermissionMiddleware.RequireCapability
	h := cfg.PlanningHandler

	plannings := engine.Group("/plannings")
	plannings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plannings.POST("/generate", can(authorization.CapPlanningGenerate), h.Generate)

		plannings.POST("", can(authorization.CapPlanningManage), h.Create)
		plannings.GET("", can(authorization.CapPlanningRead), h.List)
		plannings.GET("/:id", can(authorization.CapPlanningRead), h.Get)
		plannings.PATCH("/:id", can(authorization.CapPlanningManage), h.Update)
		plannings.DELETE("/:id", can(authorization.CapPlanningManage), h.Delete)
	}
}
