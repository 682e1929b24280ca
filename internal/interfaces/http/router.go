package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mif-gmao/gmao/docs"
	"github.com/mif-gmao/gmao/internal/interfaces/http/middleware"
	"github.com/mif-gmao/gmao/internal/interfaces/http/routes"
)

//go:generate swag init -d ../../../ -g internal/interfaces/http/router.go -o ../../../docs

// @title GMAO API
// @version 1.0
// @description Maintenance intervention lifecycle, preventive planning and notifications.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

// SetupRoutes installs the middleware chain and every route group.
func (c *Container) SetupRoutes() {
	e := c.engine

	e.Use(middleware.RequestID())
	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.CustomLogger(c.log))
	if c.cfg.Telemetry.Tracing.Enabled {
		e.Use(middleware.Tracing())
	}
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.Use(middleware.SecurityHeaders())
	if c.rateLimiter != nil {
		e.Use(c.rateLimiter.Limit())
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	e.GET("/health", c.hdlrs.health.Check)
	if c.cfg.Telemetry.Metrics.Enabled {
		path := c.cfg.Telemetry.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		e.GET(path, gin.WrapH(c.metrics.Handler()))
	}

	routes.SetupInterventionRoutes(e, &routes.InterventionRouteConfig{
		InterventionHandler:  c.hdlrs.intervention,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupPlanningRoutes(e, &routes.PlanningRouteConfig{
		PlanningHandler:      c.hdlrs.planning,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupReferenceRoutes(e, &routes.ReferenceRouteConfig{
		EquipmentHandler:     c.hdlrs.equipment,
		TechnicianHandler:    c.hdlrs.technician,
		NotificationHandler:  c.hdlrs.notification,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
