// Package http wires repositories, use cases and handlers into a gin engine.
package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/infrastructure/config"
	"github.com/mif-gmao/gmao/internal/infrastructure/scheduler"
	"github.com/mif-gmao/gmao/internal/infrastructure/telemetry"
	"github.com/mif-gmao/gmao/internal/interfaces/http/middleware"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and background services, and shuts them down in reverse order.
type Container struct {
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	version string

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	metrics *telemetry.Metrics

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface, version string) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		version: version,
	}

	c.initInfrastructure()

	if err := c.initAuthorization(); err != nil {
		return nil, err
	}

	c.initUseCases()
	c.initHandlers()

	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// GenerateInterventions exposes the planning generator to the CLI.
func (c *Container) GenerateInterventions() BatchRunner {
	return c.ucs.generateInterventions
}

// StartBackground starts the scheduler when it is enabled.
func (c *Container) StartBackground() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background services and closes Redis.
func (c *Container) Shutdown(_ context.Context) error {
	var errs []error

	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			errs = append(errs, err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
