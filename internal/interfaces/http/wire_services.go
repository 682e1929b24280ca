package http

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"

	appnotification "github.com/mif-gmao/gmao/internal/application/notification"
	nvo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
	"github.com/mif-gmao/gmao/internal/infrastructure/auth"
	"github.com/mif-gmao/gmao/internal/infrastructure/email"
	"github.com/mif-gmao/gmao/internal/infrastructure/notifier"
	"github.com/mif-gmao/gmao/internal/infrastructure/permission"
	"github.com/mif-gmao/gmao/internal/infrastructure/scheduler"
	"github.com/mif-gmao/gmao/internal/infrastructure/telemetry"
	"github.com/mif-gmao/gmao/internal/infrastructure/template"
	"github.com/mif-gmao/gmao/internal/interfaces/http/middleware"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

const schedulerLockTTL = 10 * time.Minute

// initInfrastructure sets up Redis, repositories, metrics and middlewares.
func (c *Container) initInfrastructure() {
	c.initRedis()
	c.initRepositories()

	c.metrics = telemetry.NewMetrics(c.cfg.Telemetry.Metrics.Enabled)

	jwtSvc := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.repos.user, c.log)

	if c.redis != nil && c.cfg.Server.RateLimit > 0 {
		c.rateLimiter = middleware.NewRateLimiter(c.redis, c.cfg.Server.RateLimit, time.Minute, c.log)
	}
}

// initRedis leaves c.redis nil when Redis is disabled or unreachable.
func (c *Container) initRedis() {
	if !c.cfg.Redis.Enabled {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		c.log.Warnw("redis unavailable, continuing without it",
			"addr", c.cfg.Redis.GetAddr(),
			"error", err)
		_ = client.Close()
		return
	}

	c.redis = client
	c.log.Infow("redis connection established", "addr", c.cfg.Redis.GetAddr())
}

// initAuthorization loads the role grants from the casbin policy store.
func (c *Container) initAuthorization() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}

	if c.cfg.Auth.SeedPolicies {
		added, err := enforcer.SeedCapabilities(authorization.DefaultCapabilities())
		if err != nil {
			return fmt.Errorf("failed to seed permissions: %w", err)
		}
		if added > 0 {
			c.log.Infow("default permissions seeded", "added", added)
		}
	}

	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)
	return nil
}

// newNotificationTrigger routes each notification to email or the log by channel.
func (c *Container) newNotificationTrigger() *appnotification.Trigger {
	channel, err := nvo.ParseChannel(c.cfg.Notification.Channel)
	if err != nil {
		c.log.Warnw("unknown notification channel, using log", "channel", c.cfg.Notification.Channel)
		channel = nvo.ChannelLog
	}

	templates := template.NewNotificationTemplateLoader(c.cfg.Notification.TemplatesPath, c.log)
	if err := templates.Load(); err != nil {
		c.log.Warnw("failed to load notification templates", "error", err)
	}

	mailer := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
	})

	router := notifier.NewChannelRouter().
		Register(nvo.ChannelEmail, notifier.NewEmailDispatcher(mailer, templates, notifier.NewMarkdownRenderer())).
		Register(nvo.ChannelLog, notifier.NewLogDispatcher(c.log))

	return appnotification.NewTrigger(
		c.repos.notification,
		c.repos.user,
		c.repos.technician,
		c.repos.history,
		router,
		c.metrics,
		appnotification.TriggerConfig{
			Channel: channel,
			DryRun:  c.cfg.Notification.DryRun,
		},
		c.log.With("component", "notification.trigger"),
	)
}

// initScheduler registers the planning generator. A Redis locker is used when
// distributed locking is enabled and Redis is reachable.
func (c *Container) initScheduler() error {
	if !c.cfg.Scheduler.Enabled {
		return nil
	}

	var locker gocron.Locker
	if c.cfg.Scheduler.DistributedLock {
		if c.redis == nil {
			c.log.Warnw("distributed scheduler lock requested without redis, running unlocked")
		} else {
			locker = scheduler.NewRedisLocker(c.redis, "gmao:scheduler:", schedulerLockTTL)
		}
	}

	mgr, err := scheduler.NewSchedulerManager(c.log.With("component", "scheduler"), locker)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := mgr.RegisterPlanningGeneration(c.ucs.generateInterventions, c.cfg.Scheduler.GenerationInterval); err != nil {
		return fmt.Errorf("failed to register planning generation: %w", err)
	}

	c.schedulerManager = mgr
	return nil
}
