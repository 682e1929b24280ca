// Package bootstrap loads configuration, logging, timezone and database for CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/infrastructure/config"
	"github.com/mif-gmao/gmao/internal/infrastructure/database"
	"github.com/mif-gmao/gmao/internal/infrastructure/migration"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// Options are the persistent flags of the root command.
type Options struct {
	ConfigPath string
	Env        string
}

type Runtime struct {
	Config *config.Config
	Log    logger.Interface
	DB     *gorm.DB
}

// Init loads the configuration and opens the database. Callers must Close the runtime.
func Init(opts *Options) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Scheduler.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Runtime{Config: cfg, Log: log, DB: database.Get()}, nil
}

// Migrate applies pending schema changes with the configured strategy.
func (r *Runtime) Migrate() error {
	mgr := migration.NewManager(r.Config.Database.Migration, r.Config.Database.Driver, r.Log)
	if err := mgr.Migrate(r.DB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (r *Runtime) Close() {
	if err := database.Close(); err != nil {
		r.Log.Warnw("failed to close database", "error", err)
	}
}
