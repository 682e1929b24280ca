package migration

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var scripts embed.FS

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

func NewGooseStrategy(driver string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		driver: driver,
		logger: log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) dialect() string {
	if s.driver == "sqlite" {
		return "sqlite3"
	}
	return "mysql"
}

func (s *GooseStrategy) dir() string {
	if s.driver == "sqlite" {
		return "scripts/sqlite"
	}
	return "scripts/mysql"
}

// with configures goose for this driver and runs fn under the package lock.
func (s *GooseStrategy) with(fn func(dir string) error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	goose.SetLogger(&gooseLogger{log: s.logger})
	if err := goose.SetDialect(s.dialect()); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return fn(s.dir())
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.with(func(dir string) error {
		currentVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}

		if err := goose.Up(sqlDB, dir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		finalVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		s.logger.Infow("migration completed successfully",
			"from_version", currentVersion,
			"to_version", finalVersion)
		return nil
	})
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.with(func(dir string) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, dir); err != nil {
				s.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		s.logger.Infow("down migration completed successfully", "steps", steps)
		return nil
	})
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var version int64
	err = s.with(func(string) error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// Status logs the applied and pending state of every script.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.with(func(dir string) error {
		if err := goose.Status(sqlDB, dir); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

// Scripts lists the embedded script names for the driver.
func Scripts(driver string) ([]string, error) {
	s := &GooseStrategy{driver: driver}
	return fs.Glob(scripts, s.dir()+"/*.sql")
}

// AutoMigrateStrategy derives the schema from the gorm models. Development only.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "models_count", len(all))
	return nil
}

type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
