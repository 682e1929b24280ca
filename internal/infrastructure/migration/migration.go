// Package migration applies the database schema, either from versioned SQL
// scripts through goose or from the gorm models in development.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy by name: "auto" selects gorm AutoMigrate,
// anything else the embedded goose scripts for driver.
func NewManager(name, driver string, log logger.Interface) *Manager {
	var strategy Strategy
	switch strings.ToLower(name) {
	case "auto", "automigrate":
		strategy = NewAutoMigrateStrategy(log)
	default:
		strategy = NewGooseStrategy(driver, log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
