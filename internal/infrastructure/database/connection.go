// Package database opens the gorm connection for the configured driver.
package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mif-gmao/gmao/internal/shared/config"
	appLogger "github.com/mif-gmao/gmao/internal/shared/logger"
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Open connects to MySQL or SQLite according to cfg.Driver and configures the pool.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormLogger := logger.New(
		&filteredLogger{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN() + "?_foreign_keys=on&_busy_timeout=5000")
	default:
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.GetDSN(),
			SkipInitializeWithVersion: true,
		})
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// SQLite serializes writers; a single connection keeps row locks meaningful.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// Init opens the process-wide connection.
func Init(cfg *config.DatabaseConfig) error {
	conn, err := Open(cfg)
	if err != nil {
		return err
	}

	dbMu.Lock()
	db = conn
	dbMu.Unlock()

	appLogger.Get().Info("database connection established",
		"driver", cfg.Driver,
		"database", cfg.Database)
	return nil
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Get().Info("database connection closed")
	return nil
}

type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "information_schema.schemata") || strings.Contains(lower, "select version()") {
		return
	}

	switch {
	case strings.Contains(lower, "[error]"):
		appLogger.Get().Error("database error", "details", msg)
	case strings.Contains(lower, "slow sql"):
		appLogger.Get().Warn("slow query", "details", msg)
	default:
		appLogger.Get().Debug("database query", "details", msg)
	}
}
