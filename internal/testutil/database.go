// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mif-gmao/gmao/internal/infrastructure/persistence/models"
)

var dbSeq atomic.Int64

// NewTestDB returns a migrated SQLite in-memory database private to the test.
// A single connection serializes access the way row locks would on MySQL.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:gmao_test_%d?mode=memory&cache=shared&_busy_timeout=5000", dbSeq.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, conn.AutoMigrate(models.All()...))
	return conn
}
