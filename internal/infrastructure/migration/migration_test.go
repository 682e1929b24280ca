package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mif-gmao/gmao/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "gmao.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

var schemaTables = []string{
	"users", "equipments", "technicians", "interventions",
	"intervention_history", "plannings", "notifications",
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openSQLite(t)
	s := NewGooseStrategy("sqlite", logger.NewNopLogger())

	require.NoError(t, NewManagerWithStrategy(s, logger.NewNopLogger()).Migrate(db))
	for _, table := range schemaTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, err := s.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Re-running is a no-op.
	require.NoError(t, s.Migrate(db))

	require.NoError(t, s.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("interventions"))
}

func TestAutoMigrateStrategy(t *testing.T) {
	db := openSQLite(t)

	m := NewManager("auto", "sqlite", logger.NewNopLogger())
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())
	require.NoError(t, m.Migrate(db))

	for _, table := range schemaTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestScripts_BothDriversShipTheSameVersions(t *testing.T) {
	mysql, err := Scripts("mysql")
	require.NoError(t, err)
	lite, err := Scripts("sqlite")
	require.NoError(t, err)

	require.NotEmpty(t, mysql)
	require.Len(t, lite, len(mysql))
	for i := range mysql {
		assert.Equal(t, filepath.Base(mysql[i]), filepath.Base(lite[i]))
	}
}
