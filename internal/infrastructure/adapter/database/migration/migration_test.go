package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/model"
)

func TestMigrationManager_MigrateAll(t *testing.T) {
	testDB := database.NewTestDBManager(t, logger.NewNoopLogger())
	db := testDB.Manager.DB()
	mgr := testDB.Manager.MigrationManager()
	ctx := context.Background()

	version, err := mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&model.Receipt{}))
	assert.True(t, migrator.HasTable(&model.User{}))
	assert.True(t, migrator.HasIndex(&model.Receipt{}, "idx_receipts_status"))
	assert.True(t, migrator.HasIndex(&model.Receipt{}, "idx_receipts_created_at"))
	assert.True(t, migrator.HasIndex(&model.User{}, "idx_users_email"))

	t.Run("running again is a no-op", func(t *testing.T) {
		require.NoError(t, mgr.MigrateAll(ctx))
		assert.Equal(t, int64(1), testDB.CountRows(t, "migration_versions"))
	})

	t.Run("upgrades from 1.0.0", func(t *testing.T) {
		require.NoError(t, db.Create(&model.MigrationVersion{
			Version:   "1.0.0",
			AppliedAt: testDB.TimeProvider.Now(),
		}).Error)
		require.NoError(t, db.Exec("INSERT INTO receipts (status, created_at) VALUES ('', ?)", testDB.TimeProvider.Now()).Error)

		require.NoError(t, mgr.MigrateAll(ctx))

		var status string
		require.NoError(t, db.Raw("SELECT status FROM receipts ORDER BY id DESC LIMIT 1").Scan(&status).Error)
		assert.Equal(t, "processing", status)

		version, err := mgr.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)
	})
}
