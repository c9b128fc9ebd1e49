// internal/services/testdb_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/technsat/storefront/internal/models"
)

// newTestDB opens a private in-memory database with the catalog schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.IPTVOffer{},
		&models.AndroidBox{},
		&models.SatelliteReceiver{},
		&models.Accessory{},
		&models.ServiceSettings{},
		&models.AuditLog{},
	))

	return db
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
