// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/technsat/storefront/internal/config"
	"github.com/technsat/storefront/internal/models"
)

// Initialize connects to the hosted catalog service. When the service is not
// configured it returns (nil, nil) and the caller runs degraded: empty
// listings, default settings, no persistence.
func Initialize(cfg config.CatalogConfig) (*gorm.DB, error) {
	if !cfg.Configured() {
		logrus.Warn("Catalog service not configured, running degraded")
		return nil, nil
	}

	var gormConfig *gorm.Config
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog service: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping catalog service: %w", err)
	}

	logrus.Info("Catalog service connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing catalog connection")
	} else {
		logrus.Info("Catalog connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	logrus.Info("Running catalog migrations")

	err := db.AutoMigrate(
		&models.IPTVOffer{},
		&models.AndroidBox{},
		&models.SatelliteReceiver{},
		&models.Accessory{},
		&models.ServiceSettings{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Catalog migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	// Listings always render newest first.
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_iptv_offers_created_at ON iptv_offers(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_android_boxes_created_at ON android_boxes(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_satellite_receivers_created_at ON satellite_receivers(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_accessories_created_at ON accessories(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_accessories_category ON accessories(category)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
		}
	}

	return nil
}

// SeedInitialData creates the settings singleton on first boot.
func SeedInitialData(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	var count int64
	if err := db.Model(&models.ServiceSettings{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count service settings: %w", err)
	}

	if count == 0 {
		settings := models.DefaultServiceSettings()
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed service settings: %w", err)
		}
		logrus.Info("Default service settings created")
	}

	return nil
}
