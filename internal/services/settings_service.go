// internal/services/settings_service.go
package services

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
)

// SettingsService manages the single service settings row. Reads always
// yield a usable value: defaults stand in while the catalog service is
// unconfigured or the row does not exist yet. Save is an upsert that creates
// the row on first write.
type SettingsService struct {
	db   *gorm.DB
	feed changefeed.Broker
}

type SaveSettingsRequest struct {
	ServiceName   *string  `json:"service_name,omitempty"`
	AvailableApps []string `json:"available_apps,omitempty"`
}

func NewSettingsService(db *gorm.DB, feed changefeed.Broker) *SettingsService {
	return &SettingsService{db: db, feed: feed}
}

func (s *SettingsService) Get() models.ServiceSettings {
	if s.db == nil {
		return models.DefaultServiceSettings()
	}

	var settings models.ServiceSettings
	err := s.db.Order("created_at").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultServiceSettings()
	}
	if err != nil {
		logCatalogError("getSettings", err, nil)
		return models.DefaultServiceSettings()
	}
	return settings
}

// Save upserts the settings row. A nil/omitted field keeps its current
// value; a blank service name falls back to the existing one.
func (s *SettingsService) Save(req *SaveSettingsRequest) *models.ServiceSettings {
	if s.db == nil {
		logValidationFailure("saveSettings", "catalog service not configured")
		return nil
	}

	var existing models.ServiceSettings
	err := s.db.Order("created_at").First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logCatalogError("saveSettings", err, nil)
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings := models.ServiceSettings{
			ServiceName:   models.DefaultServiceName,
			AvailableApps: models.DefaultAvailableApps(),
		}
		if req.ServiceName != nil && strings.TrimSpace(*req.ServiceName) != "" {
			settings.ServiceName = strings.TrimSpace(*req.ServiceName)
		}
		if req.AvailableApps != nil {
			settings.AvailableApps = pq.StringArray(req.AvailableApps)
		}

		if err := s.db.Create(&settings).Error; err != nil {
			logCatalogError("saveSettings", err, logrus.Fields{"service_name": settings.ServiceName})
			return nil
		}
		publishChange(s.feed, models.TableSettings)
		return &settings
	}

	if req.ServiceName != nil && strings.TrimSpace(*req.ServiceName) != "" {
		existing.ServiceName = strings.TrimSpace(*req.ServiceName)
	}
	if req.AvailableApps != nil {
		existing.AvailableApps = pq.StringArray(req.AvailableApps)
	}

	if err := s.db.Save(&existing).Error; err != nil {
		logCatalogError("saveSettings", err, logrus.Fields{"service_name": existing.ServiceName})
		return nil
	}

	publishChange(s.feed, models.TableSettings)
	return &existing
}
