// internal/services/offer_service.go
package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
)

// OfferService is the access layer for IPTV offers. A nil db means the
// catalog service is unconfigured: reads yield empty results, writes yield
// no result, and nothing panics. Expected failures are logged and returned
// as sentinels, never as errors.
type OfferService struct {
	db   *gorm.DB
	feed changefeed.Broker
}

type CreateOfferRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	DownloadURL string `json:"download_url" validate:"required"`
	AppName     string `json:"app_name" validate:"required"`
}

// UpdateOfferRequest is a partial update: nil fields are left untouched, a
// provided-but-empty required field is rejected.
type UpdateOfferRequest struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	DownloadURL *string `json:"download_url,omitempty"`
	AppName     *string `json:"app_name,omitempty"`
}

func NewOfferService(db *gorm.DB, feed changefeed.Broker) *OfferService {
	return &OfferService{db: db, feed: feed}
}

// List returns every offer, newest first. Any failure yields an empty slice.
func (s *OfferService) List() []models.IPTVOffer {
	if s.db == nil {
		return []models.IPTVOffer{}
	}

	var offers []models.IPTVOffer
	if err := s.db.Order("created_at DESC").Find(&offers).Error; err != nil {
		logCatalogError("listOffers", err, nil)
		return []models.IPTVOffer{}
	}
	return offers
}

func (s *OfferService) Get(id string) *models.IPTVOffer {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("getOffer", id)
	if !ok {
		return nil
	}

	var offer models.IPTVOffer
	if err := s.db.First(&offer, "id = ?", recordID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logCatalogError("getOffer", err, logrus.Fields{"id": id})
		}
		return nil
	}
	return &offer
}

func (s *OfferService) Create(req *CreateOfferRequest) *models.IPTVOffer {
	if s.db == nil {
		logValidationFailure("saveOffer", "catalog service not configured")
		return nil
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		logValidationFailure("saveOffer", "name is required")
		return nil
	}
	downloadURL := strings.TrimSpace(req.DownloadURL)
	if downloadURL == "" {
		logValidationFailure("saveOffer", "download URL is required")
		return nil
	}
	appName := strings.TrimSpace(req.AppName)
	if appName == "" {
		logValidationFailure("saveOffer", "app category is required")
		return nil
	}

	offer := models.IPTVOffer{
		Name:        name,
		Price:       strings.TrimSpace(req.Price),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    orDefault(req.ImageURL, models.OfferPlaceholderImage),
		DownloadURL: downloadURL,
		AppName:     appName,
	}

	if err := s.db.Create(&offer).Error; err != nil {
		logCatalogError("saveOffer", err, logrus.Fields{"name": name})
		return nil
	}

	publishChange(s.feed, models.TableOffers)
	return &offer
}

// Update applies a sparse update after confirming the record exists. An empty
// partial is a no-op success; a completed update that affects zero rows
// (identical values) returns the pre-update record.
func (s *OfferService) Update(id string, req *UpdateOfferRequest) *models.IPTVOffer {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("updateOffer", id)
	if !ok {
		return nil
	}

	var existing models.IPTVOffer
	if err := s.db.First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("updateOffer", "no offer found with the given id")
		} else {
			logCatalogError("updateOffer", err, logrus.Fields{"id": id})
		}
		return nil
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			logValidationFailure("updateOffer", "name cannot be empty")
			return nil
		}
		updates["name"] = name
	}
	if req.Price != nil {
		updates["price"] = strings.TrimSpace(*req.Price)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		updates["image_url"] = orDefault(*req.ImageURL, models.OfferPlaceholderImage)
	}
	if req.DownloadURL != nil {
		downloadURL := strings.TrimSpace(*req.DownloadURL)
		if downloadURL == "" {
			logValidationFailure("updateOffer", "download URL cannot be empty")
			return nil
		}
		updates["download_url"] = downloadURL
	}
	if req.AppName != nil {
		appName := strings.TrimSpace(*req.AppName)
		if appName == "" {
			logValidationFailure("updateOffer", "app category cannot be empty")
			return nil
		}
		updates["app_name"] = appName
	}

	if len(updates) == 0 {
		return &existing
	}

	result := s.db.Model(&models.IPTVOffer{}).Where("id = ?", recordID).Updates(updates)
	if result.Error != nil {
		logCatalogError("updateOffer", result.Error, logrus.Fields{"id": id})
		return nil
	}
	if result.RowsAffected == 0 {
		// Values were identical; not an error.
		return &existing
	}

	publishChange(s.feed, models.TableOffers)

	var updated models.IPTVOffer
	if err := s.db.First(&updated, "id = ?", recordID).Error; err != nil {
		logCatalogError("updateOffer", err, logrus.Fields{"id": id})
		return &existing
	}
	return &updated
}

func (s *OfferService) Delete(id string) bool {
	if s.db == nil {
		return false
	}
	recordID, ok := parseRecordID("deleteOffer", id)
	if !ok {
		return false
	}

	var existing models.IPTVOffer
	if err := s.db.Select("id", "name").First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("deleteOffer", "no offer found with the given id")
		} else {
			logCatalogError("deleteOffer", err, logrus.Fields{"id": id})
		}
		return false
	}

	if err := s.db.Delete(&models.IPTVOffer{}, "id = ?", recordID).Error; err != nil {
		logCatalogError("deleteOffer", err, logrus.Fields{"id": id, "name": existing.Name})
		return false
	}

	publishChange(s.feed, models.TableOffers)
	return true
}
