// internal/services/box_service.go
package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
)

// BoxService is the access layer for Android TV boxes.
type BoxService struct {
	db   *gorm.DB
	feed changefeed.Broker
}

type CreateBoxRequest struct {
	Name           string `json:"name" validate:"required"`
	Price          string `json:"price" validate:"required"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	PurchaseURL    string `json:"purchase_url" validate:"required"`
	Specifications string `json:"specifications"`
	IsAvailable    *bool  `json:"is_available,omitempty"`
}

type UpdateBoxRequest struct {
	Name           *string `json:"name,omitempty"`
	Price          *string `json:"price,omitempty"`
	Description    *string `json:"description,omitempty"`
	ImageURL       *string `json:"image_url,omitempty"`
	PurchaseURL    *string `json:"purchase_url,omitempty"`
	Specifications *string `json:"specifications,omitempty"`
	IsAvailable    *bool   `json:"is_available,omitempty"`
}

func NewBoxService(db *gorm.DB, feed changefeed.Broker) *BoxService {
	return &BoxService{db: db, feed: feed}
}

func (s *BoxService) List() []models.AndroidBox {
	if s.db == nil {
		return []models.AndroidBox{}
	}

	var boxes []models.AndroidBox
	if err := s.db.Order("created_at DESC").Find(&boxes).Error; err != nil {
		logCatalogError("listAndroidBoxes", err, nil)
		return []models.AndroidBox{}
	}
	return boxes
}

func (s *BoxService) Get(id string) *models.AndroidBox {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("getAndroidBox", id)
	if !ok {
		return nil
	}

	var box models.AndroidBox
	if err := s.db.First(&box, "id = ?", recordID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logCatalogError("getAndroidBox", err, logrus.Fields{"id": id})
		}
		return nil
	}
	return &box
}

func (s *BoxService) Create(req *CreateBoxRequest) *models.AndroidBox {
	if s.db == nil {
		logValidationFailure("saveAndroidBox", "catalog service not configured")
		return nil
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		logValidationFailure("saveAndroidBox", "box name is required")
		return nil
	}
	price := strings.TrimSpace(req.Price)
	if price == "" {
		logValidationFailure("saveAndroidBox", "price is required")
		return nil
	}
	purchaseURL := strings.TrimSpace(req.PurchaseURL)
	if purchaseURL == "" {
		logValidationFailure("saveAndroidBox", "purchase URL is required")
		return nil
	}

	// Availability defaults to true when the caller leaves it unset.
	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	box := models.AndroidBox{
		Name:           name,
		Price:          price,
		Description:    strings.TrimSpace(req.Description),
		ImageURL:       orDefault(req.ImageURL, models.BoxPlaceholderImage),
		PurchaseURL:    purchaseURL,
		Specifications: strings.TrimSpace(req.Specifications),
		IsAvailable:    isAvailable,
	}

	if err := s.db.Create(&box).Error; err != nil {
		logCatalogError("saveAndroidBox", err, logrus.Fields{"name": name})
		return nil
	}

	publishChange(s.feed, models.TableBoxes)
	return &box
}

func (s *BoxService) Update(id string, req *UpdateBoxRequest) *models.AndroidBox {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("updateAndroidBox", id)
	if !ok {
		return nil
	}

	var existing models.AndroidBox
	if err := s.db.First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("updateAndroidBox", "no box found with the given id")
		} else {
			logCatalogError("updateAndroidBox", err, logrus.Fields{"id": id})
		}
		return nil
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			logValidationFailure("updateAndroidBox", "name cannot be empty")
			return nil
		}
		updates["name"] = name
	}
	if req.Price != nil {
		price := strings.TrimSpace(*req.Price)
		if price == "" {
			logValidationFailure("updateAndroidBox", "price cannot be empty")
			return nil
		}
		updates["price"] = price
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		updates["image_url"] = orDefault(*req.ImageURL, models.BoxPlaceholderImage)
	}
	if req.PurchaseURL != nil {
		purchaseURL := strings.TrimSpace(*req.PurchaseURL)
		if purchaseURL == "" {
			logValidationFailure("updateAndroidBox", "purchase URL cannot be empty")
			return nil
		}
		updates["purchase_url"] = purchaseURL
	}
	if req.Specifications != nil {
		updates["specifications"] = strings.TrimSpace(*req.Specifications)
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	if len(updates) == 0 {
		return &existing
	}

	result := s.db.Model(&models.AndroidBox{}).Where("id = ?", recordID).Updates(updates)
	if result.Error != nil {
		logCatalogError("updateAndroidBox", result.Error, logrus.Fields{"id": id})
		return nil
	}
	if result.RowsAffected == 0 {
		return &existing
	}

	publishChange(s.feed, models.TableBoxes)

	var updated models.AndroidBox
	if err := s.db.First(&updated, "id = ?", recordID).Error; err != nil {
		logCatalogError("updateAndroidBox", err, logrus.Fields{"id": id})
		return &existing
	}
	return &updated
}

func (s *BoxService) Delete(id string) bool {
	if s.db == nil {
		return false
	}
	recordID, ok := parseRecordID("deleteAndroidBox", id)
	if !ok {
		return false
	}

	var existing models.AndroidBox
	if err := s.db.Select("id", "name").First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("deleteAndroidBox", "no box found with the given id")
		} else {
			logCatalogError("deleteAndroidBox", err, logrus.Fields{"id": id})
		}
		return false
	}

	if err := s.db.Delete(&models.AndroidBox{}, "id = ?", recordID).Error; err != nil {
		logCatalogError("deleteAndroidBox", err, logrus.Fields{"id": id, "name": existing.Name})
		return false
	}

	publishChange(s.feed, models.TableBoxes)
	return true
}
