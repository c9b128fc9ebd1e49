// internal/services/accessory_service.go
package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
)

// AccessoryService is the access layer for accessories. Accessories carry a
// free-form category label used by the storefront category filter.
type AccessoryService struct {
	db   *gorm.DB
	feed changefeed.Broker
}

type CreateAccessoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PurchaseURL string `json:"purchase_url" validate:"required"`
	Category    string `json:"category" validate:"required"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}

type UpdateAccessoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	PurchaseURL *string `json:"purchase_url,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

func NewAccessoryService(db *gorm.DB, feed changefeed.Broker) *AccessoryService {
	return &AccessoryService{db: db, feed: feed}
}

func (s *AccessoryService) List() []models.Accessory {
	if s.db == nil {
		return []models.Accessory{}
	}

	var accessories []models.Accessory
	if err := s.db.Order("created_at DESC").Find(&accessories).Error; err != nil {
		logCatalogError("listAccessories", err, nil)
		return []models.Accessory{}
	}
	return accessories
}

func (s *AccessoryService) Get(id string) *models.Accessory {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("getAccessory", id)
	if !ok {
		return nil
	}

	var accessory models.Accessory
	if err := s.db.First(&accessory, "id = ?", recordID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logCatalogError("getAccessory", err, logrus.Fields{"id": id})
		}
		return nil
	}
	return &accessory
}

func (s *AccessoryService) Create(req *CreateAccessoryRequest) *models.Accessory {
	if s.db == nil {
		logValidationFailure("saveAccessory", "catalog service not configured")
		return nil
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		logValidationFailure("saveAccessory", "accessory name is required")
		return nil
	}
	price := strings.TrimSpace(req.Price)
	if price == "" {
		logValidationFailure("saveAccessory", "price is required")
		return nil
	}
	purchaseURL := strings.TrimSpace(req.PurchaseURL)
	if purchaseURL == "" {
		logValidationFailure("saveAccessory", "purchase URL is required")
		return nil
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		logValidationFailure("saveAccessory", "category is required")
		return nil
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	accessory := models.Accessory{
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(req.Description),
		ImageURL:    orDefault(req.ImageURL, models.AccessoryPlaceholderImage),
		PurchaseURL: purchaseURL,
		Category:    category,
		IsAvailable: isAvailable,
	}

	if err := s.db.Create(&accessory).Error; err != nil {
		logCatalogError("saveAccessory", err, logrus.Fields{"name": name})
		return nil
	}

	publishChange(s.feed, models.TableAccessories)
	return &accessory
}

func (s *AccessoryService) Update(id string, req *UpdateAccessoryRequest) *models.Accessory {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("updateAccessory", id)
	if !ok {
		return nil
	}

	var existing models.Accessory
	if err := s.db.First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("updateAccessory", "no accessory found with the given id")
		} else {
			logCatalogError("updateAccessory", err, logrus.Fields{"id": id})
		}
		return nil
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			logValidationFailure("updateAccessory", "name cannot be empty")
			return nil
		}
		updates["name"] = name
	}
	if req.Price != nil {
		price := strings.TrimSpace(*req.Price)
		if price == "" {
			logValidationFailure("updateAccessory", "price cannot be empty")
			return nil
		}
		updates["price"] = price
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		updates["image_url"] = orDefault(*req.ImageURL, models.AccessoryPlaceholderImage)
	}
	if req.PurchaseURL != nil {
		purchaseURL := strings.TrimSpace(*req.PurchaseURL)
		if purchaseURL == "" {
			logValidationFailure("updateAccessory", "purchase URL cannot be empty")
			return nil
		}
		updates["purchase_url"] = purchaseURL
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			logValidationFailure("updateAccessory", "category cannot be empty")
			return nil
		}
		updates["category"] = category
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	if len(updates) == 0 {
		return &existing
	}

	result := s.db.Model(&models.Accessory{}).Where("id = ?", recordID).Updates(updates)
	if result.Error != nil {
		logCatalogError("updateAccessory", result.Error, logrus.Fields{"id": id})
		return nil
	}
	if result.RowsAffected == 0 {
		return &existing
	}

	publishChange(s.feed, models.TableAccessories)

	var updated models.Accessory
	if err := s.db.First(&updated, "id = ?", recordID).Error; err != nil {
		logCatalogError("updateAccessory", err, logrus.Fields{"id": id})
		return &existing
	}
	return &updated
}

func (s *AccessoryService) Delete(id string) bool {
	if s.db == nil {
		return false
	}
	recordID, ok := parseRecordID("deleteAccessory", id)
	if !ok {
		return false
	}

	var existing models.Accessory
	if err := s.db.Select("id", "name").First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("deleteAccessory", "no accessory found with the given id")
		} else {
			logCatalogError("deleteAccessory", err, logrus.Fields{"id": id})
		}
		return false
	}

	if err := s.db.Delete(&models.Accessory{}, "id = ?", recordID).Error; err != nil {
		logCatalogError("deleteAccessory", err, logrus.Fields{"id": id, "name": existing.Name})
		return false
	}

	publishChange(s.feed, models.TableAccessories)
	return true
}

// Categories returns the distinct category labels currently in use, for the
// storefront filter control.
func (s *AccessoryService) Categories() []string {
	if s.db == nil {
		return []string{}
	}

	var categories []string
	if err := s.db.Model(&models.Accessory{}).Distinct("category").
		Order("category").Pluck("category", &categories).Error; err != nil {
		logCatalogError("listAccessoryCategories", err, nil)
		return []string{}
	}
	return categories
}
