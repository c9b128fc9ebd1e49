// internal/services/receiver_service.go
package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
)

// ReceiverService is the access layer for satellite receivers.
type ReceiverService struct {
	db   *gorm.DB
	feed changefeed.Broker
}

type CreateReceiverRequest struct {
	Name           string `json:"name" validate:"required"`
	Price          string `json:"price" validate:"required"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	PurchaseURL    string `json:"purchase_url" validate:"required"`
	Specifications string `json:"specifications"`
	IsAvailable    *bool  `json:"is_available,omitempty"`
}

type UpdateReceiverRequest struct {
	Name           *string `json:"name,omitempty"`
	Price          *string `json:"price,omitempty"`
	Description    *string `json:"description,omitempty"`
	ImageURL       *string `json:"image_url,omitempty"`
	PurchaseURL    *string `json:"purchase_url,omitempty"`
	Specifications *string `json:"specifications,omitempty"`
	IsAvailable    *bool   `json:"is_available,omitempty"`
}

func NewReceiverService(db *gorm.DB, feed changefeed.Broker) *ReceiverService {
	return &ReceiverService{db: db, feed: feed}
}

func (s *ReceiverService) List() []models.SatelliteReceiver {
	if s.db == nil {
		return []models.SatelliteReceiver{}
	}

	var receivers []models.SatelliteReceiver
	if err := s.db.Order("created_at DESC").Find(&receivers).Error; err != nil {
		logCatalogError("listReceivers", err, nil)
		return []models.SatelliteReceiver{}
	}
	return receivers
}

func (s *ReceiverService) Get(id string) *models.SatelliteReceiver {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("getReceiver", id)
	if !ok {
		return nil
	}

	var receiver models.SatelliteReceiver
	if err := s.db.First(&receiver, "id = ?", recordID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logCatalogError("getReceiver", err, logrus.Fields{"id": id})
		}
		return nil
	}
	return &receiver
}

func (s *ReceiverService) Create(req *CreateReceiverRequest) *models.SatelliteReceiver {
	if s.db == nil {
		logValidationFailure("saveReceiver", "catalog service not configured")
		return nil
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		logValidationFailure("saveReceiver", "receiver name is required")
		return nil
	}
	price := strings.TrimSpace(req.Price)
	if price == "" {
		logValidationFailure("saveReceiver", "price is required")
		return nil
	}
	purchaseURL := strings.TrimSpace(req.PurchaseURL)
	if purchaseURL == "" {
		logValidationFailure("saveReceiver", "purchase URL is required")
		return nil
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	receiver := models.SatelliteReceiver{
		Name:           name,
		Price:          price,
		Description:    strings.TrimSpace(req.Description),
		ImageURL:       orDefault(req.ImageURL, models.ReceiverPlaceholderImage),
		PurchaseURL:    purchaseURL,
		Specifications: strings.TrimSpace(req.Specifications),
		IsAvailable:    isAvailable,
	}

	if err := s.db.Create(&receiver).Error; err != nil {
		logCatalogError("saveReceiver", err, logrus.Fields{"name": name})
		return nil
	}

	publishChange(s.feed, models.TableReceivers)
	return &receiver
}

func (s *ReceiverService) Update(id string, req *UpdateReceiverRequest) *models.SatelliteReceiver {
	if s.db == nil {
		return nil
	}
	recordID, ok := parseRecordID("updateReceiver", id)
	if !ok {
		return nil
	}

	var existing models.SatelliteReceiver
	if err := s.db.First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("updateReceiver", "no receiver found with the given id")
		} else {
			logCatalogError("updateReceiver", err, logrus.Fields{"id": id})
		}
		return nil
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			logValidationFailure("updateReceiver", "name cannot be empty")
			return nil
		}
		updates["name"] = name
	}
	if req.Price != nil {
		price := strings.TrimSpace(*req.Price)
		if price == "" {
			logValidationFailure("updateReceiver", "price cannot be empty")
			return nil
		}
		updates["price"] = price
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		updates["image_url"] = orDefault(*req.ImageURL, models.ReceiverPlaceholderImage)
	}
	if req.PurchaseURL != nil {
		purchaseURL := strings.TrimSpace(*req.PurchaseURL)
		if purchaseURL == "" {
			logValidationFailure("updateReceiver", "purchase URL cannot be empty")
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

	result := s.db.Model(&models.SatelliteReceiver{}).Where("id = ?", recordID).Updates(updates)
	if result.Error != nil {
		logCatalogError("updateReceiver", result.Error, logrus.Fields{"id": id})
		return nil
	}
	if result.RowsAffected == 0 {
		return &existing
	}

	publishChange(s.feed, models.TableReceivers)

	var updated models.SatelliteReceiver
	if err := s.db.First(&updated, "id = ?", recordID).Error; err != nil {
		logCatalogError("updateReceiver", err, logrus.Fields{"id": id})
		return &existing
	}
	return &updated
}

func (s *ReceiverService) Delete(id string) bool {
	if s.db == nil {
		return false
	}
	recordID, ok := parseRecordID("deleteReceiver", id)
	if !ok {
		return false
	}

	var existing models.SatelliteReceiver
	if err := s.db.Select("id", "name").First(&existing, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logValidationFailure("deleteReceiver", "no receiver found with the given id")
		} else {
			logCatalogError("deleteReceiver", err, logrus.Fields{"id": id})
		}
		return false
	}

	if err := s.db.Delete(&models.SatelliteReceiver{}, "id = ?", recordID).Error; err != nil {
		logCatalogError("deleteReceiver", err, logrus.Fields{"id": id, "name": existing.Name})
		return false
	}

	publishChange(s.feed, models.TableReceivers)
	return true
}
