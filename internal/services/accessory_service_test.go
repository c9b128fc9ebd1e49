// internal/services/accessory_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
)

func TestAccessoryCreateRequiresCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccessoryService(db, changefeed.NewInert())

	assert.Nil(t, svc.Create(&CreateAccessoryRequest{
		Name:        "HDMI Cable",
		Price:       "15 TND",
		PurchaseURL: "https://shop.example.com/hdmi",
		Category:    "  ",
	}))

	var count int64
	db.Model(&models.Accessory{}).Count(&count)
	assert.Zero(t, count)
}

func TestAccessoryCategories(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccessoryService(db, changefeed.NewInert())

	for _, tc := range []struct{ name, category string }{
		{"HDMI Cable", "cables"},
		{"Ethernet Cable", "cables"},
		{"Air Mouse", "remotes"},
	} {
		require.NotNil(t, svc.Create(&CreateAccessoryRequest{
			Name:        tc.name,
			Price:       "10 TND",
			PurchaseURL: "https://shop.example.com/" + tc.name,
			Category:    tc.category,
		}))
	}

	categories := svc.Categories()
	assert.Equal(t, []string{"cables", "remotes"}, categories)
}

func TestAccessoryPlaceholderImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccessoryService(db, changefeed.NewInert())

	created := svc.Create(&CreateAccessoryRequest{
		Name:        "HDMI Cable",
		Price:       "15 TND",
		PurchaseURL: "https://shop.example.com/hdmi",
		Category:    "cables",
	})
	require.NotNil(t, created)
	assert.Equal(t, models.AccessoryPlaceholderImage, created.ImageURL)
}
