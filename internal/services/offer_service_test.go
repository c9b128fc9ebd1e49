// internal/services/offer_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
)

func TestOfferServiceUnconfigured(t *testing.T) {
	svc := NewOfferService(nil, changefeed.NewInert())

	assert.Empty(t, svc.List())
	assert.Nil(t, svc.Get("b2f2c8df-3a51-4f10-a8f3-111111111111"))
	assert.Nil(t, svc.Create(&CreateOfferRequest{Name: "x", DownloadURL: "https://x", AppName: "y"}))
	assert.Nil(t, svc.Update("b2f2c8df-3a51-4f10-a8f3-111111111111", &UpdateOfferRequest{}))
	assert.False(t, svc.Delete("b2f2c8df-3a51-4f10-a8f3-111111111111"))
}

func TestOfferCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewOfferService(db, changefeed.NewInert())

	// Whitespace-only required fields are rejected before any write.
	assert.Nil(t, svc.Create(&CreateOfferRequest{Name: "  ", DownloadURL: "https://x", AppName: "IBO Player"}))
	assert.Nil(t, svc.Create(&CreateOfferRequest{Name: "Gold", DownloadURL: "  ", AppName: "IBO Player"}))
	assert.Nil(t, svc.Create(&CreateOfferRequest{Name: "Gold", DownloadURL: "https://x", AppName: ""}))

	var count int64
	db.Model(&models.IPTVOffer{}).Count(&count)
	assert.Zero(t, count)
}

func TestOfferCreateTrimsAndSubstitutesPlaceholder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOfferService(db, changefeed.NewInert())

	offer := svc.Create(&CreateOfferRequest{
		Name:        "  Gold 12 months  ",
		Price:       " 60 TND ",
		DownloadURL: " https://example.com/app.apk ",
		AppName:     " IBO Player ",
	})
	require.NotNil(t, offer)

	assert.Equal(t, "Gold 12 months", offer.Name)
	assert.Equal(t, "60 TND", offer.Price)
	assert.Equal(t, "https://example.com/app.apk", offer.DownloadURL)
	assert.Equal(t, "IBO Player", offer.AppName)
	assert.Equal(t, models.OfferPlaceholderImage, offer.ImageURL)
	assert.NotEqual(t, "", offer.ID.String())
}

func TestOfferUpdateSparse(t *testing.T) {
	db := newTestDB(t)
	svc := NewOfferService(db, changefeed.NewInert())

	offer := svc.Create(&CreateOfferRequest{
		Name:        "Gold",
		Price:       "60 TND",
		DownloadURL: "https://example.com/app.apk",
		AppName:     "IBO Player",
	})
	require.NotNil(t, offer)
	id := offer.ID.String()

	// Empty partial: no-op success returning the current record.
	same := svc.Update(id, &UpdateOfferRequest{})
	require.NotNil(t, same)
	assert.Equal(t, "Gold", same.Name)

	// Only the provided field changes.
	updated := svc.Update(id, &UpdateOfferRequest{Price: strPtr("75 TND")})
	require.NotNil(t, updated)
	assert.Equal(t, "75 TND", updated.Price)
	assert.Equal(t, "Gold", updated.Name)
	assert.Equal(t, "https://example.com/app.apk", updated.DownloadURL)

	// A provided-but-empty required field is rejected and nothing is written.
	assert.Nil(t, svc.Update(id, &UpdateOfferRequest{Name: strPtr("   ")}))
	current := svc.Get(id)
	require.NotNil(t, current)
	assert.Equal(t, "Gold", current.Name)
	assert.Equal(t, "75 TND", current.Price)
}

func TestOfferUpdateUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewOfferService(db, changefeed.NewInert())

	assert.Nil(t, svc.Update("b2f2c8df-3a51-4f10-a8f3-111111111111", &UpdateOfferRequest{Price: strPtr("10")}))
	assert.Nil(t, svc.Update("not-a-uuid", &UpdateOfferRequest{Price: strPtr("10")}))
}

func TestOfferDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewOfferService(db, changefeed.NewInert())

	offer := svc.Create(&CreateOfferRequest{
		Name:        "Gold",
		DownloadURL: "https://example.com/app.apk",
		AppName:     "IBO Player",
	})
	require.NotNil(t, offer)

	assert.True(t, svc.Delete(offer.ID.String()))
	assert.Nil(t, svc.Get(offer.ID.String()))

	// Deleting a missing record is a failure, not a panic.
	assert.False(t, svc.Delete(offer.ID.String()))
	assert.False(t, svc.Delete("garbage"))
}

func TestOfferMutationsPublishChanges(t *testing.T) {
	db := newTestDB(t)
	bus := changefeed.NewBus(5 * time.Millisecond)
	defer bus.Close()

	notified := make(chan struct{}, 8)
	sub := bus.Subscribe(models.TableOffers, func() {
		notified <- struct{}{}
	})
	defer sub.Unsubscribe()

	svc := NewOfferService(db, bus)
	offer := svc.Create(&CreateOfferRequest{
		Name:        "Gold",
		DownloadURL: "https://example.com/app.apk",
		AppName:     "IBO Player",
	})
	require.NotNil(t, offer)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification after create")
	}
}
