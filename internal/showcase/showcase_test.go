// internal/showcase/showcase_test.go
package showcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
	"github.com/technsat/storefront/internal/services"
)

func newStoreWithBus(t *testing.T) (*Store, *services.BoxService, *changefeed.Bus) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.IPTVOffer{},
		&models.AndroidBox{},
		&models.SatelliteReceiver{},
		&models.Accessory{},
		&models.ServiceSettings{},
	))

	bus := changefeed.NewBus(5 * time.Millisecond)
	t.Cleanup(bus.Close)

	boxSvc := services.NewBoxService(db, bus)
	store := NewStore(bus,
		services.NewOfferService(db, bus),
		boxSvc,
		services.NewReceiverService(db, bus),
		services.NewAccessoryService(db, bus),
		services.NewSettingsService(db, bus),
	)
	t.Cleanup(store.Close)

	return store, boxSvc, bus
}

func TestStoreStartsWithCurrentData(t *testing.T) {
	store, boxSvc, _ := newStoreWithBus(t)

	assert.Empty(t, store.Boxes())
	assert.Equal(t, models.DefaultServiceName, store.Settings().ServiceName)

	// Data created after the initial load arrives via the changefeed.
	require.NotNil(t, boxSvc.Create(&services.CreateBoxRequest{
		Name:        "X96 Max Plus",
		Price:       "120 TND",
		PurchaseURL: "https://shop.example.com/x96",
	}))

	assert.Eventually(t, func() bool {
		return len(store.Boxes()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStoreReplacesSnapshotWholesale(t *testing.T) {
	store, boxSvc, _ := newStoreWithBus(t)

	box := boxSvc.Create(&services.CreateBoxRequest{
		Name:        "X96 Max Plus",
		Price:       "120 TND",
		PurchaseURL: "https://shop.example.com/x96",
	})
	require.NotNil(t, box)

	assert.Eventually(t, func() bool {
		return len(store.Boxes()) == 1
	}, time.Second, 5*time.Millisecond)

	require.True(t, boxSvc.Delete(box.ID.String()))

	assert.Eventually(t, func() bool {
		return len(store.Boxes()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestStoreGettersReturnCopies(t *testing.T) {
	store, boxSvc, _ := newStoreWithBus(t)

	require.NotNil(t, boxSvc.Create(&services.CreateBoxRequest{
		Name:        "X96 Max Plus",
		Price:       "120 TND",
		PurchaseURL: "https://shop.example.com/x96",
	}))
	assert.Eventually(t, func() bool {
		return len(store.Boxes()) == 1
	}, time.Second, 5*time.Millisecond)

	snapshot := store.Boxes()
	snapshot[0].Name = "mutated"

	assert.Equal(t, "X96 Max Plus", store.Boxes()[0].Name)
}

func TestStoreCloseStopsUpdates(t *testing.T) {
	store, boxSvc, _ := newStoreWithBus(t)

	store.Close()

	require.NotNil(t, boxSvc.Create(&services.CreateBoxRequest{
		Name:        "X96 Max Plus",
		Price:       "120 TND",
		PurchaseURL: "https://shop.example.com/x96",
	}))

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, store.Boxes())
}
