// Package showcase keeps in-memory snapshots of the public catalog.
//
// Each snapshot is replaced wholesale whenever the changefeed reports a
// mutation on the backing table, so read handlers never touch the catalog
// service directly and always see a consistent listing.
package showcase

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/models"
	"github.com/technsat/storefront/internal/services"
)

type Store struct {
	mu sync.RWMutex

	offers      []models.IPTVOffer
	boxes       []models.AndroidBox
	receivers   []models.SatelliteReceiver
	accessories []models.Accessory
	settings    models.ServiceSettings

	subs []changefeed.Subscription
}

// NewStore performs the initial load and subscribes to table changes.
// Every change triggers a full re-fetch of the affected collection.
func NewStore(
	feed changefeed.Broker,
	offers *services.OfferService,
	boxes *services.BoxService,
	receivers *services.ReceiverService,
	accessories *services.AccessoryService,
	settings *services.SettingsService,
) *Store {
	s := &Store{
		offers:      offers.List(),
		boxes:       boxes.List(),
		receivers:   receivers.List(),
		accessories: accessories.List(),
		settings:    settings.Get(),
	}

	s.subs = []changefeed.Subscription{
		feed.Subscribe(models.TableOffers, func() {
			s.replaceOffers(offers.List())
		}),
		feed.Subscribe(models.TableBoxes, func() {
			s.replaceBoxes(boxes.List())
		}),
		feed.Subscribe(models.TableReceivers, func() {
			s.replaceReceivers(receivers.List())
		}),
		feed.Subscribe(models.TableAccessories, func() {
			s.replaceAccessories(accessories.List())
		}),
		feed.Subscribe(models.TableSettings, func() {
			s.replaceSettings(settings.Get())
		}),
	}

	logrus.WithFields(logrus.Fields{
		"offers":      len(s.offers),
		"boxes":       len(s.boxes),
		"receivers":   len(s.receivers),
		"accessories": len(s.accessories),
	}).Info("Showcase snapshots loaded")

	return s
}

// Close detaches the store from the changefeed. Snapshots remain readable.
func (s *Store) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
}

func (s *Store) Offers() []models.IPTVOffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.IPTVOffer, len(s.offers))
	copy(out, s.offers)
	return out
}

func (s *Store) Boxes() []models.AndroidBox {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AndroidBox, len(s.boxes))
	copy(out, s.boxes)
	return out
}

func (s *Store) Receivers() []models.SatelliteReceiver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SatelliteReceiver, len(s.receivers))
	copy(out, s.receivers)
	return out
}

func (s *Store) Accessories() []models.Accessory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Accessory, len(s.accessories))
	copy(out, s.accessories)
	return out
}

func (s *Store) Settings() models.ServiceSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) replaceOffers(items []models.IPTVOffer) {
	s.mu.Lock()
	s.offers = items
	s.mu.Unlock()
}

func (s *Store) replaceBoxes(items []models.AndroidBox) {
	s.mu.Lock()
	s.boxes = items
	s.mu.Unlock()
}

func (s *Store) replaceReceivers(items []models.SatelliteReceiver) {
	s.mu.Lock()
	s.receivers = items
	s.mu.Unlock()
}

func (s *Store) replaceAccessories(items []models.Accessory) {
	s.mu.Lock()
	s.accessories = items
	s.mu.Unlock()
}

func (s *Store) replaceSettings(settings models.ServiceSettings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}
