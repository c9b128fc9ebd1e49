// internal/handlers/home.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/models"
	"github.com/technsat/storefront/internal/query"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

const homeSectionLimit = 6

type HomeHandler struct {
	store *showcase.Store
}

func NewHomeHandler(store *showcase.Store) *HomeHandler {
	return &HomeHandler{store: store}
}

// GET /v1/home
//
// One aggregate payload for the landing page: the newest entries of every
// section plus the service settings, so the page renders with one request.
func (h *HomeHandler) GetHome(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	st := query.State{Availability: models.AvailabilityAvailable}

	offers := query.Apply(h.store.Offers(), query.State{})
	boxes := query.Apply(h.store.Boxes(), st)
	receivers := query.Apply(h.store.Receivers(), st)
	accessories := query.Apply(h.store.Accessories(), st)

	utils.SuccessResponseWithMeta(c, gin.H{
		"settings":    h.store.Settings(),
		"offers":      limitSection(offers),
		"boxes":       limitSection(boxes),
		"receivers":   limitSection(receivers),
		"accessories": limitSection(accessories),
	}, gin.H{
		"lang": lang,
		"rtl":  i18n.IsRTL(lang),
	})
}

func limitSection[T any](items []T) []T {
	if len(items) > homeSectionLimit {
		return items[:homeSectionLimit]
	}
	return items
}
