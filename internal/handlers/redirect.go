// internal/handlers/redirect.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technsat/storefront/internal/outbound"
	"github.com/technsat/storefront/internal/showcase"
)

// RedirectHandler resolves the outbound action link of a catalog item.
// Anything that cannot be resolved to a valid http(s) URL, including an
// unknown id, sends the visitor to the WhatsApp contact link instead.
type RedirectHandler struct {
	store    *showcase.Store
	fallback string
}

func NewRedirectHandler(store *showcase.Store, fallback string) *RedirectHandler {
	return &RedirectHandler{
		store:    store,
		fallback: fallback,
	}
}

// GET /v1/go/:entity/:id
func (h *RedirectHandler) Go(c *gin.Context) {
	target := h.fallback

	if raw, ok := h.actionURL(c.Param("entity"), c.Param("id")); ok {
		target = outbound.Resolve(raw, h.fallback)
	}

	c.Header("Referrer-Policy", "no-referrer")
	c.Redirect(http.StatusFound, target)
}

func (h *RedirectHandler) actionURL(entity, id string) (string, bool) {
	switch entity {
	case "offers":
		for _, item := range h.store.Offers() {
			if item.ID.String() == id {
				return item.ActionURL(), true
			}
		}
	case "android-boxes":
		for _, item := range h.store.Boxes() {
			if item.ID.String() == id {
				return item.ActionURL(), true
			}
		}
	case "satellite-receivers":
		for _, item := range h.store.Receivers() {
			if item.ID.String() == id {
				return item.ActionURL(), true
			}
		}
	case "accessories":
		for _, item := range h.store.Accessories() {
			if item.ID.String() == id {
				return item.ActionURL(), true
			}
		}
	}
	return "", false
}
