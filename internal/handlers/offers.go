// internal/handlers/offers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/query"
	"github.com/technsat/storefront/internal/services"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

type OfferHandler struct {
	store        *showcase.Store
	offerService *services.OfferService
}

func NewOfferHandler(store *showcase.Store, offerService *services.OfferService) *OfferHandler {
	return &OfferHandler{
		store:        store,
		offerService: offerService,
	}
}

// GET /v1/offers
func (h *OfferHandler) GetOffers(c *gin.Context) {
	st := queryStateFromRequest(c)
	all := h.store.Offers()
	items := query.Apply(all, st)
	utils.SuccessResponseWithMeta(c, items, listMeta(len(all), len(items), st))
}

// POST /admin/offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	offer := h.offerService.Create(&req)
	if offer == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.CreatedResponse(c, offer)
}

// PUT /admin/offers/:id
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	offer := h.offerService.Update(c.Param("id"), &req)
	if offer == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, offer)
}

// DELETE /admin/offers/:id
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if !h.offerService.Delete(c.Param("id")) {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemDeleted),
	})
}
