// internal/handlers/receivers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/query"
	"github.com/technsat/storefront/internal/services"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

type ReceiverHandler struct {
	store           *showcase.Store
	receiverService *services.ReceiverService
}

func NewReceiverHandler(store *showcase.Store, receiverService *services.ReceiverService) *ReceiverHandler {
	return &ReceiverHandler{
		store:           store,
		receiverService: receiverService,
	}
}

// GET /v1/satellite-receivers
func (h *ReceiverHandler) GetReceivers(c *gin.Context) {
	st := queryStateFromRequest(c)
	all := h.store.Receivers()
	items := query.Apply(all, st)
	utils.SuccessResponseWithMeta(c, items, listMeta(len(all), len(items), st))
}

// POST /admin/satellite-receivers
func (h *ReceiverHandler) CreateReceiver(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	receiver := h.receiverService.Create(&req)
	if receiver == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.CreatedResponse(c, receiver)
}

// PUT /admin/satellite-receivers/:id
func (h *ReceiverHandler) UpdateReceiver(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	receiver := h.receiverService.Update(c.Param("id"), &req)
	if receiver == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, receiver)
}

// DELETE /admin/satellite-receivers/:id
func (h *ReceiverHandler) DeleteReceiver(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if !h.receiverService.Delete(c.Param("id")) {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemDeleted),
	})
}
