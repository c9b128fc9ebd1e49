// internal/handlers/accessories.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/query"
	"github.com/technsat/storefront/internal/services"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

type AccessoryHandler struct {
	store            *showcase.Store
	accessoryService *services.AccessoryService
}

func NewAccessoryHandler(store *showcase.Store, accessoryService *services.AccessoryService) *AccessoryHandler {
	return &AccessoryHandler{
		store:            store,
		accessoryService: accessoryService,
	}
}

// GET /v1/accessories
func (h *AccessoryHandler) GetAccessories(c *gin.Context) {
	st := queryStateFromRequest(c)
	all := h.store.Accessories()
	items := query.Apply(all, st)
	utils.SuccessResponseWithMeta(c, items, listMeta(len(all), len(items), st))
}

// GET /v1/accessories/categories
//
// Categories come from the snapshot so the filter dropdown matches the
// listing even while the catalog service is degraded.
func (h *AccessoryHandler) GetCategories(c *gin.Context) {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, item := range h.store.Accessories() {
		if item.Category == "" {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}

	utils.SuccessResponse(c, gin.H{"categories": categories})
}

// POST /admin/accessories
func (h *AccessoryHandler) CreateAccessory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	accessory := h.accessoryService.Create(&req)
	if accessory == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.CreatedResponse(c, accessory)
}

// PUT /admin/accessories/:id
func (h *AccessoryHandler) UpdateAccessory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	accessory := h.accessoryService.Update(c.Param("id"), &req)
	if accessory == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, accessory)
}

// DELETE /admin/accessories/:id
func (h *AccessoryHandler) DeleteAccessory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if !h.accessoryService.Delete(c.Param("id")) {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemDeleted),
	})
}
