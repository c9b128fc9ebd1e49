// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/services"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

type SettingsHandler struct {
	store           *showcase.Store
	settingsService *services.SettingsService
}

func NewSettingsHandler(store *showcase.Store, settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		store:           store,
		settingsService: settingsService,
	}
}

// GET /v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	settings := h.store.Settings()

	utils.SuccessResponseWithMeta(c, settings, gin.H{
		"lang": lang,
		"rtl":  i18n.IsRTL(lang),
	})
}

// PUT /admin/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	settings := h.settingsService.Save(&req)
	if settings == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"settings": settings,
		"message":  i18n.T(lang, i18n.KeySettingsUpdated),
	})
}
