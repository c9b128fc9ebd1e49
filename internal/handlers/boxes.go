// internal/handlers/boxes.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/models"
	"github.com/technsat/storefront/internal/query"
	"github.com/technsat/storefront/internal/services"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

const relatedBoxLimit = 4

type BoxHandler struct {
	store      *showcase.Store
	boxService *services.BoxService
}

func NewBoxHandler(store *showcase.Store, boxService *services.BoxService) *BoxHandler {
	return &BoxHandler{
		store:      store,
		boxService: boxService,
	}
}

// GET /v1/android-boxes
func (h *BoxHandler) GetBoxes(c *gin.Context) {
	st := queryStateFromRequest(c)
	all := h.store.Boxes()
	items := query.Apply(all, st)
	utils.SuccessResponseWithMeta(c, items, listMeta(len(all), len(items), st))
}

// GET /v1/android-boxes/:id
//
// Detail reads from the showcase snapshot, so it sees the same data as the
// listing. Related boxes are the newest available ones excluding the item.
func (h *BoxHandler) GetBox(c *gin.Context) {
	id := c.Param("id")

	all := h.store.Boxes()
	var found *models.AndroidBox
	for i := range all {
		if all[i].ID.String() == id {
			found = &all[i]
			break
		}
	}
	if found == nil {
		utils.NotFoundResponse(c, "")
		return
	}

	sorted := query.Apply(all, query.State{Availability: models.AvailabilityAvailable})
	related := make([]models.AndroidBox, 0, relatedBoxLimit)
	for _, box := range sorted {
		if box.ID == found.ID {
			continue
		}
		related = append(related, box)
		if len(related) == relatedBoxLimit {
			break
		}
	}

	utils.SuccessResponse(c, gin.H{
		"box":     found,
		"related": related,
	})
}

// POST /admin/android-boxes
func (h *BoxHandler) CreateBox(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	box := h.boxService.Create(&req)
	if box == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.CreatedResponse(c, box)
}

// PUT /admin/android-boxes/:id
func (h *BoxHandler) UpdateBox(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	box := h.boxService.Update(c.Param("id"), &req)
	if box == nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, box)
}

// DELETE /admin/android-boxes/:id
func (h *BoxHandler) DeleteBox(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if !h.boxService.Delete(c.Param("id")) {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOperationFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemDeleted),
	})
}
