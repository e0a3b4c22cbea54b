// internal/handlers/draft.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/webmart/admin-dashboard/internal/i18n"
	"github.com/webmart/admin-dashboard/internal/services"
	"github.com/webmart/admin-dashboard/internal/utils"
)

type DraftHandler struct {
	draftService   *services.DraftService
	catalogService *services.CatalogService
}

func NewDraftHandler(draftService *services.DraftService, catalogService *services.CatalogService) *DraftHandler {
	return &DraftHandler{
		draftService:   draftService,
		catalogService: catalogService,
	}
}

// POST /products/drafts
func (h *DraftHandler) OpenCreate(c *gin.Context) {
	draft := h.draftService.OpenCreate()
	utils.CreatedResponse(c, gin.H{
		"draft": draft,
	})
}

// POST /products/:id/drafts
func (h *DraftHandler) OpenEdit(c *gin.Context) {
	id := c.Param("id")

	products, err := h.catalogService.Products(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	for _, product := range products {
		if product.ID == id {
			draft := h.draftService.OpenEdit(product)
			utils.CreatedResponse(c, gin.H{
				"draft": draft,
			})
			return
		}
	}

	utils.NotFoundResponse(c, "product")
}

// GET /drafts/:id
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.draftService.Get(c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"draft": draft,
	})
}

// PUT /drafts/:id
func (h *DraftHandler) UpdateFields(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var fields services.DraftFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	draft, err := h.draftService.UpdateFields(c.Param("id"), fields)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"draft": draft,
	})
}

// POST /drafts/:id/images
func (h *DraftHandler) AttachImages(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "upload"), err.Error())
		return
	}

	files := form.File["images"]
	draft, err := h.draftService.AttachImages(c.Param("id"), files)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"draft": draft,
	})
}

// DELETE /drafts/:id/images/:index
func (h *DraftHandler) RemoveImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "index"), nil)
		return
	}

	draft, err := h.draftService.RemoveImage(c.Param("id"), index)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"draft": draft,
	})
}

// POST /drafts/:id/submit
func (h *DraftHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	draft, err := h.draftService.Get(id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	result, err := h.draftService.Submit(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageKey := i18n.KeyProductCreated
	if draft.Mode == services.DraftModeEditing {
		messageKey = i18n.KeyProductUpdated
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, messageKey),
		"result":  result,
	})
}

// DELETE /drafts/:id
func (h *DraftHandler) Close(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.draftService.Close(c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyDraftClosed),
	})
}
