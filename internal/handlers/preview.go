// internal/handlers/preview.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webmart/admin-dashboard/internal/services"
)

type PreviewHandler struct {
	previewStore *services.PreviewStore
}

func NewPreviewHandler(previewStore *services.PreviewStore) *PreviewHandler {
	return &PreviewHandler{previewStore: previewStore}
}

// GET /previews/:id
func (h *PreviewHandler) GetPreview(c *gin.Context) {
	image, reader, err := h.previewStore.Open(c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	defer reader.Close()

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, image.Size, contentType, reader, nil)
}
