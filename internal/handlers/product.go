// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webmart/admin-dashboard/internal/i18n"
	"github.com/webmart/admin-dashboard/internal/models"
	"github.com/webmart/admin-dashboard/internal/services"
	"github.com/webmart/admin-dashboard/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// productView is what the grid renders: the record plus the derived fields
// the cards show.
type productView struct {
	models.Product
	DisplayName string             `json:"display_name"`
	StockStatus models.StockStatus `json:"stock_status"`
	MainImage   string             `json:"main_image,omitempty"`
}

func newProductView(product models.Product) productView {
	return productView{
		Product:     product,
		DisplayName: product.DisplayName(),
		StockStatus: product.StockStatus(),
		MainImage:   product.MainImage(),
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.Products(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	utils.SuccessResponse(c, gin.H{
		"products": views,
		"total":    len(views),
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")
	confirmed := c.Query("confirm") == "true"

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id, confirmed); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}
