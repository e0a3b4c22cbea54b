// internal/handlers/overview.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webmart/admin-dashboard/internal/services"
	"github.com/webmart/admin-dashboard/internal/utils"
)

type OverviewHandler struct {
	overviewService *services.OverviewService
}

func NewOverviewHandler(overviewService *services.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// GET /stats
func (h *OverviewHandler) GetStats(c *gin.Context) {
	stats, err := h.overviewService.Stats(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// GET /customers
func (h *OverviewHandler) GetCustomers(c *gin.Context) {
	customers, err := h.overviewService.Customers(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"customers": customers,
	})
}
