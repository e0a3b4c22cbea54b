// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webmart/admin-dashboard/internal/i18n"
	"github.com/webmart/admin-dashboard/internal/services"
	"github.com/webmart/admin-dashboard/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.Orders(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// PATCH /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	result, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderStatusUpdated),
		"result":  result,
	})
}
