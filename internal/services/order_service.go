// internal/services/order_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/webmart/admin-dashboard/internal/commerce"
	"github.com/webmart/admin-dashboard/internal/models"
)

// OrderService is a thin pass-through over the platform's order endpoints;
// the orders page reads and reclassifies, it never owns order data.
type OrderService struct {
	client *commerce.Client
}

func NewOrderService(client *commerce.Client) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) Orders(ctx context.Context) (any, error) {
	return s.client.ListOrders(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (any, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	result, err := s.client.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   status,
	}).Info("Order status updated")
	return result, nil
}
