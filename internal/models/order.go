// internal/models/order.go
package models

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
