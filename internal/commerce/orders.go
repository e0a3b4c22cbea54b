// internal/commerce/orders.go
package commerce

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

// ListOrders fetches the order collection, payload returned as parsed.
func (c *Client) ListOrders(ctx context.Context) (any, error) {
	return c.getJSON(ctx, "/api/admin/orders")
}

// UpdateOrderStatus moves an order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (any, error) {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return nil, fmt.Errorf("encoding status body: %w", err)
	}

	req, err := c.buildRequest(ctx, http.MethodPatch, "/api/admin/orders/"+orderID+"/status", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result any
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
