// internal/commerce/customers.go
package commerce

import "context"

// ListCustomers fetches the customer collection, payload returned as parsed.
func (c *Client) ListCustomers(ctx context.Context) (any, error) {
	return c.getJSON(ctx, "/api/admin/customers")
}
