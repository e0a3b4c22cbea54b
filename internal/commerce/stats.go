// internal/commerce/stats.go
package commerce

import "context"

// DashboardStats fetches the overview numbers, payload returned as parsed.
func (c *Client) DashboardStats(ctx context.Context) (any, error) {
	return c.getJSON(ctx, "/api/admin/stats")
}
