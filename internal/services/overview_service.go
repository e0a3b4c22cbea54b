// internal/services/overview_service.go
package services

import (
	"context"

	"github.com/webmart/admin-dashboard/internal/commerce"
)

// OverviewService backs the stats and customers pages. Pure pass-through.
type OverviewService struct {
	client *commerce.Client
}

func NewOverviewService(client *commerce.Client) *OverviewService {
	return &OverviewService{client: client}
}

func (s *OverviewService) Stats(ctx context.Context) (any, error) {
	return s.client.DashboardStats(ctx)
}

func (s *OverviewService) Customers(ctx context.Context) (any, error) {
	return s.client.ListCustomers(ctx)
}
