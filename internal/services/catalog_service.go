// internal/services/catalog_service.go
package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/webmart/admin-dashboard/internal/commerce"
	"github.com/webmart/admin-dashboard/internal/models"
)

// CatalogService owns the dashboard's working copy of the product collection.
// The platform is the store of record; the cache only exists so every page
// render does not refetch, and it is invalidated after each successful
// mutation. A stale read between invalidation and the next fetch is fine.
type CatalogService struct {
	client *commerce.Client

	mu       sync.Mutex
	products []models.Product
	valid    bool

	deleteInFlight atomic.Bool
}

func NewCatalogService(client *commerce.Client) *CatalogService {
	return &CatalogService{
		client: client,
	}
}

// Products returns the normalized collection, fetching when the cache is
// stale. Fetch errors propagate verbatim so the UI can show the platform's
// answer; malformed payloads are not errors, they normalize to empty.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	if s.valid {
		products := s.products
		s.mu.Unlock()
		return products, nil
	}
	s.mu.Unlock()

	payload, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := commerce.Products(payload)

	s.mu.Lock()
	s.products = products
	s.valid = true
	s.mu.Unlock()

	logrus.WithField("count", len(products)).Debug("Product collection refreshed")
	return products, nil
}

// Invalidate marks the cached collection stale; the next read refetches.
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	s.valid = false
	s.mu.Unlock()
}

// DeleteProduct removes a product after an explicit confirmation. One delete
// may be in flight at a time; the UI disables the other delete buttons while
// one is pending, and this guard backs that up.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if !s.deleteInFlight.CompareAndSwap(false, true) {
		return ErrDeletePending
	}
	defer s.deleteInFlight.Store(false)

	if err := s.client.DeleteProduct(ctx, id); err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("Product delete failed")
		return err
	}

	s.Invalidate()
	logrus.WithField("product_id", id).Info("Product deleted")
	return nil
}
