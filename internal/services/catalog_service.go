// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/Mythicool/vaporlax/internal/catalog"
	"github.com/Mythicool/vaporlax/internal/config"
	"github.com/Mythicool/vaporlax/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService serves the normalized catalog behind the configured
// artificial latency, standing in for a real product API.
type CatalogService struct {
	catalog *catalog.Catalog
	config  *config.Config
}

func NewCatalogService(cat *catalog.Catalog, cfg *config.Config) *CatalogService {
	return &CatalogService{catalog: cat, config: cfg}
}

// simulateDelay sleeps for the configured catalog latency, honoring
// context cancellation. Once the delay resolves the caller proceeds
// unconditionally.
func (s *CatalogService) simulateDelay(ctx context.Context) error {
	if !s.config.Simulate.Enabled || s.config.Simulate.CatalogDelayMs <= 0 {
		return nil
	}
	timer := time.NewTimer(time.Duration(s.config.Simulate.CatalogDelayMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Products(), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return models.Product{}, err
	}
	p, ok := s.catalog.Product(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Featured(), nil
}

func (s *CatalogService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}
	return s.catalog.ByCategory(category), nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Search(query), nil
}

func (s *CatalogService) Categories() []string {
	return s.catalog.Categories()
}
