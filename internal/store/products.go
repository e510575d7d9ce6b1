// internal/store/products.go
package store

import (
	"strings"
	"sync"

	"github.com/Mythicool/vaporlax/internal/models"
)

// ProductStore holds the full unfiltered product list plus the current
// filter predicate set, and keeps the filtered view recomputed on every
// predicate change. Filters are session-local and never persisted.
type ProductStore struct {
	mtx      sync.RWMutex
	products []models.Product
	filtered []models.Product
	filters  models.ProductFilters
}

func NewProductStore() *ProductStore {
	return &ProductStore{
		products: []models.Product{},
		filtered: []models.Product{},
	}
}

// SetProducts replaces the product list and resets the filtered view
// to the full list.
func (s *ProductStore) SetProducts(products []models.Product) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.products = make([]models.Product, len(products))
	copy(s.products, products)
	s.filtered = make([]models.Product, len(products))
	copy(s.filtered, products)
}

// SetFilters merges the given predicates into the current set (nil
// fields leave the existing predicate untouched) and recomputes the
// filtered list.
func (s *ProductStore) SetFilters(update models.ProductFilters) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if update.Category != nil {
		s.filters.Category = update.Category
	}
	if update.PriceRange != nil {
		s.filters.PriceRange = update.PriceRange
	}
	if update.InStock != nil {
		s.filters.InStock = update.InStock
	}
	if update.Featured != nil {
		s.filters.Featured = update.Featured
	}
	if update.Search != nil {
		s.filters.Search = update.Search
	}

	s.applyFilters()
}

// ClearFilters drops every predicate and restores the filtered view to
// the full product list.
func (s *ProductStore) ClearFilters() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.filters = models.ProductFilters{}
	s.filtered = make([]models.Product, len(s.products))
	copy(s.filtered, s.products)
}

// applyFilters recomputes the filtered list as the conjunction of the
// predicates that are present. Callers must hold the write lock.
func (s *ProductStore) applyFilters() {
	filtered := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if s.matches(p) {
			filtered = append(filtered, p)
		}
	}
	s.filtered = filtered
}

func (s *ProductStore) matches(p models.Product) bool {
	f := s.filters

	if f.Category != nil && !strings.EqualFold(p.Category, *f.Category) {
		return false
	}
	if f.PriceRange != nil && (p.Price < f.PriceRange.Min || p.Price > f.PriceRange.Max) {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Search != nil {
		term := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			return false
		}
	}
	return true
}

// Products returns a snapshot of the full product list.
func (s *ProductStore) Products() []models.Product {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FilteredProducts returns a snapshot of the current filtered view.
func (s *ProductStore) FilteredProducts() []models.Product {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Product, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// Filters returns the current predicate set.
func (s *ProductStore) Filters() models.ProductFilters {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.filters
}

// ProductByID looks a product up in the full list.
func (s *ProductStore) ProductByID(id string) (models.Product, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
