// internal/catalog/catalog.go
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Mythicool/vaporlax/internal/models"
)

//go:embed products.json
var productsData []byte

// Catalog is the immutable normalized product list for a session.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// Load parses and normalizes the embedded product data.
func Load() (*Catalog, error) {
	return loadFrom(productsData)
}

func loadFrom(data []byte) (*Catalog, error) {
	var raws []models.RawProduct
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to parse product data: %w", err)
	}

	products := TransformAll(raws)

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	logrus.WithField("count", len(products)).Info("Product catalog loaded")

	return &Catalog{products: products, byID: byID}, nil
}

// Products returns a copy of the full product list.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Featured returns the positionally-featured entries.
func (c *Catalog) Featured() []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns products whose category matches, case-insensitively.
func (c *Catalog) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search matches a case-insensitive substring against name, description
// and category.
func (c *Catalog) Search(query string) []models.Product {
	term := strings.ToLower(query)
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category labels in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		key := strings.ToLower(p.Category)
		if !seen[key] {
			seen[key] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	return len(c.products)
}
