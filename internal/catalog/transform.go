// internal/catalog/transform.go
package catalog

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Mythicool/vaporlax/internal/models"
)

const (
	// DefaultDescription fills in records whose source data has none.
	DefaultDescription = "Premium disposable vape with exceptional flavor and performance."
	// DefaultCategory labels records without a category.
	DefaultCategory = "Disposable"
	// FeaturedCount marks the first N catalog entries as featured. This
	// is positional, not a property of the source data.
	FeaturedCount = 4

	placeholderBase = "https://via.placeholder.com/400x400/ff71ce/ffffff"
	fallbackName    = "VaporLAX"
)

// ParsePrice coerces an arbitrary price value into a finite number
// >= 0. nil, empty strings, unparseable strings and NaN all degrade to
// 0. String inputs are stripped of every rune that is not a digit or a
// decimal point before parsing. Negative numeric inputs are clamped to
// 0: the catalog never carries a negative price.
func ParsePrice(raw interface{}) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return clampPrice(v)
	case float32:
		return clampPrice(float64(v))
	case int:
		return clampPrice(float64(v))
	case int64:
		return clampPrice(float64(v))
	case string:
		if v == "" {
			return 0
		}
		clean := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, v)
		parsed, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0
		}
		return clampPrice(parsed)
	default:
		return 0
	}
}

func clampPrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Transform normalizes one raw record. index is the record's position
// in the transformation pass and drives the featured flag.
func Transform(raw models.RawProduct, index int) models.Product {
	name := raw.Name
	if name == "" {
		name = fallbackName
	}

	description := raw.Description
	if description == "" {
		description = DefaultDescription
	}

	image := raw.Image
	if image == "" {
		image = placeholderImage(name)
	}

	category := raw.Category
	if category == "" {
		category = DefaultCategory
	}

	return models.Product{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: description,
		Price:       ParsePrice(raw.Price),
		Image:       image,
		Images:      []string{image},
		Category:    category,
		InStock:     raw.Stock > 0,
		Featured:    index < FeaturedCount,
		Variants:    []models.ProductVariant{},
		Specifications: []models.ProductSpecification{
			{Name: "Stock", Value: strconv.Itoa(raw.Stock)},
			{Name: "Category", Value: category},
			{Name: "Type", Value: "Disposable Vape"},
			{Name: "Nicotine", Value: "5% (50mg)"},
		},
	}
}

// TransformAll normalizes a whole raw catalog. A record that cannot be
// transformed is replaced by a minimal stub so one bad entry never
// fails the load.
func TransformAll(raws []models.RawProduct) []models.Product {
	products := make([]models.Product, 0, len(raws))
	for i, raw := range raws {
		products = append(products, transformSafe(raw, i))
	}
	return products
}

func transformSafe(raw models.RawProduct, index int) (product models.Product) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"index": index,
				"id":    raw.ID,
				"cause": r,
			}).Error("Failed to transform product, substituting stub")
			product = stubProduct(raw, index)
		}
	}()
	return Transform(raw, index)
}

func stubProduct(raw models.RawProduct, index int) models.Product {
	id := raw.ID
	if id == "" {
		id = fmt.Sprintf("fallback-%d", index)
	}
	name := raw.Name
	if name == "" {
		name = "Unknown Product"
	}
	image := placeholderImage("Error")
	return models.Product{
		ID:             id,
		Name:           name,
		Description:    "Product data unavailable",
		Price:          0,
		Image:          image,
		Images:         []string{image},
		Category:       "Unknown",
		InStock:        false,
		Featured:       false,
		Variants:       []models.ProductVariant{},
		Specifications: []models.ProductSpecification{},
	}
}

func placeholderImage(label string) string {
	return placeholderBase + "?text=" + url.QueryEscape(label)
}
