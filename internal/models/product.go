// internal/models/product.go
package models

// RawProduct is a catalog record as it appears in the static data file.
// Prices arrive as numbers, currency strings, or nothing at all; most
// other fields are optional too.
type RawProduct struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       interface{} `json:"price"`
	Image       string      `json:"image,omitempty"`
	Category    string      `json:"category,omitempty"`
	Stock       int         `json:"stock,omitempty"`
}

// Product is the normalized catalog entry every other component works
// with. Built once at startup, immutable afterwards.
type Product struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price"`
	Image          string                 `json:"image"`
	Images         []string               `json:"images"`
	Category       string                 `json:"category"`
	InStock        bool                   `json:"in_stock"`
	Featured       bool                   `json:"featured"`
	Variants       []ProductVariant       `json:"variants"`
	Specifications []ProductSpecification `json:"specifications"`
}

type ProductVariant struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Value         string  `json:"value"`
	PriceModifier float64 `json:"price_modifier,omitempty"`
}

type ProductSpecification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PriceRange is an inclusive min/max filter bound.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductFilters is the predicate set applied to the catalog. A nil
// field imposes no constraint; filtering is the conjunction of the
// predicates that are present.
type ProductFilters struct {
	Category   *string     `json:"category,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	InStock    *bool       `json:"in_stock,omitempty"`
	Featured   *bool       `json:"featured,omitempty"`
	Search     *string     `json:"search,omitempty"`
}
