// internal/models/cart.go
package models

// CartItem is one cart line: the product snapshot taken at add time
// plus a positive quantity. At most one line exists per product id.
type CartItem struct {
	ID       string  `json:"id"` // product id
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the aggregate the UI binds to. Total and ItemCount are
// derived from Items after every mutation and are never patched
// incrementally.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// Subtotal recomputes price x quantity over the current items,
// independently of the stored Total.
func (c Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// Quantities recomputes the summed quantity over the current items.
func (c Cart) Quantities() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
