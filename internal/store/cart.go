// internal/store/cart.go
package store

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Mythicool/vaporlax/internal/models"
)

// DefaultCartKey is the storage namespace for the cart document.
const DefaultCartKey = "vaporlax-cart"

// persistedState is the durable layout: the cart wrapped in an outer
// object. Only Items is trusted on read; the aggregates are recomputed.
type persistedState struct {
	Cart models.Cart `json:"cart"`
}

// CartStore holds the cart line items and their derived aggregates.
// Every mutation recomputes total and item count from the full item
// list and writes the cart through to storage. All operations are
// atomic under the store lock.
type CartStore struct {
	mtx     sync.RWMutex
	cart    models.Cart
	storage Storage
	key     string
}

// NewCartStore builds a cart store over the given storage, rehydrating
// any previously persisted cart. Persisted aggregates are ignored and
// recomputed from the restored items so a stale or corrupted value can
// never disagree with the item list.
func NewCartStore(storage Storage, key string) *CartStore {
	s := &CartStore{
		storage: storage,
		key:     key,
		cart:    models.Cart{Items: []models.CartItem{}},
	}

	data, err := storage.Load(key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Failed to load persisted cart, starting empty")
		return s
	}
	if data == nil {
		return s
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Persisted cart is corrupt, starting empty")
		return s
	}

	s.cart.Items = state.Cart.Items
	if s.cart.Items == nil {
		s.cart.Items = []models.CartItem{}
	}
	s.recompute()
	return s
}

// Add appends a line item for the product, or increments the quantity
// of the existing line when the product is already in the cart.
func (s *CartStore) Add(product models.Product, quantity int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	found := false
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == product.ID {
			s.cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.cart.Items = append(s.cart.Items, models.CartItem{
			ID:       product.ID,
			Product:  product,
			Quantity: quantity,
		})
	}

	s.recompute()
	s.persist()
}

// Remove drops the line item for the product id. Removing an absent id
// is a no-op.
func (s *CartStore) Remove(productID string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	items := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	s.cart.Items = items

	s.recompute()
	s.persist()
}

// UpdateQuantity sets the quantity of an existing line item. A
// quantity of zero or less removes the item. Updating an absent id is
// a no-op, not an implicit add.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ID == productID {
			s.cart.Items[i].Quantity = quantity
			break
		}
	}

	s.recompute()
	s.persist()
}

// Clear resets the cart to empty.
func (s *CartStore) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cart = models.Cart{Items: []models.CartItem{}}
	s.persist()
}

// Cart returns a snapshot of the current cart.
func (s *CartStore) Cart() models.Cart {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	snapshot := s.cart
	snapshot.Items = make([]models.CartItem, len(s.cart.Items))
	copy(snapshot.Items, s.cart.Items)
	return snapshot
}

// Total returns the stored aggregate total. It never recomputes: the
// stored aggregates are the single source of truth between mutations.
func (s *CartStore) Total() float64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.cart.Total
}

// ItemCount returns the stored aggregate item count.
func (s *CartStore) ItemCount() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.cart.ItemCount
}

// recompute derives the aggregates from the item list. Callers must
// hold the write lock.
func (s *CartStore) recompute() {
	s.cart.Total = s.cart.Subtotal()
	s.cart.ItemCount = s.cart.Quantities()
}

// persist writes the cart through to storage. Failures are logged and
// otherwise ignored; the in-memory cart stays authoritative for the
// session. Callers must hold the write lock.
func (s *CartStore) persist() {
	data, err := json.Marshal(persistedState{Cart: s.cart})
	if err != nil {
		logrus.WithError(err).Warn("Failed to serialize cart")
		return
	}
	if err := s.storage.Save(s.key, data); err != nil {
		logrus.WithError(err).WithField("key", s.key).Warn("Failed to persist cart")
	}
}
