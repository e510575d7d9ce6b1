// internal/store/cart_test.go
package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mythicool/vaporlax/internal/models"
)

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Disposable",
		InStock:  true,
	}
}

func newTestCart(t *testing.T) *CartStore {
	t.Helper()
	return NewCartStore(DiscardStorage{}, DefaultCartKey)
}

func TestAddNewItem(t *testing.T) {
	cart := newTestCart(t)

	cart.Add(testProduct("p1", 19.99), 2)

	snapshot := cart.Cart()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.InDelta(t, 39.98, snapshot.Total, 1e-9)
	assert.Equal(t, 2, snapshot.ItemCount)
}

func TestAddMergesExistingLine(t *testing.T) {
	cart := newTestCart(t)
	p := testProduct("p1", 10)

	cart.Add(p, 2)
	cart.Add(p, 3)

	snapshot := cart.Cart()
	require.Len(t, snapshot.Items, 1, "adding the same product twice must not create a second line")
	assert.Equal(t, 5, snapshot.Items[0].Quantity)
	assert.InDelta(t, 50, snapshot.Total, 1e-9)
	assert.Equal(t, 5, snapshot.ItemCount)
}

func TestRemoveIsIdempotent(t *testing.T) {
	cart := newTestCart(t)
	cart.Add(testProduct("p1", 10), 1)

	before := cart.Cart()
	cart.Remove("not-in-cart")
	after := cart.Cart()

	assert.Equal(t, before, after, "removing an absent id must leave the cart unchanged")
}

func TestRemoveDropsLine(t *testing.T) {
	cart := newTestCart(t)
	cart.Add(testProduct("p1", 10), 1)
	cart.Add(testProduct("p2", 5), 2)

	cart.Remove("p1")

	snapshot := cart.Cart()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "p2", snapshot.Items[0].ID)
	assert.InDelta(t, 10, snapshot.Total, 1e-9)
	assert.Equal(t, 2, snapshot.ItemCount)
}

func TestUpdateQuantityFloor(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		cart := newTestCart(t)
		cart.Add(testProduct("p1", 10), 3)

		cart.UpdateQuantity("p1", quantity)

		snapshot := cart.Cart()
		assert.Empty(t, snapshot.Items, "quantity %d must remove the item", quantity)
		assert.Equal(t, 0.0, snapshot.Total)
		assert.Equal(t, 0, snapshot.ItemCount)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	cart := newTestCart(t)
	cart.Add(testProduct("p1", 10), 3)

	cart.UpdateQuantity("p1", 7)

	snapshot := cart.Cart()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 7, snapshot.Items[0].Quantity)
	assert.InDelta(t, 70, snapshot.Total, 1e-9)
}

func TestUpdateQuantityAbsentIsNoOp(t *testing.T) {
	cart := newTestCart(t)
	cart.Add(testProduct("p1", 10), 1)

	cart.UpdateQuantity("ghost", 4)

	snapshot := cart.Cart()
	require.Len(t, snapshot.Items, 1, "update must never implicitly add")
	assert.Equal(t, "p1", snapshot.Items[0].ID)
}

func TestClear(t *testing.T) {
	cart := newTestCart(t)
	cart.Add(testProduct("p1", 10), 2)
	cart.Add(testProduct("p2", 20), 1)

	cart.Clear()

	snapshot := cart.Cart()
	assert.Empty(t, snapshot.Items)
	assert.Equal(t, 0.0, snapshot.Total)
	assert.Equal(t, 0, snapshot.ItemCount)
}

func TestAggregateConsistency(t *testing.T) {
	cart := newTestCart(t)

	cart.Add(testProduct("a", 19.99), 2)
	cart.Add(testProduct("b", 5.50), 1)
	cart.Add(testProduct("a", 19.99), 1)
	cart.UpdateQuantity("b", 4)
	cart.Add(testProduct("c", 0.99), 10)
	cart.Remove("a")
	cart.UpdateQuantity("c", 3)

	snapshot := cart.Cart()
	assert.InDelta(t, snapshot.Subtotal(), snapshot.Total, 1e-9,
		"stored total must equal the independently recomputed sum")
	assert.Equal(t, snapshot.Quantities(), snapshot.ItemCount,
		"stored item count must equal the independently recomputed sum")
	assert.Equal(t, snapshot.Total, cart.Total())
	assert.Equal(t, snapshot.ItemCount, cart.ItemCount())
}

func TestSelectorsOnEmptyCart(t *testing.T) {
	cart := newTestCart(t)

	assert.Equal(t, 0.0, cart.Total())
	assert.Equal(t, 0, cart.ItemCount())
	assert.NotNil(t, cart.Cart().Items)
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	cart := NewCartStore(storage, DefaultCartKey)
	cart.Add(testProduct("a", 19.99), 2)
	cart.Add(testProduct("b", 5.50), 1)
	cart.Add(testProduct("c", 0.99), 4)

	// Discard the in-memory store and rehydrate from disk.
	restored := NewCartStore(storage, DefaultCartKey)

	original := cart.Cart()
	rehydrated := restored.Cart()

	require.Len(t, rehydrated.Items, 3)
	for i := range original.Items {
		assert.Equal(t, original.Items[i].ID, rehydrated.Items[i].ID)
		assert.Equal(t, original.Items[i].Quantity, rehydrated.Items[i].Quantity)
	}
	assert.InDelta(t, original.Total, rehydrated.Total, 1e-9)
	assert.Equal(t, original.ItemCount, rehydrated.ItemCount)
}

func TestRehydrationRecomputesAggregates(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	// Persist a cart whose stored aggregates are deliberately wrong.
	state := persistedState{Cart: models.Cart{
		Items: []models.CartItem{
			{ID: "a", Product: testProduct("a", 10), Quantity: 2},
		},
		Total:     999999,
		ItemCount: 42,
	}}
	data, err := json.Marshal(state)
	require.NoError(t, err)
	require.NoError(t, storage.Save(DefaultCartKey, data))

	cart := NewCartStore(storage, DefaultCartKey)

	assert.InDelta(t, 20, cart.Total(), 1e-9, "persisted total must not be trusted")
	assert.Equal(t, 2, cart.ItemCount(), "persisted item count must not be trusted")
}

func TestCorruptPersistedCartStartsEmpty(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, storage.Save(DefaultCartKey, []byte("{not json")))

	cart := NewCartStore(storage, DefaultCartKey)

	assert.Empty(t, cart.Cart().Items)
	assert.Equal(t, 0.0, cart.Total())
}

func TestDiscardStorageDegradation(t *testing.T) {
	cart := NewCartStore(DiscardStorage{}, DefaultCartKey)

	cart.Add(testProduct("p1", 10), 2)
	assert.Equal(t, 2, cart.ItemCount(), "cart stays fully functional in memory")

	// A fresh store over discard storage finds nothing.
	fresh := NewCartStore(DiscardStorage{}, DefaultCartKey)
	assert.Empty(t, fresh.Cart().Items)
}

func TestFileStorageMissingKey(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	data, err := storage.Load("never-written")
	assert.NoError(t, err)
	assert.Nil(t, data)
}
