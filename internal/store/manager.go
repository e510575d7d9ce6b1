// internal/store/manager.go
package store

import (
	"sync"

	"github.com/Mythicool/vaporlax/internal/models"
)

// Session bundles the three state containers one client session works
// with: its cart, its product filter view, and its UI flags.
type Session struct {
	Cart     *CartStore
	Products *ProductStore
	UI       *UIStore
}

// Manager constructs and hands out per-session state containers. Each
// session's cart persists under its own storage key derived from the
// namespace, so rehydration restores the right client's cart.
type Manager struct {
	storage   Storage
	namespace string
	catalog   []models.Product

	mtx      sync.Mutex
	sessions map[string]*Session
}

func NewManager(storage Storage, namespace string, catalog []models.Product) *Manager {
	return &Manager{
		storage:   storage,
		namespace: namespace,
		catalog:   catalog,
		sessions:  make(map[string]*Session),
	}
}

// Session returns the state container for the session id, building and
// rehydrating it on first use.
func (m *Manager) Session(id string) *Session {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	products := NewProductStore()
	products.SetProducts(m.catalog)

	s := &Session{
		Cart:     NewCartStore(m.storage, m.namespace+":"+id),
		Products: products,
		UI:       NewUIStore(),
	}
	m.sessions[id] = s
	return s
}

// Reset drops every in-memory session. Persisted carts survive; a
// returning session id rehydrates its cart on next use. Intended as
// the teardown hook between tests.
func (m *Manager) Reset() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.sessions = make(map[string]*Session)
}
