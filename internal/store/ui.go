// internal/store/ui.go
package store

import "sync"

// UIState is the snapshot of transient UI flags.
type UIState struct {
	CartDrawerOpen bool `json:"cart_drawer_open"`
	MobileMenuOpen bool `json:"mobile_menu_open"`
	Loading        bool `json:"loading"`
}

// UIStore holds the transient UI flags. Flags carry no derived state
// and reset each session; nothing here persists.
type UIStore struct {
	mtx   sync.RWMutex
	state UIState
}

func NewUIStore() *UIStore {
	return &UIStore{}
}

func (s *UIStore) SetCartDrawerOpen(open bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.state.CartDrawerOpen = open
}

func (s *UIStore) SetMobileMenuOpen(open bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.state.MobileMenuOpen = open
}

func (s *UIStore) SetLoading(loading bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.state.Loading = loading
}

func (s *UIStore) State() UIState {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.state
}

func (s *UIStore) IsCartDrawerOpen() bool {
	return s.State().CartDrawerOpen
}

func (s *UIStore) IsLoading() bool {
	return s.State().Loading
}
