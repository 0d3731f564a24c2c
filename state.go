package docmacros

import "sync"

// NavTreeKey is the state key holding the captured navigation tree.
const NavTreeKey = "nav_tree"

// State carries values from build-time hooks to template rendering.
// A build writes it once before pages render; renders only read it.
// The zero value is ready to use.
type State struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewState returns an empty State.
func NewState() *State {
	return &State{values: make(map[string]any)}
}

// Get returns the value stored under key.
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value under key, replacing any previous value.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
}

// SetNav stores the top-level items of a navigation tree.
// The slice is stored as given; it is neither copied nor validated.
func (s *State) SetNav(items []NavItem) {
	s.Set(NavTreeKey, items)
}

// Nav returns the captured navigation tree.
// It reports false when no tree was captured or the captured tree is empty.
func (s *State) Nav() ([]NavItem, bool) {
	v, ok := s.Get(NavTreeKey)
	if !ok {
		return nil, false
	}
	items, ok := v.([]NavItem)
	if !ok || len(items) == 0 {
		return nil, false
	}
	return items, true
}
