package cart

import (
	"sync"
)

// Store keeps one cart per browser session, in memory only. Mutation
// methods are the sole write path; callers never hold a reference to
// the underlying slices.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Item)}
}

// Items returns a copy of the session's cart lines.
func (s *Store) Items(sessionID string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.carts[sessionID]))
	copy(items, s.carts[sessionID])
	return items
}

// Add appends an item to the session's cart, merging quantities when the
// product is already present. Returns the updated cart.
func (s *Store) Add(sessionID string, item Item) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	s.carts[sessionID] = items

	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or
// less removes the line. The second return value reports whether the
// item was found.
func (s *Store) UpdateQuantity(sessionID, itemID string, quantity int64) ([]Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}

		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		s.carts[sessionID] = items

		out := make([]Item, len(items))
		copy(out, items)
		return out, true
	}

	out := make([]Item, len(items))
	copy(out, items)
	return out, false
}

// Remove deletes a cart line. Removing an absent item is a no-op.
func (s *Store) Remove(sessionID, itemID string) []Item {
	items, _ := s.UpdateQuantity(sessionID, itemID, 0)
	return items
}

// Clear drops the session's cart entirely.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
