package catalog

import "github.com/pizzadesk/pizzadesk/internal/models"

// Store holds the menu catalog in insertion order: seed items first, then
// appended items in append order. Items are never updated or deleted.
type Store struct {
	items []*models.MenuItem
}

func New(seed []*models.MenuItem) *Store {
	store := &Store{items: make([]*models.MenuItem, 0, len(seed))}
	store.items = append(store.items, seed...)
	return store
}

// Append adds a catalog entry. Duplicate ids are accepted as-is; generating
// unique ids is the submitter's responsibility.
func (s *Store) Append(item *models.MenuItem) {
	s.items = append(s.items, item)
}

// All returns the full catalog in insertion order. The returned slice is a
// copy; the items themselves are shared.
func (s *Store) All() []*models.MenuItem {
	items := make([]*models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Count() int {
	return len(s.items)
}
