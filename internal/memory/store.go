// Package memory provides the process-local item store used in fallback mode.
// Contents are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/repository"
)

var _ item.Repository = (*Store)(nil)

// Store keeps items in a map and remembers insertion order for listing.
type Store struct {
	mu    sync.RWMutex
	items map[string]item.Item
	order []string
	now   func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		items: make(map[string]item.Item),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// List returns items in insertion order.
func (s *Store) List(_ context.Context) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]item.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

// Create stores a new item under a fresh id.
func (s *Store) Create(_ context.Context, draft item.Draft) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := item.Item{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		CreatedAt:   s.now(),
	}
	s.items[it.ID] = it
	s.order = append(s.order, it.ID)
	return &it, nil
}

// Update replaces title and description of an existing item.
func (s *Store) Update(_ context.Context, id string, draft item.Draft) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	it.Title = draft.Title
	it.Description = draft.Description
	s.items[id] = it
	return &it, nil
}

// Delete removes an item.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports how many items are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
