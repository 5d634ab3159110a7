package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
)

// Store is an in-memory ContentStore. Every write builds a new snapshot and
// swaps it in under the write lock, so readers never observe a partial write.
type Store[T portsrepo.Entity] struct {
	mu    sync.RWMutex
	items []T
	less  func(a, b T) bool
}

// StoreOption configures a Store.
type StoreOption[T portsrepo.Entity] func(*Store[T])

// WithOrder sets the domain order List returns. Ties keep insertion order.
func WithOrder[T portsrepo.Entity](less func(a, b T) bool) StoreOption[T] {
	return func(s *Store[T]) {
		s.less = less
	}
}

// WithSeed loads the initial items in order. Later duplicates of an id are dropped.
func WithSeed[T portsrepo.Entity](items ...T) StoreOption[T] {
	return func(s *Store[T]) {
		for _, item := range items {
			if s.indexOf(item.GetID()) < 0 {
				s.items = append(s.items, cloneItem(item))
			}
		}
	}
}

// NewStore creates an empty store configured by opts.
func NewStore[T portsrepo.Entity](opts ...StoreOption[T]) *Store[T] {
	s := &Store[T]{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cloneItem deep copies items that know how to, e.g. announcements with slices.
func cloneItem[T any](item T) T {
	if c, ok := any(item).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return item
}

func (s *Store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool { return item.GetID() == id })
}

// List returns a copy of every item in domain order.
func (s *Store[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	snapshot := s.items
	s.mu.RUnlock()

	out := make([]T, len(snapshot))
	for i, item := range snapshot {
		out[i] = cloneItem(item)
	}
	if s.less != nil {
		slices.SortStableFunc(out, func(a, b T) int {
			switch {
			case s.less(a, b):
				return -1
			case s.less(b, a):
				return 1
			default:
				return 0
			}
		})
	}
	return out
}

// FindByID returns a copy of the item with the given id.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("item %q: %w", id, apperrors.ErrNotFound)
	}
	item := cloneItem(s.items[idx])
	return &item, nil
}

// Insert appends item to the collection.
func (s *Store[T]) Insert(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(item.GetID()) >= 0 {
		return fmt.Errorf("item %q: %w", item.GetID(), apperrors.ErrDuplicate)
	}
	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, cloneItem(item))
	return nil
}

// UpdateByID replaces the item with its patched copy. The patch must not
// change the id.
func (s *Store[T]) UpdateByID(ctx context.Context, id string, patch func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, false
	}
	updated := cloneItem(s.items[idx])
	patch(&updated)
	if updated.GetID() != id {
		return zero, false
	}

	next := slices.Clone(s.items)
	next[idx] = updated
	s.items = next
	return cloneItem(updated), true
}

// RemoveByID drops the item from the collection.
func (s *Store[T]) RemoveByID(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	s.items = append(next, s.items[idx+1:]...)
	return true
}

// Len reports the number of stored items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
