package repositories

import "context"

// Entity is anything a ContentStore can hold.
type Entity interface {
	GetID() string
}

// ContentReader defines read operations over one content collection.
type ContentReader[T Entity] interface {
	// List returns every item in the collection's domain order.
	List(ctx context.Context) []T

	// FindByID returns apperrors.ErrNotFound when no item has the id.
	FindByID(ctx context.Context, id string) (*T, error)
}

// ContentWriter defines write operations over one content collection.
// Update and remove on a missing id are no-ops reporting false.
type ContentWriter[T Entity] interface {
	// Insert returns apperrors.ErrDuplicate when the id is already taken.
	Insert(ctx context.Context, item T) error

	// UpdateByID applies patch to a copy of the item and swaps it in.
	UpdateByID(ctx context.Context, id string, patch func(*T)) (T, bool)

	// RemoveByID deletes the item.
	RemoveByID(ctx context.Context, id string) bool
}

// ContentStore combines the read and write sides of a collection.
// The store holds every item regardless of who is asking; visibility
// filtering is the query layer's job.
type ContentStore[T Entity] interface {
	ContentReader[T]
	ContentWriter[T]
}
