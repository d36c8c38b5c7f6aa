package collectioncache

import (
	"context"
	"time"
)

// KeyConstraint is an interface for key constraints.
type KeyConstraint interface {
	comparable
}

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}

// KeyFunc returns the identifier of an entity.
// It must be a pure function: the same entity always yields the same key.
type KeyFunc[K KeyConstraint, V ValueConstraint] func(V) K

// CollectionSource is an interface for loading a whole collection from an external source.
type CollectionSource[V ValueConstraint] interface {
	// GetAll retrieves every entity of the collection.
	// The order of the result is irrelevant. Entities sharing an identifier are allowed,
	// the last one wins when the result is normalized.
	GetAll(context.Context) ([]V, error)
}

// RefreshCollection is an interface for refreshing a collection explicitly.
// Implementations must be thread-safe.
type RefreshCollection interface {
	// Refresh reloads the whole collection from its source.
	Refresh(context.Context) error
}

// State is a snapshot of a collection cache.
type State[K KeyConstraint, V ValueConstraint] struct {
	// Data maps each identifier to its entity.
	// The map is owned by the caller, modifying it does not affect the cache.
	Data map[K]V

	// IsLoading is true while a load is in flight and its outcome is not applied yet.
	IsLoading bool

	// LoadedAt is the time the last successful load was committed.
	// It is the zero time until the first load succeeds.
	LoadedAt time.Time
}
