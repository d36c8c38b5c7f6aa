package source

import (
	"context"
	"slices"

	collectioncache "github.com/karupanerura/collection-cache"
)

// FunctionSource is a collection source that uses a function to load the collection.
type FunctionSource[V collectioncache.ValueConstraint] func(context.Context) ([]V, error)

var _ collectioncache.CollectionSource[struct{}] = (FunctionSource[struct{}])(nil)

// GetAll calls the function.
func (f FunctionSource[V]) GetAll(ctx context.Context) ([]V, error) {
	return f(ctx)
}

// StaticSource is a collection source that always returns the same entities.
// Every call returns a new slice, so callers may modify the result.
type StaticSource[V collectioncache.ValueConstraint] []V

var _ collectioncache.CollectionSource[struct{}] = (StaticSource[struct{}])(nil)

// GetAll returns a copy of the entities.
func (s StaticSource[V]) GetAll(context.Context) ([]V, error) {
	return slices.Clone([]V(s)), nil
}

// LintSource is a collection source that is used for linting purposes.
// It uses a source to load the values and panics when the source breaks the contract.
type LintSource[K collectioncache.KeyConstraint, V collectioncache.ValueConstraint] struct {
	Source collectioncache.CollectionSource[V]
	KeyOf  collectioncache.KeyFunc[K, V]
}

var _ collectioncache.CollectionSource[struct{}] = (*LintSource[uint8, struct{}])(nil)

// GetAll retrieves the collection from the source.
// It validates the behavior of the source implementation, ensuring it properly follows the CollectionSource contract.
// In particular, it checks that no values come with an error and that every entity has an identifier.
func (s *LintSource[K, V]) GetAll(ctx context.Context) ([]V, error) {
	values, err := s.Source.GetAll(ctx)
	if err != nil {
		if values != nil {
			panic("must not return values with an error")
		}
		return nil, err
	}

	var zero K
	for _, v := range values {
		if s.KeyOf(v) == zero {
			panic("missing identifier")
		}
	}
	return values, nil
}
