package collectioncache

// Normalize builds a map from each entity's identifier to the entity.
// It makes a single pass over values; if several entities share an identifier, the last one wins.
func Normalize[K KeyConstraint, V ValueConstraint](values []V, keyOf KeyFunc[K, V]) map[K]V {
	m := make(map[K]V, len(values))
	for _, v := range values {
		m[keyOf(v)] = v
	}
	return m
}
