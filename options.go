package collectioncache

import "context"

// Option is the interface for the options of the CollectionCache.
type Option[K KeyConstraint, V ValueConstraint] interface {
	apply(*CollectionCache[K, V])
}

type optionFunc[K KeyConstraint, V ValueConstraint] func(*CollectionCache[K, V])

func (f optionFunc[K, V]) apply(c *CollectionCache[K, V]) {
	f(c)
}

// WithErrorReporter sets the function that receives every failed load.
// It is called exactly once per failed load, possibly from a background goroutine, so it must be thread-safe.
// Failures of loads that end because the cache was closed are not reported.
func WithErrorReporter[K KeyConstraint, V ValueConstraint](onError func(error)) Option[K, V] {
	return optionFunc[K, V](func(c *CollectionCache[K, V]) {
		c.onError = onError
	})
}

// WithValueCloner sets the value cloner to the cache.
// The default value cloner is DefaultValueCloner.
func WithValueCloner[K KeyConstraint, V ValueConstraint](cloner ValueCloner[V]) Option[K, V] {
	return optionFunc[K, V](func(c *CollectionCache[K, V]) {
		c.cloner = cloner
	})
}

// WithClock sets the clock used to stamp State.LoadedAt.
// The default clock is SystemClock.
func WithClock[K KeyConstraint, V ValueConstraint](clock Clock) Option[K, V] {
	return optionFunc[K, V](func(c *CollectionCache[K, V]) {
		c.clock = clock
	})
}

// WithScopeContext ties the lifetime of the cache to ctx.
// When ctx is done the cache is closed, as if Close was called.
// The default scope is context.Background, so the cache lives until Close.
func WithScopeContext[K KeyConstraint, V ValueConstraint](ctx context.Context) Option[K, V] {
	return optionFunc[K, V](func(c *CollectionCache[K, V]) {
		c.scope = ctx
	})
}
