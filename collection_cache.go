package collectioncache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/karupanerura/collection-cache/internal/ctxsync"
	"github.com/karupanerura/collection-cache/internal/panicutil"
)

// CollectionCache holds a whole collection loaded from a CollectionSource, keyed by entity identifier.
//
// A cache starts empty and loading. Initialize or Refresh load the collection, and consumers may edit the
// loaded map locally with SetData, UpdateData, Put and Delete without reloading it.
// When loads overlap, only the most recently started one is committed; older results are discarded.
//
// The cache is owned by a scope: Close, or the end of the context given by WithScopeContext,
// cancels in-flight loads and makes sure their results are never applied.
type CollectionCache[K KeyConstraint, V ValueConstraint] struct {
	source  CollectionSource[V]
	keyOf   KeyFunc[K, V]
	cloner  ValueCloner[V]
	onError func(error)
	clock   Clock

	scope  context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	cond       ctxsync.Cond
	data       map[K]V
	loading    bool
	loadedAt   time.Time
	generation uint64
	closed     bool
}

var _ RefreshCollection = (*CollectionCache[string, string])(nil)

// New creates a new CollectionCache that loads entities from source and keys them by keyOf.
// The cache is empty and loading until the first load completes.
func New[K KeyConstraint, V ValueConstraint](source CollectionSource[V], keyOf KeyFunc[K, V], opts ...Option[K, V]) *CollectionCache[K, V] {
	c := &CollectionCache[K, V]{
		source:  source,
		keyOf:   keyOf,
		data:    map[K]V{},
		loading: true,
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	if c.cloner == nil {
		c.cloner = DefaultValueCloner[V]()
	}
	if c.clock == nil {
		c.clock = SystemClock
	}
	if c.scope == nil {
		c.scope = context.Background()
	}
	c.cond = ctxsync.NewCond(&c.mu)
	c.scope, c.cancel = context.WithCancel(c.scope)
	context.AfterFunc(c.scope, c.Close)
	return c
}

// Initialize starts loading the collection in the background.
// The cache is marked as loading before Initialize returns.
//
// The returned channel receives the outcome of the load once it has been applied to the cache, and is closed afterwards:
// nil on success, ErrSuperseded if a newer load started meanwhile, ErrClosed if the cache was closed, or the load error.
func (c *CollectionCache[K, V]) Initialize(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	generation, err := c.begin()
	if err != nil {
		done <- err
		close(done)
		return done
	}

	go func() {
		err := errGoexit
		defer func() {
			done <- err
			close(done)
		}()
		err = c.load(ctx, generation)
	}()
	return done
}

// Refresh loads the collection on the calling goroutine and applies the result.
// It returns the same outcomes as the channel returned by Initialize.
func (c *CollectionCache[K, V]) Refresh(ctx context.Context) error {
	generation, err := c.begin()
	if err != nil {
		return err
	}
	return c.load(ctx, generation)
}

// begin marks the cache as loading and returns the generation of the new load.
func (c *CollectionCache[K, V]) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrClosed
	}
	c.generation++
	c.loading = true
	return c.generation, nil
}

// load fetches the collection and applies the outcome for the given generation.
func (c *CollectionCache[K, V]) load(ctx context.Context, generation uint64) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.scope, cancel)
	defer stop()

	var values []V
	err := panicutil.Guard(func() (err error) {
		values, err = c.source.GetAll(ctx)
		return
	}, func() {
		_ = c.finish(ctx, generation, nil, errGoexit)
	})
	return c.finish(ctx, generation, values, err)
}

// finish applies the outcome of a load.
// The map is replaced only if the load succeeded, is the latest one, and neither its context nor the cache scope has ended.
func (c *CollectionCache[K, V]) finish(ctx context.Context, generation uint64, values []V, err error) error {
	if err == nil {
		err = ctx.Err()
	}

	var m map[K]V
	if err == nil {
		m = Normalize(values, c.keyOf)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	latest := generation == c.generation
	if latest {
		c.loading = false
		if err == nil {
			c.data = m
			c.loadedAt = c.clock.Now()
		}
		c.cond.Broadcast()
	}
	c.mu.Unlock()

	if err != nil {
		if c.onError != nil {
			c.onError(err)
		}
		return err
	}
	if !latest {
		return ErrSuperseded
	}
	return nil
}

// State returns a snapshot of the cache. It never waits for a load.
func (c *CollectionCache[K, V]) State() State[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

func (c *CollectionCache[K, V]) snapshot() State[K, V] {
	return State[K, V]{
		Data:      cloneMap(c.cloner, c.data),
		IsLoading: c.loading,
		LoadedAt:  c.loadedAt,
	}
}

// Wait blocks until no load is in flight and returns the snapshot at that moment.
// It returns ErrClosed if the cache is closed, or the context error if ctx ends first.
func (c *CollectionCache[K, V]) Wait(ctx context.Context) (State[K, V], error) {
	c.mu.Lock()
	if err := c.cond.WaitUntil(ctx, func() bool { return !c.loading }); err != nil {
		return State[K, V]{}, err
	}
	defer c.mu.Unlock()

	if c.closed {
		return State[K, V]{}, ErrClosed
	}
	return c.snapshot(), nil
}

// Get returns the entity stored under key.
func (c *CollectionCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.data[key]
	if !ok {
		return v, false
	}
	return c.cloner.CloneValue(v), true
}

// Len returns the number of entities in the cache.
func (c *CollectionCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.data)
}

// SetData replaces the whole map. It does not change whether the cache is loading.
// Note that a load in flight still overwrites the map when it completes.
func (c *CollectionCache[K, V]) SetData(data map[K]V) error {
	if err := c.checkKeys(data); err != nil {
		return err
	}
	data = cloneMap(c.cloner, data)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.data = data
	return nil
}

// UpdateData replaces the map with the result of f applied to a copy of the current map.
// f is called with the cache locked, so it must not call methods of the cache.
// If the result violates the key invariant, the map is left untouched.
func (c *CollectionCache[K, V]) UpdateData(f func(map[K]V) map[K]V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	next := f(cloneMap(c.cloner, c.data))
	if err := c.checkKeys(next); err != nil {
		return err
	}
	c.data = cloneMap(c.cloner, next)
	return nil
}

// Put stores v under its own identifier, replacing any entity with the same identifier.
func (c *CollectionCache[K, V]) Put(v V) error {
	key := c.keyOf(v)
	v = c.cloner.CloneValue(v)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.data[key] = v
	return nil
}

// Delete removes the entity stored under key, if any.
func (c *CollectionCache[K, V]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	delete(c.data, key)
	return nil
}

func (c *CollectionCache[K, V]) checkKeys(data map[K]V) error {
	for k, v := range data {
		if id := c.keyOf(v); id != k {
			return fmt.Errorf("%w: stored under %v, identifier is %v", ErrKeyMismatch, k, id)
		}
	}
	return nil
}

// Close ends the scope of the cache. In-flight loads are canceled and their results discarded,
// the data is released, and every later operation that would modify the cache returns ErrClosed.
// Close is idempotent.
func (c *CollectionCache[K, V]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.loading = false
	c.data = map[K]V{}
	c.cancel()
	c.cond.Broadcast()
}
