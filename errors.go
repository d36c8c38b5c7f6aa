package collectioncache

import "errors"

var (
	// ErrClosed is returned by operations on a cache whose scope has ended.
	ErrClosed = errors.New("collection cache is closed")

	// ErrSuperseded is returned by a load whose result was discarded
	// because a newer load was started before it completed.
	ErrSuperseded = errors.New("load was superseded by a newer load")

	// ErrKeyMismatch is returned when a map stores an entity under a key
	// different from the entity's own identifier.
	ErrKeyMismatch = errors.New("map key does not match entity identifier")
)

// errGoexit is the outcome of a load whose source called runtime.Goexit.
var errGoexit = errors.New("runtime.Goexit is called")
