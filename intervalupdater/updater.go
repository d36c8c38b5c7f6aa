// Package intervalupdater refreshes collections in the background at a fixed interval.
package intervalupdater

import (
	"context"
	"errors"
	"time"

	collectioncache "github.com/karupanerura/collection-cache"
)

// IntervalUpdater is a background updater that refreshes a collection at a fixed interval.
// It calls Refresh of any collectioncache.RefreshCollection, so loaded collections stay
// up-to-date without being reloaded by their consumers.
type IntervalUpdater struct {
	target   collectioncache.RefreshCollection
	interval time.Duration
	onError  func(error)
}

// NewIntervalUpdater creates a new IntervalUpdater.
// onError receives every refresh error except collectioncache.ErrSuperseded; it may be nil
// when the target already reports its failures.
func NewIntervalUpdater(target collectioncache.RefreshCollection, interval time.Duration, onError func(error)) *IntervalUpdater {
	if interval <= 0 {
		panic("interval must be positive")
	}
	return &IntervalUpdater{
		target:   target,
		interval: interval,
		onError:  onError,
	}
}

// Launch starts the background updater. It refreshes the target immediately and then at every interval.
// The updater stops when ctx is canceled or the target reports collectioncache.ErrClosed.
// The returned channel is closed once the updater has stopped.
func (u *IntervalUpdater) Launch(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		u.poll(ctx)
	}()
	return done
}

// poll refreshes the target at the fixed interval.
func (u *IntervalUpdater) poll(ctx context.Context) {
	if !u.refresh(ctx) {
		return
	}

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if !u.refresh(ctx) {
				return
			}
		}
	}
}

// refresh refreshes the target once and reports whether polling should continue.
func (u *IntervalUpdater) refresh(ctx context.Context) bool {
	err := u.target.Refresh(ctx)
	switch {
	case err == nil, errors.Is(err, collectioncache.ErrSuperseded):
		return true
	case errors.Is(err, collectioncache.ErrClosed):
		return false
	case ctx.Err() != nil:
		return false
	default:
		if u.onError != nil {
			u.onError(err)
		}
		return true
	}
}
