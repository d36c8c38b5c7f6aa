// Package ctxsync provides synchronization primitives that respect context cancellation.
package ctxsync

import (
	"context"
	"sync"
)

// Cond is a wrapper of sync.Cond that can wait with context.
type Cond struct {
	*sync.Cond
}

// NewCond returns a Cond bound to l.
func NewCond(l sync.Locker) Cond {
	return Cond{Cond: sync.NewCond(l)}
}

// WaitCtx waits to be notified or canceled. c.L must be held when calling WaitCtx.
//
// On notification it returns nil with c.L held, like sync.Cond.Wait.
// If the context is canceled first, it returns the context error with c.L NOT held;
// the lock is released in the background once the pending wait is woken up by the next broadcast.
func (c Cond) WaitCtx(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		c.L.Unlock()
		return err
	}

	woken := make(chan struct{})
	go func() {
		defer close(woken)
		c.Cond.Wait()
	}()

	select {
	case <-woken:
		return nil
	case <-ctx.Done():
		go func() {
			defer c.Cond.L.Unlock()
			<-woken
		}()
		return ctx.Err()
	}
}

// WaitUntil waits with WaitCtx until done reports true. c.L must be held when calling WaitUntil,
// and done is always evaluated with c.L held.
//
// It returns nil with c.L held once done is satisfied, or the context error with c.L NOT held.
func (c Cond) WaitUntil(ctx context.Context, done func() bool) error {
	for !done() {
		if err := c.WaitCtx(ctx); err != nil {
			return err
		}
	}
	return nil
}
