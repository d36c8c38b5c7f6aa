package ctxsync_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/karupanerura/collection-cache/internal/ctxsync"
)

func TestCond_WaitCtx(t *testing.T) {
	t.Parallel()

	t.Run("CanceledContext", func(t *testing.T) {
		t.Parallel()

		mu := &sync.Mutex{}
		cond := ctxsync.NewCond(mu)
		mu.Lock()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := cond.WaitCtx(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("WaitCtx did not return expected error for canceled context: got %v, want %v", err, context.Canceled)
		}

		// the lock must have been released
		if !mu.TryLock() {
			t.Fatal("expected the lock to be released")
		}
		mu.Unlock()
	})

	t.Run("SuccessfulWait", func(t *testing.T) {
		t.Parallel()

		mu := &sync.Mutex{}
		cond := ctxsync.NewCond(mu)
		ready := false
		done := make(chan error, 1)

		go func() {
			mu.Lock()
			defer mu.Unlock()
			done <- cond.WaitUntil(context.Background(), func() bool { return ready })
		}()

		time.Sleep(50 * time.Millisecond)
		mu.Lock()
		ready = true
		cond.Broadcast()
		mu.Unlock()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("WaitUntil failed with valid context: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("WaitUntil did not complete within expected time")
		}
	})

	t.Run("CancellationDuringWait", func(t *testing.T) {
		t.Parallel()

		mu := &sync.Mutex{}
		cond := ctxsync.NewCond(mu)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		mu.Lock()
		err := cond.WaitUntil(ctx, func() bool { return false })
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got: %v", err)
		}

		// wakes up the pending wait, which then gives the lock back
		mu.Lock()
		cond.Broadcast()
		mu.Unlock()

		deadline := time.Now().Add(2 * time.Second)
		for !mu.TryLock() {
			if time.Now().After(deadline) {
				t.Fatal("the lock was never released")
			}
			time.Sleep(time.Millisecond)
		}
		mu.Unlock()
	})

	t.Run("SpuriousWakeup", func(t *testing.T) {
		t.Parallel()

		mu := &sync.Mutex{}
		cond := ctxsync.NewCond(mu)
		count := 0
		done := make(chan error, 1)

		go func() {
			mu.Lock()
			defer mu.Unlock()
			done <- cond.WaitUntil(context.Background(), func() bool { return count >= 3 })
		}()

		for range 3 {
			time.Sleep(10 * time.Millisecond)
			mu.Lock()
			count++
			cond.Broadcast()
			mu.Unlock()
		}

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("WaitUntil did not complete within expected time")
		}
	})
}
