// Package memo provides a process-local, concurrency-safe memo for values that
// are expensive to compute and fully determined by their key.
//
// Concurrent misses for the same key are collapsed into one load. Failed
// loads are not stored, so a later call retries.
//
//	m := memo.New[version.Descriptor]()
//	desc, hit, err := m.GetOrLoad(ctx, key, load)
package memo

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo maps keys to loaded values for the lifetime of the process.
type Memo[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	group   singleflight.Group
}

// New creates an empty Memo.
func New[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[string]V)}
}

// GetOrLoad returns the stored value for key, or calls load and stores its
// result. hit reports whether the value came from the memo. Callers that
// arrive while a load for the same key is in flight wait for it and count
// as misses.
//
// The shared load runs on ctx without its cancellation, so one caller giving
// up does not fail the others. Each caller still returns ctx.Err() as soon as
// its own ctx is done.
func (m *Memo[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, bool, error) {
	var zero V
	if v, ok := m.Get(key); ok {
		return v, true, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(key, func() (any, error) {
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		v, err := load(loadCtx)
		if err != nil {
			return v, err
		}
		m.mu.Lock()
		m.entries[key] = v
		m.mu.Unlock()
		return v, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
	if res.Err != nil {
		return zero, false, res.Err
	}

	v, ok := res.Val.(V)
	if !ok {
		return zero, false, fmt.Errorf("memo: value for %q has type %T", key, res.Val)
	}
	return v, false, nil
}

// Get returns the stored value for key under a read lock.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of stored entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Purge drops every stored entry.
func (m *Memo[V]) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
}
