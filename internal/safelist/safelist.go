// Package safelist implements the copy-on-commit collection that is the
// sole cross-thread handoff primitive in TaskMonitor: writers stage
// append/remove operations from any goroutine, and the single reactor
// goroutine iterates a stable, already-published snapshot via Foreach.
//
// Iteration never blocks a producer and never observes a half-built
// mutation. This is deliberately not a mutex-guarded slice: Foreach takes no
// lock for the duration of the walk, only for the instant it swaps in the
// published snapshot reference.
package safelist

import "sync"

// List is a copy-on-commit container of T, keyed by K for remove lookups.
type List[K comparable, T any] struct {
	mu         sync.Mutex
	staging    map[K]T
	staged     []K // preserves insertion order for staging appends
	tombstones map[K]struct{}

	published atomicSnapshot[K, T]
}

type atomicSnapshot[K comparable, T any] struct {
	mu   sync.Mutex
	view map[K]T
	order []K
}

// New constructs an empty List.
func New[K comparable, T any]() *List[K, T] {
	l := &List[K, T]{staging: make(map[K]T)}
	l.published.view = make(map[K]T)
	return l
}

// Append stages an insert or update of item under key. Staged appends are
// invisible to Foreach until the next Commit.
func (l *List[K, T]) Append(key K, item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.staging[key]; !exists {
		l.staged = append(l.staged, key)
	}
	l.staging[key] = item
}

// Remove stages a deletion of key. Like Append, it is invisible until the
// next Commit. Removing a key that was only ever staged (never committed)
// is also valid and simply drops it from the staging set.
func (l *List[K, T]) Remove(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.staging[key]; exists {
		delete(l.staging, key)
		for i, k := range l.staged {
			if k == key {
				l.staged = append(l.staged[:i], l.staged[i+1:]...)
				break
			}
		}
	}
	// Mark for removal from the published snapshot on next commit by
	// staging a tombstone: absence from staging plus presence in the
	// published view is resolved in Commit. A staged update of a committed
	// key is tombstoned too; Commit ignores tombstones of unpublished keys.
	l.tombstone(key)
}

func (l *List[K, T]) tombstone(key K) {
	if l.tombstones == nil {
		l.tombstones = make(map[K]struct{})
	}
	l.tombstones[key] = struct{}{}
}

// Commit atomically publishes every staged append/remove since the last
// Commit. After Commit returns, Foreach observes exactly the staged state:
// staged items present, removed/tombstoned items absent. The staging buffers
// are drained: each Commit publishes only the deltas since the previous one.
func (l *List[K, T]) Commit() {
	l.mu.Lock()
	staged := l.staged
	staging := l.staging
	tombstones := l.tombstones
	l.tombstones = nil
	l.staging = make(map[K]T)
	l.staged = nil
	l.mu.Unlock()

	l.published.mu.Lock()
	view := make(map[K]T, len(l.published.view)+len(staged))
	order := make([]K, 0, len(l.published.order)+len(staged))
	// Surviving items keep their positions; staged updates replace values
	// in place.
	for _, k := range l.published.order {
		if _, removed := tombstones[k]; removed {
			continue
		}
		if v, updated := staging[k]; updated {
			view[k] = v
		} else {
			view[k] = l.published.view[k]
		}
		order = append(order, k)
	}
	for _, k := range staged {
		if _, exists := view[k]; exists {
			continue
		}
		view[k] = staging[k]
		order = append(order, k)
	}
	l.published.view = view
	l.published.order = order
	l.published.mu.Unlock()
}

// Foreach walks the most recently committed snapshot in insertion order,
// calling fn for each item. fn returning false stops the walk early.
// Foreach never observes concurrent Append/Remove/Commit activity: it holds
// the published snapshot reference for the whole walk, acquiring the lock
// only long enough to copy that reference out.
func (l *List[K, T]) Foreach(fn func(key K, item T) bool) {
	l.published.mu.Lock()
	view := l.published.view
	order := l.published.order
	l.published.mu.Unlock()

	for _, k := range order {
		item, ok := view[k]
		if !ok {
			continue
		}
		if !fn(k, item) {
			return
		}
	}
}

// Get returns the committed value for key, if present.
func (l *List[K, T]) Get(key K) (T, bool) {
	l.published.mu.Lock()
	defer l.published.mu.Unlock()
	v, ok := l.published.view[key]
	return v, ok
}

// Len returns the number of items in the most recently committed snapshot.
func (l *List[K, T]) Len() int {
	l.published.mu.Lock()
	defer l.published.mu.Unlock()
	return len(l.published.order)
}
