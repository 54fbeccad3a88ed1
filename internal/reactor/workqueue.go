package reactor

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// WorkQueue is a bounded MPMC queue bound to the Loop via an eventfd wake.
// Any goroutine may Push; only the loop goroutine ever calls the bound
// handler, on each wake, once per pending item. Pushing from a netlink
// read-loop or an accounting callback hands work to the reactor without the
// pusher touching the owning source's internal state.
type WorkQueue[T any] struct {
	fd       int
	priority int
	handler  func(T) bool

	mu       sync.Mutex
	items    []T
	capacity int
	closed   bool
}

// ErrQueueClosed is returned by Push once the queue has been closed.
// Producers are rejected fail-fast; there is no blocking or retry.
var ErrQueueClosed = fmt.Errorf("reactor: work queue closed")

// ErrQueueFull is returned by Push when capacity is exceeded.
var ErrQueueFull = fmt.Errorf("reactor: work queue full")

// NewWorkQueue creates a work queue with the given bound (0 means
// unbounded) and priority. handler is invoked once per drained item, on the
// loop goroutine. Its return value is ignored: a false return neither stops
// the drain nor removes the queue from the loop (see OnReadable).
func NewWorkQueue[T any](capacity int, priority int, handler func(T) bool) (*WorkQueue[T], error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("reactor: eventfd: %w", err)
	}
	return &WorkQueue[T]{fd: fd, priority: priority, handler: handler, capacity: capacity}, nil
}

// Push enqueues item and wakes the loop. Safe for concurrent use from any
// goroutine, including the loop goroutine itself.
func (q *WorkQueue[T]) Push(item T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	if q.capacity > 0 && len(q.items) >= q.capacity {
		q.mu.Unlock()
		return ErrQueueFull
	}
	q.items = append(q.items, item)
	q.mu.Unlock()

	var one [8]byte
	one[7] = 1
	_, err := unix.Write(q.fd, one[:])
	if err != nil && err != unix.EAGAIN {
		return fmt.Errorf("reactor: eventfd write: %w", err)
	}
	return nil
}

func (q *WorkQueue[T]) FD() int       { return q.fd }
func (q *WorkQueue[T]) Priority() int { return q.priority }

// OnReadable drains every item staged since the previous wake and invokes
// handler for each, in FIFO order. It always returns true: a work queue is
// never torn down by handler failures, only by explicit Close.
func (q *WorkQueue[T]) OnReadable() bool {
	var buf [8]byte
	_, _ = unix.Read(q.fd, buf[:])

	q.mu.Lock()
	pending := q.items
	q.items = nil
	q.mu.Unlock()

	for _, item := range pending {
		q.handler(item)
	}
	return true
}

// Finalize closes the eventfd. Safe to call even if Close was already
// called.
func (q *WorkQueue[T]) Finalize() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	_ = unix.Close(q.fd)
}

// Close marks the queue closed; subsequent Push calls fail fast.
func (q *WorkQueue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

// Len reports the number of items currently staged (not yet drained).
func (q *WorkQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
