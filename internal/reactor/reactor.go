// Package reactor implements the single-threaded event loop at the center
// of the monitor: one goroutine multiplexes pollable file descriptors,
// timers, and work queues, ordered by priority within a single wake. There
// is no implicit thread pool. Every Handler registered with the Loop runs
// on the loop's own goroutine, so a source's internal state needs no
// locking against itself.
package reactor

import (
	"container/heap"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sys/unix"
)

// Handler is invoked when a pollable's fd becomes readable. Returning false
// causes the pollable to be deregistered and finalized.
type Handler func() bool

// Pollable is a source the Loop multiplexes. Priority orders dispatch among
// fds that are simultaneously readable within one epoll_wait wake: lower
// values run first.
type Pollable interface {
	FD() int
	Priority() int
	// OnReadable is the registered Handler.
	OnReadable() bool
	// Finalize releases the resources owned by this pollable (typically
	// closing FD()). Called exactly once: on handler failure, on explicit
	// Loop.Remove, or by Loop.Close for every pollable still registered.
	Finalize()
}

// Loop is the reactor. It is not safe for concurrent use except where
// documented (the thread-safe enqueue side of a WorkQueue).
type Loop struct {
	epfd   int
	logger *slog.Logger

	mu        sync.Mutex
	pollables map[int]Pollable // fd -> pollable
	closing   bool

	wakeEvents []epollReady
}

type epollReady struct {
	fd       int32
	priority int
}

// New creates a Loop backed by a fresh epoll instance.
func New(logger *slog.Logger) (*Loop, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("reactor: epoll_create1: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{epfd: epfd, logger: logger, pollables: make(map[int]Pollable)}, nil
}

// Add registers p for readability notifications. p.FD() must be a valid,
// open, non-blocking file descriptor.
func (l *Loop) Add(p Pollable) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closing {
		return fmt.Errorf("reactor: loop is closing")
	}
	fd := p.FD()
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
	if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return fmt.Errorf("reactor: epoll_ctl add fd=%d: %w", fd, err)
	}
	l.pollables[fd] = p
	return nil
}

// Remove deregisters and finalizes p. Idempotent.
func (l *Loop) Remove(p Pollable) {
	l.mu.Lock()
	fd := p.FD()
	_, tracked := l.pollables[fd]
	delete(l.pollables, fd)
	l.mu.Unlock()
	if !tracked {
		return
	}
	_ = unix.EpollCtl(l.epfd, unix.EPOLL_CTL_DEL, fd, nil)
	p.Finalize()
}

// Run blocks, servicing wakes until stop is closed. Each wake collects every
// ready fd, sorts them by Priority, and invokes OnReadable in that order.
func (l *Loop) Run(stop <-chan struct{}) {
	const maxEvents = 64
	events := make([]unix.EpollEvent, maxEvents)
	for {
		select {
		case <-stop:
			return
		default:
		}

		n, err := unix.EpollWait(l.epfd, events, 250)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			l.logger.Error("reactor: epoll_wait failed", slog.String("error", err.Error()))
			return
		}
		if n == 0 {
			continue
		}

		ready := l.readyPollables(events[:n])
		for _, rp := range ready {
			if !rp.OnReadable() {
				l.Remove(rp)
			}
		}
	}
}

type readyHeap []Pollable

func (h readyHeap) Len() int            { return len(h) }
func (h readyHeap) Less(i, j int) bool  { return h[i].Priority() < h[j].Priority() }
func (h readyHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *readyHeap) Push(x interface{}) { *h = append(*h, x.(Pollable)) }
func (h *readyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (l *Loop) readyPollables(events []unix.EpollEvent) []Pollable {
	l.mu.Lock()
	h := make(readyHeap, 0, len(events))
	for _, ev := range events {
		if p, ok := l.pollables[int(ev.Fd)]; ok {
			h = append(h, p)
		}
	}
	l.mu.Unlock()
	heap.Init(&h)
	out := make([]Pollable, 0, len(h))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(Pollable))
	}
	return out
}

// Close tears down every remaining pollable and the epoll instance itself.
func (l *Loop) Close() error {
	l.mu.Lock()
	l.closing = true
	remaining := make([]Pollable, 0, len(l.pollables))
	for _, p := range l.pollables {
		remaining = append(remaining, p)
	}
	l.pollables = make(map[int]Pollable)
	l.mu.Unlock()

	for _, p := range remaining {
		p.Finalize()
	}
	return unix.Close(l.epfd)
}
