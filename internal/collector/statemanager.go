package collector

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anpopa/taskmonitor/internal/reactor"
	"github.com/anpopa/taskmonitor/internal/safelist"
)

// Action selects the work a queued state manager request performs.
type Action int

const (
	MonitorCollector Action = iota
	RemoveCollector
)

type Request struct {
	Action    Action
	Collector *Collector
	// WithEventSource also deregisters the collector from the loop, which
	// closes its socket through the finalizer.
	WithEventSource bool
}

// LoopRemover is the single loop capability the state manager needs.
type LoopRemover interface {
	Remove(p reactor.Pollable)
}

const queueCapacity = 256

// StateManager tracks the active collectors and evicts the silent ones. A
// periodic timer with the inactivity timeout as its period walks the
// active list; anything older than the timeout is removed together with
// its event source.
type StateManager struct {
	logger  *slog.Logger
	loop    LoopRemover
	timeout time.Duration

	queue  *reactor.WorkQueue[Request]
	timer  *reactor.Timer
	active *safelist.List[*Collector, *Collector]
}

func NewStateManager(loop LoopRemover, timeout time.Duration, logger *slog.Logger) (*StateManager, error) {
	sm := &StateManager{
		logger:  logger,
		loop:    loop,
		timeout: timeout,
		active:  safelist.New[*Collector, *Collector](),
	}

	queue, err := reactor.NewWorkQueue[Request](queueCapacity, 0, sm.requestHandler)
	if err != nil {
		return nil, fmt.Errorf("statemanager: queue: %w", err)
	}
	sm.queue = queue

	timer, err := reactor.NewTimer(timeout, 0, sm.checkCollectors)
	if err != nil {
		queue.Finalize()
		return nil, fmt.Errorf("statemanager: timer: %w", err)
	}
	sm.timer = timer
	return sm, nil
}

func (sm *StateManager) EventSource() reactor.Pollable { return sm.queue }
func (sm *StateManager) Timer() reactor.Pollable       { return sm.timer }

func (sm *StateManager) PushRequest(rq Request) bool {
	if err := sm.queue.Push(rq); err != nil {
		sm.logger.Warn("statemanager request rejected", slog.String("error", err.Error()))
		return false
	}
	return true
}

// NotifyClosed drops the state manager's reference to a collector whose
// pollable was already finalized by the loop.
func (sm *StateManager) NotifyClosed(c *Collector) {
	sm.PushRequest(Request{Action: RemoveCollector, Collector: c})
}

// Contains reports whether c is in the committed active set.
func (sm *StateManager) Contains(c *Collector) bool {
	_, ok := sm.active.Get(c)
	return ok
}

// ActiveCount reports the committed active set size.
func (sm *StateManager) ActiveCount() int { return sm.active.Len() }

// checkCollectors runs on every timer tick and queues an eviction for
// every collector that has been silent longer than the timeout.
func (sm *StateManager) checkCollectors() bool {
	now := time.Now()
	sm.active.Foreach(func(_ *Collector, entry *Collector) bool {
		timeout := entry.InactiveTimeout()
		if timeout == 0 {
			timeout = sm.timeout
		}
		if now.Sub(entry.LastUpdate()) > timeout {
			sm.logger.Warn("collector is inactive, remove collector connection",
				slog.String("collector", entry.Name()))
			sm.PushRequest(Request{Action: RemoveCollector, Collector: entry, WithEventSource: true})
		}
		return true
	})
	return true
}

func (sm *StateManager) requestHandler(rq Request) bool {
	switch rq.Action {
	case MonitorCollector:
		sm.active.Append(rq.Collector, rq.Collector)
		sm.active.Commit()
		return true
	case RemoveCollector:
		// Drop our reference first; the RemoveCollector that the
		// finalizer's NotifyClosed queues then finds nothing to remove.
		sm.active.Remove(rq.Collector)
		sm.active.Commit()
		if rq.WithEventSource {
			sm.loop.Remove(rq.Collector)
		}
		return true
	default:
		sm.logger.Error("unknown action request", slog.Int("action", int(rq.Action)))
		return false
	}
}
