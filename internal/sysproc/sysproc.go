// Package sysproc implements the system-wide data sources. Each source
// parses one /proc pseudo-file into its wire record and answers fan-out
// requests over its private work queue. All sources share the same request
// pipeline: Update enqueues a state refresh coalesced by a pending latch,
// CollectAndSend enqueues a snapshot write to a single collector.
package sysproc

import (
	"fmt"
	"log/slog"

	"google.golang.org/protobuf/proto"

	"github.com/anpopa/taskmonitor/internal/datasource"
	"github.com/anpopa/taskmonitor/internal/reactor"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Action selects the work a queued Request performs.
type Action int

const (
	UpdateStats Action = iota
	CollectAndSend
)

// Request is the unit of work on every sysproc source queue.
type Request struct {
	Action    Action
	Collector datasource.Collector
}

// StartupSink receives early samples captured before the first collector
// connects. Implementations ignore adds once expired.
type StartupSink interface {
	AddCpuData(data *tkmpb.SysProcStat)
	AddMemData(data *tkmpb.SysProcMemInfo)
	AddPsiData(data *tkmpb.SysProcPressure)
}

const queueCapacity = 1024

// base carries the request pipeline shared by all sysproc sources. The
// concrete source supplies the handler; base guarantees the pending latch
// is released after every UpdateStats regardless of outcome.
type base struct {
	name    string
	lane    datasource.UpdateLane
	logger  *slog.Logger
	queue   *reactor.WorkQueue[Request]
	pending datasource.Pending
}

func newBase(name string, lane datasource.UpdateLane, logger *slog.Logger, handler func(Request) bool) (*base, error) {
	b := &base{name: name, lane: lane, logger: logger}
	queue, err := reactor.NewWorkQueue[Request](queueCapacity, 0, func(rq Request) bool {
		if rq.Action == UpdateStats {
			defer b.pending.End()
		}
		return handler(rq)
	})
	if err != nil {
		return nil, fmt.Errorf("sysproc: %s queue: %w", name, err)
	}
	b.queue = queue
	return b, nil
}

func (b *base) Name() string { return b.name }

// EventSource exposes the queue for registration with the reactor.
func (b *base) EventSource() reactor.Pollable { return b.queue }

// Update enqueues a state refresh when the tick is on this source's lane.
// A refresh already in flight coalesces the new one into a no-op.
func (b *base) Update(lane datasource.UpdateLane) bool {
	if lane != b.lane && lane != datasource.Any {
		return true
	}
	if !b.pending.Begin() {
		return true
	}
	if err := b.queue.Push(Request{Action: UpdateStats}); err != nil {
		b.pending.End()
		b.logger.Warn("update request rejected",
			slog.String("source", b.name), slog.String("error", err.Error()))
		return false
	}
	return true
}

// CollectAndSend enqueues a fan-out of the current state to c.
func (b *base) CollectAndSend(c datasource.Collector) bool {
	if err := b.queue.Push(Request{Action: CollectAndSend, Collector: c}); err != nil {
		b.logger.Warn("collect request rejected",
			slog.String("source", b.name), slog.String("error", err.Error()))
		return false
	}
	return true
}

func sendData(c datasource.Collector, what tkmpb.Data_What, payload proto.Message) bool {
	return datasource.SendData(c, what, payload)
}

func (b *base) unknownAction(rq Request) bool {
	b.logger.Error("unknown action request",
		slog.String("source", b.name), slog.Int("action", int(rq.Action)))
	return false
}
