// Package startupcache buffers the first CPU, memory, and PSI samples
// captured between agent start and the first collector connection. The
// cache is bounded and short-lived: a one-shot timer drops it after the
// configured cleanup time, after which adds are ignored and replays are
// no-ops.
package startupcache

import (
	"fmt"
	"log/slog"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/anpopa/taskmonitor/internal/datasource"
	"github.com/anpopa/taskmonitor/internal/reactor"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Action selects the work a queued Request performs.
type Action int

const (
	CollectAndSend Action = iota
)

type Request struct {
	Action    Action
	Collector datasource.Collector
}

// maxSamples bounds each series independently.
const maxSamples = 64

const queueCapacity = 64

// sample is one record stamped at capture time, unlike every other Data
// producer which stamps at send time.
type sample struct {
	what      tkmpb.Data_What
	payload   proto.Message
	systemSec uint64
	monoSec   uint64
}

// Cache is loop-local: adds come from the sysproc update handlers, the
// expiry timer and the replay handler both run on the reactor.
type Cache struct {
	logger  *slog.Logger
	queue   *reactor.WorkQueue[Request]
	expired bool

	cpu []sample
	mem []sample
	psi []sample
}

func New(logger *slog.Logger) (*Cache, error) {
	c := &Cache{logger: logger}
	queue, err := reactor.NewWorkQueue[Request](queueCapacity, 0, c.requestHandler)
	if err != nil {
		return nil, fmt.Errorf("startupcache: queue: %w", err)
	}
	c.queue = queue
	return c, nil
}

func (c *Cache) Name() string                  { return "startupdata" }
func (c *Cache) EventSource() reactor.Pollable { return c.queue }

// Expired reports whether the cleanup timer has already dropped the cache.
func (c *Cache) Expired() bool { return c.expired }

// DropData empties every series and stops accepting new samples. Invoked
// by the one-shot cleanup timer.
func (c *Cache) DropData() {
	if c.expired {
		return
	}
	c.logger.Debug("startup data cache dropped")
	c.cpu, c.mem, c.psi = nil, nil, nil
	c.expired = true
}

func (c *Cache) add(list []sample, what tkmpb.Data_What, payload proto.Message) []sample {
	if c.expired || len(list) >= maxSamples {
		return list
	}
	s := sample{what: what, payload: payload, monoSec: datasource.MonotonicSec()}
	stamp := &tkmpb.Data{}
	datasource.Stamp(stamp)
	s.systemSec = stamp.GetSystemTimeSec()
	return append(list, s)
}

func (c *Cache) AddCpuData(data *tkmpb.SysProcStat) {
	c.cpu = c.add(c.cpu, tkmpb.Data_SysProcStat, data)
}

func (c *Cache) AddMemData(data *tkmpb.SysProcMemInfo) {
	c.mem = c.add(c.mem, tkmpb.Data_SysProcMemInfo, data)
}

func (c *Cache) AddPsiData(data *tkmpb.SysProcPressure) {
	c.psi = c.add(c.psi, tkmpb.Data_SysProcPressure, data)
}

// Sizes reports the current series lengths, in CPU, MEM, PSI order.
func (c *Cache) Sizes() (int, int, int) {
	return len(c.cpu), len(c.mem), len(c.psi)
}

// CollectAndSend enqueues a replay of every cached sample to c. After
// expiry the replay is a silent no-op.
func (c *Cache) CollectAndSend(collector datasource.Collector) bool {
	if err := c.queue.Push(Request{Action: CollectAndSend, Collector: collector}); err != nil {
		c.logger.Warn("collect request rejected", slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *Cache) requestHandler(rq Request) bool {
	switch rq.Action {
	case CollectAndSend:
		return c.replay(rq.Collector)
	default:
		c.logger.Error("unknown action request", slog.Int("action", int(rq.Action)))
		return false
	}
}

// replay sends the cached series in capture order: CPU first, then MEM,
// then PSI, each record carrying its capture-time stamps.
func (c *Cache) replay(collector datasource.Collector) bool {
	if c.expired {
		return true
	}
	for _, series := range [][]sample{c.cpu, c.mem, c.psi} {
		for _, s := range series {
			payload, err := anypb.New(s.payload)
			if err != nil {
				continue
			}
			collector.SendData(&tkmpb.Data{
				What:             s.what,
				SystemTimeSec:    s.systemSec,
				MonotonicTimeSec: s.monoSec,
				Payload:          payload,
			})
		}
	}
	return true
}
