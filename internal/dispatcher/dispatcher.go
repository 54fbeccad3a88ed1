// Package dispatcher routes typed collector requests to the owning source.
// It never blocks or waits for results: each case forwards a CollectAndSend
// onto the target source's queue, carrying the originating collector, and
// backpressure is whatever that queue's bound provides.
package dispatcher

import (
	"fmt"
	"log/slog"

	"github.com/anpopa/taskmonitor/internal/datasource"
	"github.com/anpopa/taskmonitor/internal/reactor"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Action selects the source a request is routed to.
type Action int

const (
	GetProcAcct Action = iota
	GetProcInfo
	GetProcEventStats
	GetSysProcMemInfo
	GetSysProcDiskStats
	GetSysProcStat
	GetSysProcPressure
	GetSysProcBuddyInfo
	GetSysProcWireless
	GetSysProcVMStat
	GetContextInfo
	GetStartupData
)

// ActionFor maps a wire request type onto a dispatcher action. CreateSession
// is session-layer business and deliberately has no mapping here.
func ActionFor(t tkmpb.Request_Type) (Action, bool) {
	switch t {
	case tkmpb.Request_GetProcAcct:
		return GetProcAcct, true
	case tkmpb.Request_GetProcInfo:
		return GetProcInfo, true
	case tkmpb.Request_GetProcEventStats:
		return GetProcEventStats, true
	case tkmpb.Request_GetSysProcMemInfo:
		return GetSysProcMemInfo, true
	case tkmpb.Request_GetSysProcDiskStats:
		return GetSysProcDiskStats, true
	case tkmpb.Request_GetSysProcStat:
		return GetSysProcStat, true
	case tkmpb.Request_GetSysProcPressure:
		return GetSysProcPressure, true
	case tkmpb.Request_GetSysProcBuddyInfo:
		return GetSysProcBuddyInfo, true
	case tkmpb.Request_GetSysProcWireless:
		return GetSysProcWireless, true
	case tkmpb.Request_GetSysProcVMStat:
		return GetSysProcVMStat, true
	case tkmpb.Request_GetContextInfo:
		return GetContextInfo, true
	case tkmpb.Request_GetStartupData:
		return GetStartupData, true
	default:
		return 0, false
	}
}

type Request struct {
	Action    Action
	Collector datasource.Collector
}

// CollectSender is the fan-out half of the data source contract.
type CollectSender interface {
	CollectAndSend(c datasource.Collector) bool
}

// RegistrySender is the process registry's three fan-out flavors.
type RegistrySender interface {
	CollectAndSendProcAcct(c datasource.Collector) bool
	CollectAndSendProcInfo(c datasource.Collector) bool
	CollectAndSendContextInfo(c datasource.Collector) bool
}

// Sources binds each action to its owner. A nil source means the module is
// disabled; requests for it are acknowledged and dropped.
type Sources struct {
	Registry    RegistrySender
	ProcEvent   CollectSender
	Stat        CollectSender
	MemInfo     CollectSender
	VMStat      CollectSender
	DiskStats   CollectSender
	BuddyInfo   CollectSender
	Pressure    CollectSender
	Wireless    CollectSender
	StartupData CollectSender
}

const queueCapacity = 4096

type Dispatcher struct {
	logger *slog.Logger
	queue  *reactor.WorkQueue[Request]
	src    Sources
}

func New(src Sources, logger *slog.Logger) (*Dispatcher, error) {
	d := &Dispatcher{logger: logger, src: src}
	queue, err := reactor.NewWorkQueue[Request](queueCapacity, 0, d.requestHandler)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: queue: %w", err)
	}
	d.queue = queue
	return d, nil
}

func (d *Dispatcher) EventSource() reactor.Pollable { return d.queue }

// PushRequest enqueues a routing request from any goroutine.
func (d *Dispatcher) PushRequest(rq Request) bool {
	if err := d.queue.Push(rq); err != nil {
		d.logger.Warn("dispatcher request rejected", slog.String("error", err.Error()))
		return false
	}
	return true
}

func forward(src CollectSender, c datasource.Collector) bool {
	if src == nil {
		// Module not enabled; nothing to collect.
		return true
	}
	return src.CollectAndSend(c)
}

func (d *Dispatcher) requestHandler(rq Request) bool {
	switch rq.Action {
	case GetProcAcct:
		if d.src.Registry == nil {
			return true
		}
		return d.src.Registry.CollectAndSendProcAcct(rq.Collector)
	case GetProcInfo:
		if d.src.Registry == nil {
			return true
		}
		return d.src.Registry.CollectAndSendProcInfo(rq.Collector)
	case GetContextInfo:
		if d.src.Registry == nil {
			return true
		}
		return d.src.Registry.CollectAndSendContextInfo(rq.Collector)
	case GetProcEventStats:
		return forward(d.src.ProcEvent, rq.Collector)
	case GetSysProcStat:
		return forward(d.src.Stat, rq.Collector)
	case GetSysProcMemInfo:
		return forward(d.src.MemInfo, rq.Collector)
	case GetSysProcVMStat:
		return forward(d.src.VMStat, rq.Collector)
	case GetSysProcDiskStats:
		return forward(d.src.DiskStats, rq.Collector)
	case GetSysProcBuddyInfo:
		return forward(d.src.BuddyInfo, rq.Collector)
	case GetSysProcWireless:
		return forward(d.src.Wireless, rq.Collector)
	case GetSysProcPressure:
		return forward(d.src.Pressure, rq.Collector)
	case GetStartupData:
		return forward(d.src.StartupData, rq.Collector)
	default:
		d.logger.Error("unknown action request", slog.Int("action", int(rq.Action)))
		return false
	}
}
