// Package datasource defines the contract every kernel-backed source
// implements: lane-driven state refresh plus collector fan-out. Sources own
// a private work queue; both operations only enqueue and return, the actual
// work runs on the reactor goroutine.
package datasource

import (
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// UpdateLane selects one of the three scheduler cadences.
type UpdateLane int

const (
	Fast UpdateLane = iota
	Pace
	Slow
	Any
)

func (l UpdateLane) String() string {
	switch l {
	case Fast:
		return "fast"
	case Pace:
		return "pace"
	case Slow:
		return "slow"
	default:
		return "any"
	}
}

// Collector is the narrow view a source has of a connected collector: a
// sink for Data messages. SendData reports false when the session is no
// longer writable; the source ignores the failure, teardown belongs to the
// session's own finalizer.
type Collector interface {
	Name() string
	SendData(data *tkmpb.Data) bool
}

// Source is implemented by every data source registered with the lane
// scheduler.
type Source interface {
	Name() string
	// Update is invoked on every lane tick. The source decides whether the
	// lane concerns it and, if so, enqueues an internal refresh. It must
	// not block.
	Update(lane UpdateLane) bool
	// CollectAndSend enqueues a fan-out of the source's current state to
	// the given collector only.
	CollectAndSend(c Collector) bool
}

// Pending coalesces refresh requests: Begin wins only for the first caller
// until End releases the latch. A source embeds one and skips enqueueing an
// update while a previous one is still in flight.
type Pending struct {
	flag atomic.Bool
}

func (p *Pending) Begin() bool { return p.flag.CompareAndSwap(false, true) }
func (p *Pending) End()        { p.flag.Store(false) }
func (p *Pending) Active() bool { return p.flag.Load() }

// SendData stamps and writes one Data message carrying payload to c. Write
// failures are the session's problem; the source only reports them.
func SendData(c Collector, what tkmpb.Data_What, payload proto.Message) bool {
	anyPayload, err := anypb.New(payload)
	if err != nil {
		return false
	}
	data := &tkmpb.Data{What: what, Payload: anyPayload}
	Stamp(data)
	return c.SendData(data)
}

// Stamp sets the wall-clock and monotonic second counters on data. Always
// called at send time; the startup cache is the only producer that stamps
// at capture time instead.
func Stamp(data *tkmpb.Data) {
	data.SystemTimeSec = uint64(time.Now().Unix())
	data.MonotonicTimeSec = MonotonicSec()
}

// MonotonicSec reads CLOCK_MONOTONIC, truncated to seconds.
func MonotonicSec() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return uint64(ts.Sec)
}
