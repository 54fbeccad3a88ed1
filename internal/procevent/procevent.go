// Package procevent subscribes to the kernel's process event connector and
// feeds fork/exec/exit transitions into the process registry while counting
// every event kind for collector fan-out.
//
// Privilege requirement: opening a NETLINK_CONNECTOR socket and subscribing
// to process events requires CAP_NET_ADMIN (or uid 0).
package procevent

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/anpopa/taskmonitor/internal/datasource"
	"github.com/anpopa/taskmonitor/internal/reactor"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Netlink connector kernel ABI constants, from <linux/netlink.h> and
// <linux/connector.h>. Never change.
const (
	netlinkConnector = 11

	// cnIdxProc / cnValProc identify the process-events connector.
	cnIdxProc uint32 = 1
	cnValProc uint32 = 1

	procCNMcastListen uint32 = 1
)

// proc_event.what discriminators from <linux/cn_proc.h>.
const (
	procEventNone uint32 = 0x00000000
	procEventFork uint32 = 0x00000001
	procEventExec uint32 = 0x00000002
	procEventUID  uint32 = 0x00000004
	procEventGID  uint32 = 0x00000040
	procEventExit uint32 = 0x80000000
)

// Kernel struct sizes, matching the C layouts in <linux/cn_proc.h>:
//
//	struct cn_msg         { idx(4) val(4) seq(4) ack(4) len(2) flags(2) }  → 20 B
//	struct proc_event hdr { what(4) cpu(4) timestamp_ns(8) }               → 16 B
const (
	nlMsgHdrSize   = 16
	cnMsgSize      = 20
	procEvtHdrSize = 16
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

// Registry is the narrow view this source has of the process registry.
type Registry interface {
	AddProcEntry(pid int)
	UpdProcEntry(pid int)
	RemProcEntry(pid int)
}

// Config carries the socket buffer sizes.
type Config struct {
	RxBufferSize int
	TxBufferSize int
}

const queueCapacity = 1024

// ProcEvent is both a pollable (the connector socket) and a data source
// (the per-kind event counters). Losing the socket means the monitor's
// worldview diverges from the kernel, so the finalizer escalates through
// OnFatal instead of limping along.
type ProcEvent struct {
	logger   *slog.Logger
	fd       int
	queue    *reactor.WorkQueue[Request]
	registry Registry
	data     *tkmpb.ProcEvent

	// OnFatal is invoked from the finalizer; the default raises SIGTERM so
	// a supervisor restarts the whole agent.
	OnFatal func()
}

func New(cfg Config, registry Registry, logger *slog.Logger) (*ProcEvent, error) {
	fd, err := unix.Socket(unix.AF_NETLINK, unix.SOCK_DGRAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, netlinkConnector)
	if err != nil {
		return nil, fmt.Errorf("procevent: open NETLINK_CONNECTOR socket: %w (requires CAP_NET_ADMIN)", err)
	}
	if cfg.RxBufferSize > 0 {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF, cfg.RxBufferSize); err != nil {
			_ = unix.Close(fd)
			return nil, fmt.Errorf("procevent: set rx buffer size: %w", err)
		}
	}
	if cfg.TxBufferSize > 0 {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_SNDBUF, cfg.TxBufferSize); err != nil {
			_ = unix.Close(fd)
			return nil, fmt.Errorf("procevent: set tx buffer size: %w", err)
		}
	}

	sa := &unix.SockaddrNetlink{
		Family: unix.AF_NETLINK,
		Groups: cnIdxProc,
		Pid:    uint32(os.Getpid()),
	}
	if err := unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("procevent: bind NETLINK_CONNECTOR: %w", err)
	}

	p := &ProcEvent{
		logger:   logger,
		fd:       fd,
		registry: registry,
		data:     &tkmpb.ProcEvent{},
		OnFatal: func() {
			_ = unix.Kill(os.Getpid(), unix.SIGTERM)
		},
	}
	queue, err := reactor.NewWorkQueue[Request](queueCapacity, 0, p.requestHandler)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("procevent: queue: %w", err)
	}
	p.queue = queue
	return p, nil
}

func (p *ProcEvent) Name() string                  { return "procevent" }
func (p *ProcEvent) FD() int                       { return p.fd }
func (p *ProcEvent) Priority() int                 { return 0 }
func (p *ProcEvent) EventSource() reactor.Pollable { return p.queue }

// StartMonitoring asks the kernel to begin multicasting process events to
// this socket.
func (p *ProcEvent) StartMonitoring() error {
	const opSize = 4
	const totalSize = nlMsgHdrSize + cnMsgSize + opSize
	buf := make([]byte, totalSize)

	// nlmsghdr
	binary.NativeEndian.PutUint32(buf[0:4], uint32(totalSize))
	binary.NativeEndian.PutUint16(buf[4:6], unix.NLMSG_DONE)
	binary.NativeEndian.PutUint32(buf[12:16], uint32(os.Getpid()))

	// cn_msg
	off := nlMsgHdrSize
	binary.NativeEndian.PutUint32(buf[off:off+4], cnIdxProc)
	binary.NativeEndian.PutUint32(buf[off+4:off+8], cnValProc)
	binary.NativeEndian.PutUint16(buf[off+16:off+18], opSize)

	// op payload
	off += cnMsgSize
	binary.NativeEndian.PutUint32(buf[off:off+4], procCNMcastListen)

	dst := &unix.SockaddrNetlink{Family: unix.AF_NETLINK}
	if err := unix.Sendto(p.fd, buf, 0, dst); err != nil {
		return fmt.Errorf("procevent: subscribe to proc events: %w", err)
	}
	return nil
}

// OnReadable drains one datagram per wake. A read error other than EAGAIN
// tears the source down, which is fatal for the whole agent.
func (p *ProcEvent) OnReadable() bool {
	buf := make([]byte, 8*1024)
	n, _, err := unix.Recvfrom(p.fd, buf, 0)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return true
		}
		p.logger.Error("netlink process receive error", slog.String("error", err.Error()))
		return false
	}
	if n == 0 {
		return true
	}

	msgs, err := syscall.ParseNetlinkMessage(buf[:n])
	if err != nil {
		p.logger.Warn("parse netlink message", slog.String("error", err.Error()))
		return true
	}
	for i := range msgs {
		p.handleNetlinkMessage(&msgs[i])
	}
	return true
}

func (p *ProcEvent) handleNetlinkMessage(msg *syscall.NetlinkMessage) {
	if msg.Header.Type == unix.NLMSG_ERROR {
		return
	}
	data := msg.Data
	if len(data) < cnMsgSize+procEvtHdrSize {
		return
	}
	idx := binary.NativeEndian.Uint32(data[0:4])
	val := binary.NativeEndian.Uint32(data[4:8])
	if idx != cnIdxProc || val != cnValProc {
		return
	}
	payloadLen := int(binary.NativeEndian.Uint16(data[16:18]))
	payload := data[cnMsgSize:]
	if payloadLen > len(payload) {
		return
	}
	p.handleProcEvent(payload[:payloadLen])
}

// handleProcEvent decodes one struct proc_event and applies it: counters
// always, registry transitions for whole processes only (pid == tgid).
func (p *ProcEvent) handleProcEvent(payload []byte) {
	if len(payload) < procEvtHdrSize {
		return
	}
	what := binary.NativeEndian.Uint32(payload[0:4])
	event := payload[procEvtHdrSize:]

	u32 := func(off int) int {
		if off+4 > len(event) {
			return -1
		}
		return int(binary.NativeEndian.Uint32(event[off : off+4]))
	}

	switch what {
	case procEventNone:
		p.logger.Debug("proc event mcast listen ok")
	case procEventFork:
		childPid, childTgid := u32(8), u32(12)
		p.logger.Debug("proc event fork",
			slog.Int("child_pid", childPid), slog.Int("child_tgid", childTgid))
		p.data.ForkCount++
		// Threads never get a registry entry.
		if childPid >= 0 && childPid == childTgid {
			p.registry.AddProcEntry(childTgid)
		}
	case procEventExec:
		pid := u32(0)
		p.logger.Debug("proc event exec", slog.Int("process_pid", pid))
		p.data.ExecCount++
		if pid >= 0 {
			p.registry.UpdProcEntry(pid)
		}
	case procEventUID:
		p.data.UidCount++
	case procEventGID:
		p.data.GidCount++
	case procEventExit:
		pid, tgid := u32(0), u32(4)
		p.logger.Debug("proc event exit",
			slog.Int("process_pid", pid), slog.Int("process_tgid", tgid))
		p.data.ExitCount++
		if pid >= 0 && pid == tgid {
			p.registry.RemProcEntry(pid)
		}
	default:
	}
}

// Finalize closes the socket and escalates: without process events the
// registry can no longer track the system.
func (p *ProcEvent) Finalize() {
	if p.fd > 0 {
		_ = unix.Close(p.fd)
		p.fd = -1
	}
	p.logger.Info("process event source closed, terminate")
	if p.OnFatal != nil {
		p.OnFatal()
	}
}

func (p *ProcEvent) requestHandler(rq Request) bool {
	switch rq.Action {
	case CollectAndSend:
		return datasource.SendData(rq.Collector, tkmpb.Data_ProcEvent, p.snapshot())
	default:
		p.logger.Error("unknown action request", slog.Int("action", int(rq.Action)))
		return false
	}
}

func (p *ProcEvent) snapshot() *tkmpb.ProcEvent {
	return &tkmpb.ProcEvent{
		ForkCount: p.data.ForkCount,
		ExecCount: p.data.ExecCount,
		ExitCount: p.data.ExitCount,
		UidCount:  p.data.UidCount,
		GidCount:  p.data.GidCount,
	}
}

// Update satisfies the data source contract; the connector is push-driven
// so lane ticks carry no work.
func (p *ProcEvent) Update(datasource.UpdateLane) bool { return true }

// CollectAndSend enqueues a counters snapshot for c.
func (p *ProcEvent) CollectAndSend(c datasource.Collector) bool {
	if err := p.queue.Push(Request{Action: CollectAndSend, Collector: c}); err != nil {
		p.logger.Warn("collect request rejected", slog.String("error", err.Error()))
		return false
	}
	return true
}
