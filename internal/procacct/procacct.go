// Package procacct speaks the TASKSTATS generic netlink family. The
// request path sends a TASKSTATS_CMD_GET for one pid; the receive path
// decodes the aggregated reply and installs the accounting record on the
// matching registry entry. Replies are handed to the reactor through a work
// queue so that registry state is only ever touched on the loop goroutine.
package procacct

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	"github.com/anpopa/taskmonitor/internal/reactor"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Registry is the narrow view this source has of the process registry.
type Registry interface {
	UpdateProcAcct(pid int, acct *tkmpb.ProcAcct) bool
}

// Config carries the socket buffer sizes. Conservative defaults keep room
// for a full registry worth of replies.
type Config struct {
	RxBufferSize int
	TxBufferSize int
}

const defaultBufferSize = 1 << 20

const queueCapacity = 4096

// ProcAcct owns the generic netlink connection. A dedicated goroutine
// blocks in Receive and pushes decoded records onto the queue; everything
// else runs on the reactor.
type ProcAcct struct {
	logger   *slog.Logger
	conn     *genetlink.Conn
	familyID uint16
	queue    *reactor.WorkQueue[*tkmpb.ProcAcct]
	registry Registry
	done     chan struct{}
}

func New(cfg Config, registry Registry, logger *slog.Logger) (*ProcAcct, error) {
	conn, err := genetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("procacct: dial generic netlink: %w", err)
	}

	if cfg.RxBufferSize <= 0 {
		cfg.RxBufferSize = defaultBufferSize
	}
	if cfg.TxBufferSize <= 0 {
		cfg.TxBufferSize = defaultBufferSize
	}
	if err := conn.SetReadBuffer(cfg.RxBufferSize); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("procacct: set rx buffer size: %w", err)
	}
	if err := conn.SetWriteBuffer(cfg.TxBufferSize); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("procacct: set tx buffer size: %w", err)
	}

	family, err := conn.GetFamily(unix.TASKSTATS_GENL_NAME)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("procacct: resolve taskstats family: %w", err)
	}

	p := &ProcAcct{
		logger:   logger,
		conn:     conn,
		familyID: family.ID,
		registry: registry,
		done:     make(chan struct{}),
	}
	queue, err := reactor.NewWorkQueue[*tkmpb.ProcAcct](queueCapacity, 0, p.applyAcct)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("procacct: queue: %w", err)
	}
	p.queue = queue
	return p, nil
}

func (p *ProcAcct) Name() string                  { return "procacct" }
func (p *ProcAcct) EventSource() reactor.Pollable { return p.queue }

// Start launches the receive goroutine.
func (p *ProcAcct) Start() {
	go p.receiveLoop()
}

// Close tears down the connection, which also unblocks the receive
// goroutine.
func (p *ProcAcct) Close() {
	close(p.done)
	_ = p.conn.Close()
}

// RequestTaskAcct sends a TASKSTATS_CMD_GET for pid. The reply arrives on
// the receive path; false only means the request could not be sent.
func (p *ProcAcct) RequestTaskAcct(pid int) bool {
	ae := netlink.NewAttributeEncoder()
	ae.Uint32(unix.TASKSTATS_CMD_ATTR_PID, uint32(pid))
	data, err := ae.Encode()
	if err != nil {
		p.logger.Error("encode accounting request", slog.String("error", err.Error()))
		return false
	}

	req := genetlink.Message{
		Header: genetlink.Header{
			Command: unix.TASKSTATS_CMD_GET,
			Version: unix.TASKSTATS_GENL_VERSION,
		},
		Data: data,
	}
	if _, err := p.conn.Send(req, p.familyID, netlink.Request); err != nil {
		p.logger.Warn("cannot send accounting request",
			slog.Int("pid", pid), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (p *ProcAcct) receiveLoop() {
	for {
		msgs, _, err := p.conn.Receive()
		if err != nil {
			select {
			case <-p.done:
				return
			default:
			}
			if isTransient(err) {
				continue
			}
			p.logger.Error("error receiving procacct message", slog.String("error", err.Error()))
			return
		}
		for _, msg := range msgs {
			acct, err := decodeTaskstatsReply(msg.Data)
			if err != nil {
				p.logger.Error("unknown attribute format received", slog.String("error", err.Error()))
				continue
			}
			if acct == nil {
				continue
			}
			if err := p.queue.Push(acct); err != nil {
				p.logger.Warn("accounting reply dropped", slog.String("error", err.Error()))
			}
		}
	}
}

func isTransient(err error) bool {
	var opErr *netlink.OpError
	if errors.As(err, &opErr) && (opErr.Timeout() || opErr.Temporary()) {
		return true
	}
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EBUSY) ||
		errors.Is(err, unix.ENOBUFS) || errors.Is(err, unix.EINTR)
}

// applyAcct runs on the reactor and installs the record on the registry
// entry, clearing its pending flag.
func (p *ProcAcct) applyAcct(acct *tkmpb.ProcAcct) bool {
	if !p.registry.UpdateProcAcct(int(acct.GetAcPid()), acct) {
		p.logger.Error("stat entry not in registry", slog.Int("pid", int(acct.GetAcPid())))
		return false
	}
	return true
}

// decodeTaskstatsReply unwraps the TASKSTATS_TYPE_AGGR_* nesting down to
// the raw struct taskstats payload. A nil record with nil error means the
// message carried no stats (for example an ack).
func decodeTaskstatsReply(data []byte) (*tkmpb.ProcAcct, error) {
	ad, err := netlink.NewAttributeDecoder(data)
	if err != nil {
		return nil, err
	}

	var acct *tkmpb.ProcAcct
	for ad.Next() {
		switch ad.Type() {
		case unix.TASKSTATS_TYPE_AGGR_PID, unix.TASKSTATS_TYPE_AGGR_TGID:
			ad.Nested(func(nad *netlink.AttributeDecoder) error {
				for nad.Next() {
					if nad.Type() == unix.TASKSTATS_TYPE_STATS {
						parsed, err := parseTaskstats(nad.Bytes())
						if err != nil {
							return err
						}
						acct = parsed
					}
				}
				return nil
			})
		}
	}
	if err := ad.Err(); err != nil {
		return nil, err
	}
	return acct, nil
}

// averageMs converts a cumulative delay in nanoseconds into the average
// per-operation delay in milliseconds.
func averageMs(totalNs, count uint64) uint64 {
	if count == 0 {
		count = 1
	}
	return totalNs / 1000000 / count
}

// parseTaskstats maps the kernel's struct taskstats onto the wire record.
// The kernel may append fields in newer versions; anything past the struct
// known here is ignored.
func parseTaskstats(raw []byte) (*tkmpb.ProcAcct, error) {
	if len(raw) < int(unsafe.Sizeof(unix.Taskstats{})) {
		return nil, fmt.Errorf("procacct: short taskstats payload: %d bytes", len(raw))
	}
	ts := (*unix.Taskstats)(unsafe.Pointer(&raw[0]))

	acct := &tkmpb.ProcAcct{
		AcComm:  commString(ts.Ac_comm),
		AcUid:   ts.Ac_uid,
		AcGid:   ts.Ac_gid,
		AcPid:   ts.Ac_pid,
		AcPpid:  ts.Ac_ppid,
		AcUtime: ts.Ac_utime,
		AcStime: ts.Ac_stime,
		Cpu: &tkmpb.ProcAcct_CPU{
			CpuCount:           ts.Cpu_count,
			CpuRunRealTotal:    ts.Cpu_run_real_total,
			CpuRunVirtualTotal: ts.Cpu_run_virtual_total,
			CpuDelayTotal:      ts.Cpu_run_virtual_total,
			CpuDelayAverage:    averageMs(ts.Cpu_delay_total, ts.Cpu_count),
		},
		Mem: &tkmpb.ProcAcct_Memory{
			Coremem:    ts.Coremem,
			Virtmem:    ts.Virtmem,
			HiwaterRss: ts.Hiwater_rss,
			HiwaterVm:  ts.Hiwater_vm,
		},
		Ctx: &tkmpb.ProcAcct_ContextSwitches{
			Nvcsw:  ts.Nvcsw,
			Nivcsw: ts.Nivcsw,
		},
		Io: &tkmpb.ProcAcct_IO{
			BlkioCount:        ts.Blkio_count,
			BlkioDelayTotal:   ts.Blkio_delay_total,
			BlkioDelayAverage: averageMs(ts.Blkio_delay_total, ts.Blkio_count),
			ReadBytes:         ts.Read_bytes,
			WriteBytes:        ts.Write_bytes,
			ReadChar:          ts.Read_char,
			WriteChar:         ts.Write_char,
			ReadSyscalls:      ts.Read_syscalls,
			WriteSyscalls:     ts.Write_syscalls,
		},
		Swp: &tkmpb.ProcAcct_Swap{
			SwapinCount:        ts.Swapin_count,
			SwapinDelayTotal:   ts.Swapin_delay_total,
			SwapinDelayAverage: averageMs(ts.Swapin_delay_total, ts.Swapin_count),
		},
		Reclaim: &tkmpb.ProcAcct_Reclaim{
			FreepagesCount:        ts.Freepages_count,
			FreepagesDelayTotal:   ts.Freepages_delay_total,
			FreepagesDelayAverage: averageMs(ts.Freepages_delay_total, ts.Freepages_count),
		},
		Thrashing: &tkmpb.ProcAcct_Thrashing{
			ThrashingCount:        ts.Thrashing_count,
			ThrashingDelayTotal:   ts.Thrashing_delay_total,
			ThrashingDelayAverage: averageMs(ts.Thrashing_delay_total, ts.Thrashing_count),
		},
	}
	return acct, nil
}

func commString(raw [32]int8) string {
	buf := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}
