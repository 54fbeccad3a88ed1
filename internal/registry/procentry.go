package registry

import (
	"time"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// userHZ is the kernel's USER_HZ jiffy rate exposed through /proc. Fixed at
// 100 on every architecture Linux exposes to userspace via proc stat.
const userHZ = 100

// ProcEntry tracks one live process. All fields are owned by the reactor
// goroutine; the entry itself is published to readers through the
// registry's safe list. The context id is assigned once at creation and
// never mutated afterwards.
type ProcEntry struct {
	pid     int
	name    string
	ctxID   uint64
	ctxName string

	lastCPUTime uint64
	lastSample  time.Time

	info *tkmpb.ProcInfo
	acct *tkmpb.ProcAcct

	acctPending bool
}

func newProcEntry(pid int, name string, ctxID uint64, ctxName string) *ProcEntry {
	return &ProcEntry{
		pid:     pid,
		name:    name,
		ctxID:   ctxID,
		ctxName: ctxName,
		info: &tkmpb.ProcInfo{
			Comm:    name,
			Pid:     uint32(pid),
			CtxId:   ctxID,
			CtxName: ctxName,
		},
		acct: &tkmpb.ProcAcct{AcPid: uint32(pid), AcComm: name},
	}
}

func (e *ProcEntry) Pid() int          { return e.pid }
func (e *ProcEntry) Name() string      { return e.name }
func (e *ProcEntry) ContextID() uint64 { return e.ctxID }

func (e *ProcEntry) Info() *tkmpb.ProcInfo { return e.info }
func (e *ProcEntry) Acct() *tkmpb.ProcAcct { return e.acct }

// SetAcct installs a fresh accounting record and releases the pending
// request latch. Called from the accounting socket's receive path.
func (e *ProcEntry) SetAcct(acct *tkmpb.ProcAcct) {
	e.acct = acct
	e.acctPending = false
}

func (e *ProcEntry) setName(name string) {
	e.name = name
	e.info.Comm = name
}

// updateInfo folds a new stat/statm observation into the entry. CPU percent
// is computed against the wall time elapsed since the previous observation;
// the first observation establishes the baseline and reports zero.
func (e *ProcEntry) updateInfo(stat procStatSample, mem procMemSample, now time.Time) {
	cpuTime := stat.utime + stat.stime

	if !e.lastSample.IsZero() && cpuTime >= e.lastCPUTime {
		elapsed := now.Sub(e.lastSample)
		// Jiffies elapsed at USER_HZ, from milliseconds of wall time.
		if intervalJiffies := uint64(elapsed.Milliseconds()) * userHZ / 1000; intervalJiffies > 0 {
			e.info.CpuPercent = uint32((cpuTime - e.lastCPUTime) * 100 / intervalJiffies)
		}
	}
	e.lastCPUTime = cpuTime
	e.lastSample = now

	e.info.Ppid = uint32(stat.ppid)
	e.info.CpuTime = cpuTime
	e.info.MemVmrss = mem.vmRSS
	e.info.MemVmsize = mem.vmSize
}
