// Package registry maintains the canonical set of live processes and the
// per-container context aggregates derived from them. Discovery feeds it
// from two directions: the initial /proc scan and the kernel process event
// stream. Accounting data arrives asynchronously through the taskstats
// receive path.
package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/anpopa/taskmonitor/internal/datasource"
	"github.com/anpopa/taskmonitor/internal/reactor"
	"github.com/anpopa/taskmonitor/internal/safelist"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Action selects the work a queued Request performs.
type Action int

const (
	CommitProcList Action = iota
	CommitContextList
	CollectAndSendProcAcct
	CollectAndSendProcInfo
	CollectAndSendContextInfo
)

type Request struct {
	Action    Action
	Collector datasource.Collector
}

// AcctRequester issues a delay-accounting query for one pid. The answer
// arrives later through the accounting socket, not through this call.
type AcctRequester interface {
	RequestTaskAcct(pid int) bool
}

// ContextNameResolver maps a process to its container name. Returning
// false means the process belongs to no known container.
type ContextNameResolver interface {
	ResolveName(pid int, ctxID uint64) (string, bool)
}

// Config carries the registry's tunables. Zero values select production
// defaults.
type Config struct {
	ProcRoot       string
	ContainersPath string
	Blacklist      []string
	PageSizeKB     uint64
	Resolver       ContextNameResolver
}

const queueCapacity = 4096

// Registry owns the process and context safe lists. List membership is
// mutated by staging plus queued commits; entry state is mutated only on
// the reactor goroutine.
type Registry struct {
	logger   *slog.Logger
	procRoot string

	queue      *reactor.WorkQueue[Request]
	procList   *safelist.List[int, *ProcEntry]
	ctxList    *safelist.List[uint64, *ContextEntry]
	blacklist  []string
	pageSizeKB uint64
	resolver   ContextNameResolver
	acct       AcctRequester

	rootCtxID uint64
}

func New(cfg Config, logger *slog.Logger) (*Registry, error) {
	if cfg.ProcRoot == "" {
		cfg.ProcRoot = "/proc"
	}
	if cfg.PageSizeKB == 0 {
		cfg.PageSizeKB = uint64(os.Getpagesize() / 1024)
	}
	if cfg.Resolver == nil {
		cfg.Resolver = &LxcCgroupResolver{ProcRoot: cfg.ProcRoot, ContainersPath: cfg.ContainersPath}
	}

	r := &Registry{
		logger:     logger,
		procRoot:   cfg.ProcRoot,
		procList:   safelist.New[int, *ProcEntry](),
		ctxList:    safelist.New[uint64, *ContextEntry](),
		blacklist:  cfg.Blacklist,
		pageSizeKB: cfg.PageSizeKB,
		resolver:   cfg.Resolver,
	}

	// PID 1's namespace is the host context; its inode anchors the "root"
	// context name. Unreadable on fixture trees without an init entry.
	if ctxID, err := readContextID(cfg.ProcRoot, 1); err == nil {
		r.rootCtxID = ctxID
	}

	queue, err := reactor.NewWorkQueue[Request](queueCapacity, 0, r.requestHandler)
	if err != nil {
		return nil, fmt.Errorf("registry: queue: %w", err)
	}
	r.queue = queue
	return r, nil
}

// SetAcctRequester wires the taskstats request path. Optional; without it
// the slow lane skips accounting refreshes.
func (r *Registry) SetAcctRequester(acct AcctRequester) { r.acct = acct }

func (r *Registry) Name() string                  { return "procregistry" }
func (r *Registry) EventSource() reactor.Pollable { return r.queue }

func (r *Registry) PushRequest(rq Request) bool {
	if err := r.queue.Push(rq); err != nil {
		r.logger.Warn("registry request rejected", slog.String("error", err.Error()))
		return false
	}
	return true
}

func (r *Registry) requestHandler(rq Request) bool {
	switch rq.Action {
	case CommitProcList:
		r.procList.Commit()
		return true
	case CommitContextList:
		r.ctxList.Commit()
		return true
	case CollectAndSendProcAcct:
		return r.sendProcAcct(rq.Collector)
	case CollectAndSendProcInfo:
		return r.sendProcInfo(rq.Collector)
	case CollectAndSendContextInfo:
		return r.sendContextInfo(rq.Collector)
	default:
		r.logger.Error("unknown action request", slog.Int("action", int(rq.Action)))
		return false
	}
}

// InitFromProc enumerates the numeric entries under the proc root and
// creates entries for every non-blacklisted process found.
func (r *Registry) InitFromProc() {
	r.logger.Debug("read existing proc entries")
	entries, err := os.ReadDir(r.procRoot)
	if err != nil {
		r.logger.Error("cannot enumerate proc", slog.String("error", err.Error()))
		return
	}
	for _, dirEntry := range entries {
		pid, err := strconv.Atoi(dirEntry.Name())
		if err != nil {
			continue
		}
		name, err := readProcName(r.procRoot, pid)
		if err != nil {
			// Raced with process exit during the scan.
			continue
		}
		if r.isBlacklisted(name) {
			continue
		}
		r.createProcessEntry(pid, name)
	}
}

// AddProcEntry creates an entry for pid unless one exists or the process
// name is blacklisted. A process gone before its status could be read is
// silently dropped.
func (r *Registry) AddProcEntry(pid int) {
	if r.GetProcEntry(pid) != nil {
		return
	}
	name, err := readProcName(r.procRoot, pid)
	if err != nil {
		r.logger.Warn("proc entry removed before entry added", slog.Int("pid", pid))
		return
	}
	if r.isBlacklisted(name) {
		return
	}
	r.createProcessEntry(pid, name)
}

// UpdProcEntry re-reads the process name after an exec. The entry is
// removed when the process vanished or the new image is blacklisted.
func (r *Registry) UpdProcEntry(pid int) {
	entry := r.GetProcEntry(pid)
	if entry == nil {
		r.AddProcEntry(pid)
		return
	}
	name, err := readProcName(r.procRoot, pid)
	if err != nil || r.isBlacklisted(name) {
		r.RemProcEntry(pid)
		return
	}
	entry.setName(name)
}

// RemProcEntry removes the entry for pid and queues the commit.
func (r *Registry) RemProcEntry(pid int) {
	if r.GetProcEntry(pid) == nil {
		return
	}
	r.logger.Debug("found entry to remove", slog.Int("pid", pid))
	r.procList.Remove(pid)
	r.PushRequest(Request{Action: CommitProcList})
}

// RemProcEntryByName removes every entry whose name equals name.
func (r *Registry) RemProcEntryByName(name string) {
	r.procList.Foreach(func(pid int, entry *ProcEntry) bool {
		if entry.Name() == name {
			r.logger.Debug("found entry to remove", slog.Int("pid", pid))
			r.procList.Remove(pid)
		}
		return true
	})
	r.PushRequest(Request{Action: CommitProcList})
}

// GetProcEntry returns the committed entry for pid, or nil.
func (r *Registry) GetProcEntry(pid int) *ProcEntry {
	entry, ok := r.procList.Get(pid)
	if !ok {
		return nil
	}
	return entry
}

// Count reports the committed entry count.
func (r *Registry) Count() int { return r.procList.Len() }

// UpdateProcAcct installs a fresh accounting record on the entry for pid.
// Called from the accounting receive path; false means the pid is gone
// from the registry.
func (r *Registry) UpdateProcAcct(pid int, acct *tkmpb.ProcAcct) bool {
	entry := r.GetProcEntry(pid)
	if entry == nil {
		return false
	}
	entry.SetAcct(acct)
	return true
}

// GetProcEntryByName returns the first committed entry with the given
// name, or nil.
func (r *Registry) GetProcEntryByName(name string) *ProcEntry {
	var found *ProcEntry
	r.procList.Foreach(func(_ int, entry *ProcEntry) bool {
		if entry.Name() == name {
			found = entry
			return false
		}
		return true
	})
	return found
}

func (r *Registry) isBlacklisted(name string) bool {
	for _, substr := range r.blacklist {
		if strings.Contains(name, substr) {
			return true
		}
	}
	return false
}

func (r *Registry) contextNameFor(pid int, ctxID uint64) string {
	if r.rootCtxID != 0 && ctxID == r.rootCtxID {
		return "root"
	}
	if name, ok := r.resolver.ResolveName(pid, ctxID); ok {
		return name
	}
	return "unknown"
}

func (r *Registry) createProcessEntry(pid int, name string) {
	ctxID, err := readContextID(r.procRoot, pid)
	if err != nil {
		// Without the namespace link the entry cannot be attributed.
		r.logger.Warn("cannot read pid namespace",
			slog.Int("pid", pid), slog.String("error", err.Error()))
		return
	}
	ctxName := r.contextNameFor(pid, ctxID)

	entry := newProcEntry(pid, name, ctxID, ctxName)
	r.logger.Debug("add process monitoring",
		slog.Int("pid", pid), slog.String("name", name), slog.String("context", ctxName))
	r.procList.Append(pid, entry)
	r.PushRequest(Request{Action: CommitProcList})

	if _, known := r.ctxList.Get(ctxID); !known {
		r.ctxList.Append(ctxID, newContextEntry(ctxID, ctxName))
		r.PushRequest(Request{Action: CommitContextList})
	}
}

// Update drives the lane-sensitive refreshes. ProcInfo samples on the pace
// lane; accounting requests go out on the slow lane. The fast lane carries
// no per-process work.
func (r *Registry) Update(lane datasource.UpdateLane) bool {
	switch lane {
	case datasource.Pace:
		r.updateProcInfo()
	case datasource.Slow:
		r.updateProcAcct()
	}
	return true
}

func (r *Registry) updateProcInfo() {
	now := time.Now()
	r.procList.Foreach(func(pid int, entry *ProcEntry) bool {
		stat, err := readProcStat(r.procRoot, pid)
		if err != nil {
			// Process disappeared since the last refresh.
			r.RemProcEntry(pid)
			return true
		}
		mem, err := readProcStatm(r.procRoot, pid, r.pageSizeKB)
		if err != nil {
			r.RemProcEntry(pid)
			return true
		}
		entry.updateInfo(stat, mem, now)
		return true
	})
}

func (r *Registry) updateProcAcct() {
	if r.acct == nil {
		return
	}
	r.procList.Foreach(func(pid int, entry *ProcEntry) bool {
		if entry.acctPending {
			return true
		}
		if r.acct.RequestTaskAcct(pid) {
			entry.acctPending = true
		}
		return true
	})
}

// CollectAndSend satisfies the data source contract; the default fan-out
// flavor is the sampled per-process counters.
func (r *Registry) CollectAndSend(c datasource.Collector) bool {
	return r.CollectAndSendProcInfo(c)
}

// CollectAndSendProcAcct enqueues a fan-out of every entry's accounting
// record to c.
func (r *Registry) CollectAndSendProcAcct(c datasource.Collector) bool {
	return r.PushRequest(Request{Action: CollectAndSendProcAcct, Collector: c})
}

// CollectAndSendProcInfo enqueues a fan-out of every entry's sampled
// counters to c.
func (r *Registry) CollectAndSendProcInfo(c datasource.Collector) bool {
	return r.PushRequest(Request{Action: CollectAndSendProcInfo, Collector: c})
}

// CollectAndSendContextInfo enqueues a context refresh and fan-out to c.
func (r *Registry) CollectAndSendContextInfo(c datasource.Collector) bool {
	return r.PushRequest(Request{Action: CollectAndSendContextInfo, Collector: c})
}

func (r *Registry) sendProcAcct(c datasource.Collector) bool {
	r.procList.Foreach(func(_ int, entry *ProcEntry) bool {
		datasource.SendData(c, tkmpb.Data_ProcAcct, entry.Acct())
		return true
	})
	return true
}

func (r *Registry) sendProcInfo(c datasource.Collector) bool {
	r.procList.Foreach(func(_ int, entry *ProcEntry) bool {
		datasource.SendData(c, tkmpb.Data_ProcInfo, entry.Info())
		return true
	})
	return true
}

// sendContextInfo refreshes the context aggregates, drops the empty ones,
// and fans the result out to c.
func (r *Registry) sendContextInfo(c datasource.Collector) bool {
	r.ctxList.Foreach(func(ctxID uint64, ctx *ContextEntry) bool {
		ctx.resetData()
		found := false
		r.procList.Foreach(func(_ int, proc *ProcEntry) bool {
			if proc.ContextID() == ctxID {
				ctx.addProc(proc.Info())
				found = true
			}
			return true
		})
		if !found {
			r.ctxList.Remove(ctxID)
		}
		return true
	})
	r.ctxList.Commit()

	r.ctxList.Foreach(func(_ uint64, ctx *ContextEntry) bool {
		datasource.SendData(c, tkmpb.Data_ContextInfo, ctx.Info())
		return true
	})
	return true
}

// LxcCgroupResolver derives a container name from the process's cgroup
// path. LXC payloads show up as an "lxc.payload.<name>" path segment on
// cgroup v2 hosts, or a legacy "lxc/<name>" pair. When ContainersPath is
// set, a resolved name must also exist as a container directory there.
type LxcCgroupResolver struct {
	ProcRoot       string
	ContainersPath string
}

func (l *LxcCgroupResolver) ResolveName(pid int, _ uint64) (string, bool) {
	raw, err := os.ReadFile(filepath.Join(l.ProcRoot, strconv.Itoa(pid), "cgroup"))
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(raw), "\n") {
		_, path, found := strings.Cut(line, "::")
		if !found {
			// cgroup v1 rows are "id:controller:path".
			parts := strings.SplitN(line, ":", 3)
			if len(parts) != 3 {
				continue
			}
			path = parts[2]
		}
		segments := strings.Split(path, "/")
		for i, segment := range segments {
			if name, ok := strings.CutPrefix(segment, "lxc.payload."); ok {
				return name, l.knownContainer(name)
			}
			if segment == "lxc" && i+1 < len(segments) && segments[i+1] != "" {
				return segments[i+1], l.knownContainer(segments[i+1])
			}
		}
	}
	return "", false
}

func (l *LxcCgroupResolver) knownContainer(name string) bool {
	if l.ContainersPath == "" {
		return true
	}
	info, err := os.Stat(filepath.Join(l.ContainersPath, name))
	return err == nil && info.IsDir()
}
