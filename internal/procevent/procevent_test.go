package procevent

import (
	"encoding/binary"
	"log/slog"
	"os"
	"testing"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

type fakeRegistry struct {
	added   []int
	updated []int
	removed []int
}

func (f *fakeRegistry) AddProcEntry(pid int) { f.added = append(f.added, pid) }
func (f *fakeRegistry) UpdProcEntry(pid int) { f.updated = append(f.updated, pid) }
func (f *fakeRegistry) RemProcEntry(pid int) { f.removed = append(f.removed, pid) }

func testSource(reg Registry) *ProcEvent {
	return &ProcEvent{
		logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		registry: reg,
		data:     &tkmpb.ProcEvent{},
	}
}

func makeEvent(what uint32, words ...uint32) []byte {
	payload := make([]byte, procEvtHdrSize+len(words)*4)
	binary.NativeEndian.PutUint32(payload[0:4], what)
	for i, w := range words {
		binary.NativeEndian.PutUint32(payload[procEvtHdrSize+i*4:], w)
	}
	return payload
}

func TestForkOfProcessAddsRegistryEntry(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	// parent_pid, parent_tgid, child_pid, child_tgid
	p.handleProcEvent(makeEvent(procEventFork, 100, 100, 200, 200))

	if len(reg.added) != 1 || reg.added[0] != 200 {
		t.Fatalf("added = %v, want [200]", reg.added)
	}
	if p.data.GetForkCount() != 1 {
		t.Fatalf("fork_count = %d, want 1", p.data.GetForkCount())
	}
}

func TestForkOfThreadIsCountedButNotAdded(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	// child_pid != child_tgid marks a thread.
	p.handleProcEvent(makeEvent(procEventFork, 100, 100, 201, 200))

	if len(reg.added) != 0 {
		t.Fatalf("added = %v, want none", reg.added)
	}
	if p.data.GetForkCount() != 1 {
		t.Fatalf("fork_count = %d, want 1", p.data.GetForkCount())
	}
}

func TestExecUpdatesRegistryEntry(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	p.handleProcEvent(makeEvent(procEventExec, 300, 300))

	if len(reg.updated) != 1 || reg.updated[0] != 300 {
		t.Fatalf("updated = %v, want [300]", reg.updated)
	}
	if p.data.GetExecCount() != 1 {
		t.Fatalf("exec_count = %d, want 1", p.data.GetExecCount())
	}
}

func TestExitOfProcessRemovesRegistryEntry(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	p.handleProcEvent(makeEvent(procEventExit, 400, 400, 0, 0))

	if len(reg.removed) != 1 || reg.removed[0] != 400 {
		t.Fatalf("removed = %v, want [400]", reg.removed)
	}
}

func TestExitOfThreadIsIgnoredByRegistry(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	p.handleProcEvent(makeEvent(procEventExit, 401, 400, 0, 0))

	if len(reg.removed) != 0 {
		t.Fatalf("removed = %v, want none", reg.removed)
	}
	if p.data.GetExitCount() != 1 {
		t.Fatalf("exit_count = %d, want 1", p.data.GetExitCount())
	}
}

func TestUIDAndGIDOnlyCount(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	p.handleProcEvent(makeEvent(procEventUID, 500, 500, 0, 0))
	p.handleProcEvent(makeEvent(procEventGID, 500, 500, 0, 0))

	if p.data.GetUidCount() != 1 || p.data.GetGidCount() != 1 {
		t.Fatalf("uid/gid counts = %d/%d, want 1/1",
			p.data.GetUidCount(), p.data.GetGidCount())
	}
	if len(reg.added)+len(reg.updated)+len(reg.removed) != 0 {
		t.Fatal("uid/gid events must not touch the registry")
	}
}

func TestSubscriptionAckIsIgnored(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	p.handleProcEvent(makeEvent(procEventNone))

	snap := p.snapshot()
	if snap.GetForkCount()+snap.GetExecCount()+snap.GetExitCount() != 0 {
		t.Fatal("ack must not increment any counter")
	}
}

func TestShortPayloadIsDropped(t *testing.T) {
	reg := &fakeRegistry{}
	p := testSource(reg)

	p.handleProcEvent([]byte{1, 2, 3})

	if len(reg.added) != 0 {
		t.Fatal("short payload must be dropped")
	}
}
