package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// procFixture builds a /proc-shaped tree under a temp dir.
type procFixture struct {
	t    *testing.T
	root string
}

func newProcFixture(t *testing.T) *procFixture {
	t.Helper()
	return &procFixture{t: t, root: t.TempDir()}
}

func (f *procFixture) addProcess(pid int, name string, ctxInode uint64) {
	f.t.Helper()
	dir := filepath.Join(f.root, strconv.Itoa(pid))
	if err := os.MkdirAll(filepath.Join(dir, "ns"), 0o755); err != nil {
		f.t.Fatalf("mkdir: %v", err)
	}
	status := fmt.Sprintf("Name:\t%s\nUmask:\t0022\nState:\tS (sleeping)\n", name)
	if err := os.WriteFile(filepath.Join(dir, "status"), []byte(status), 0o644); err != nil {
		f.t.Fatalf("write status: %v", err)
	}
	link := fmt.Sprintf("pid:[%d]", ctxInode)
	if err := os.Symlink(link, filepath.Join(dir, "ns", "pid")); err != nil {
		f.t.Fatalf("symlink: %v", err)
	}
}

func (f *procFixture) addStat(pid int, utime, stime uint64) {
	f.t.Helper()
	dir := filepath.Join(f.root, strconv.Itoa(pid))
	stat := fmt.Sprintf("%d (test proc) S 1 2 3 4 5 6 7 8 9 10 %d %d 0 0 20 0 1 0 100\n",
		pid, utime, stime)
	if err := os.WriteFile(filepath.Join(dir, "stat"), []byte(stat), 0o644); err != nil {
		f.t.Fatalf("write stat: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "statm"), []byte("2500 1250 300 50 0 900 0\n"), 0o644); err != nil {
		f.t.Fatalf("write statm: %v", err)
	}
}

func (f *procFixture) remove(pid int) {
	f.t.Helper()
	if err := os.RemoveAll(filepath.Join(f.root, strconv.Itoa(pid))); err != nil {
		f.t.Fatalf("remove: %v", err)
	}
}

type staticResolver struct{ names map[uint64]string }

func (s *staticResolver) ResolveName(_ int, ctxID uint64) (string, bool) {
	name, ok := s.names[ctxID]
	return name, ok
}

func newTestRegistry(t *testing.T, f *procFixture, blacklist []string) *Registry {
	t.Helper()
	r, err := New(Config{
		ProcRoot:   f.root,
		Blacklist:  blacklist,
		PageSizeKB: 4,
		Resolver:   &staticResolver{names: map[uint64]string{900001: "container-a"}},
	}, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(r.EventSource().Finalize)
	return r
}

// drain runs the registry worker the way the reactor would.
func drain(r *Registry) { r.EventSource().OnReadable() }

func TestInitFromProcCreatesEntries(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(1, "systemd", 800001)
	f.addProcess(100, "nginx", 800001)
	f.addProcess(200, "redis", 900001)

	r := newTestRegistry(t, f, nil)
	r.InitFromProc()
	drain(r)

	for _, pid := range []int{1, 100, 200} {
		if r.GetProcEntry(pid) == nil {
			t.Fatalf("pid %d missing from registry", pid)
		}
	}
	if name := r.GetProcEntry(100).Name(); name != "nginx" {
		t.Fatalf("name = %q, want nginx", name)
	}
}

func TestBlacklistedNamesAreExcluded(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(1, "systemd", 800001)
	f.addProcess(50, "kworker/0:1", 800001)
	f.addProcess(51, "nginx", 800001)

	r := newTestRegistry(t, f, []string{"kworker"})
	r.InitFromProc()
	drain(r)

	if r.GetProcEntry(50) != nil {
		t.Fatal("blacklisted kworker must not be registered")
	}
	if r.GetProcEntryByName("kworker/0:1") != nil {
		t.Fatal("blacklisted name lookup must fail")
	}
	if r.GetProcEntry(51) == nil {
		t.Fatal("non-blacklisted entry missing")
	}
}

func TestAddProcEntryVisibleAfterCommit(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(300, "worker", 800001)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(300)

	if r.GetProcEntry(300) != nil {
		t.Fatal("entry visible before commit")
	}
	drain(r)
	if r.GetProcEntry(300) == nil {
		t.Fatal("entry missing after commit")
	}
}

func TestAddProcEntryVanishedProcessIsDropped(t *testing.T) {
	f := newProcFixture(t)
	r := newTestRegistry(t, f, nil)

	r.AddProcEntry(999)
	drain(r)

	if r.GetProcEntry(999) != nil {
		t.Fatal("vanished process must not be registered")
	}
}

func TestRemProcEntryHidesAfterCommit(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(400, "short-lived", 800001)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(400)
	drain(r)

	r.RemProcEntry(400)
	drain(r)
	if r.GetProcEntry(400) != nil {
		t.Fatal("entry still present after removal")
	}
}

func TestUpdProcEntryReReadsNameAfterExec(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(500, "sh", 800001)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(500)
	drain(r)

	// Simulate exec replacing the image.
	status := "Name:\tnginx\nState:\tR (running)\n"
	if err := os.WriteFile(filepath.Join(f.root, "500", "status"), []byte(status), 0o644); err != nil {
		t.Fatalf("rewrite status: %v", err)
	}
	r.UpdProcEntry(500)
	drain(r)

	if name := r.GetProcEntry(500).Name(); name != "nginx" {
		t.Fatalf("name after exec = %q, want nginx", name)
	}
}

func TestPaceUpdateSamplesProcInfo(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(600, "worker", 900001)
	f.addStat(600, 250, 150)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(600)
	drain(r)

	r.updateProcInfo()
	info := r.GetProcEntry(600).Info()
	if info.GetCpuTime() != 400 {
		t.Fatalf("cpu_time = %d, want 400", info.GetCpuTime())
	}
	if info.GetMemVmrss() != 5000 || info.GetMemVmsize() != 10000 {
		t.Fatalf("vmrss/vmsize = %d/%d, want 5000/10000",
			info.GetMemVmrss(), info.GetMemVmsize())
	}
	if info.GetCpuPercent() != 0 {
		t.Fatalf("first sample cpu_percent = %d, want 0", info.GetCpuPercent())
	}
	if info.GetCtxName() != "container-a" {
		t.Fatalf("ctx_name = %q, want container-a", info.GetCtxName())
	}
}

func TestPaceUpdateRemovesVanishedProcess(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(700, "doomed", 800001)
	f.addStat(700, 1, 1)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(700)
	drain(r)

	f.remove(700)
	r.updateProcInfo()
	drain(r)

	if r.GetProcEntry(700) != nil {
		t.Fatal("vanished process still registered after pace refresh")
	}
}

type fakeCollector struct {
	sent []*tkmpb.Data
}

func (f *fakeCollector) Name() string { return "fake" }
func (f *fakeCollector) SendData(d *tkmpb.Data) bool {
	f.sent = append(f.sent, d)
	return true
}

func TestContextAggregationSumsAndPrunes(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(810, "svc-a", 900001)
	f.addProcess(811, "svc-b", 900001)
	f.addStat(810, 100, 50)
	f.addStat(811, 200, 50)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(810)
	r.AddProcEntry(811)
	drain(r)
	r.updateProcInfo()

	sink := &fakeCollector{}
	r.CollectAndSendContextInfo(sink)
	drain(r)

	if len(sink.sent) != 1 {
		t.Fatalf("context records = %d, want 1", len(sink.sent))
	}
	var ctx tkmpb.ContextInfo
	if err := sink.sent[0].GetPayload().UnmarshalTo(&ctx); err != nil {
		t.Fatalf("unmarshal context: %v", err)
	}
	if ctx.GetTotalCpuTime() != 400 {
		t.Fatalf("total_cpu_time = %d, want 400", ctx.GetTotalCpuTime())
	}
	if ctx.GetTotalMemVmrss() != 10000 {
		t.Fatalf("total_mem_vmrss = %d, want 10000", ctx.GetTotalMemVmrss())
	}
	if ctx.GetCtxName() != "container-a" {
		t.Fatalf("ctx_name = %q, want container-a", ctx.GetCtxName())
	}

	// With every member gone the context disappears on the next refresh.
	r.RemProcEntry(810)
	r.RemProcEntry(811)
	drain(r)

	sink = &fakeCollector{}
	r.CollectAndSendContextInfo(sink)
	drain(r)
	if len(sink.sent) != 0 {
		t.Fatalf("context records after prune = %d, want 0", len(sink.sent))
	}
}

func TestCollectAndSendProcInfoFansOutAllEntries(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(820, "svc-a", 800001)
	f.addProcess(821, "svc-b", 800001)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(820)
	r.AddProcEntry(821)
	drain(r)

	sink := &fakeCollector{}
	r.CollectAndSendProcInfo(sink)
	drain(r)

	if len(sink.sent) != 2 {
		t.Fatalf("records = %d, want 2", len(sink.sent))
	}
	for _, data := range sink.sent {
		if data.GetWhat() != tkmpb.Data_ProcInfo {
			t.Fatalf("what = %v, want ProcInfo", data.GetWhat())
		}
	}
}

func TestUpdateProcAcctInstallsRecord(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(830, "svc", 800001)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(830)
	drain(r)

	acct := &tkmpb.ProcAcct{AcPid: 830, AcComm: "svc"}
	if !r.UpdateProcAcct(830, acct) {
		t.Fatal("UpdateProcAcct failed for registered pid")
	}
	if r.GetProcEntry(830).Acct() != acct {
		t.Fatal("record not installed")
	}
	if r.UpdateProcAcct(999, acct) {
		t.Fatal("UpdateProcAcct must fail for unknown pid")
	}
}

func TestRootContextName(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(1, "systemd", 800001)
	f.addProcess(840, "svc", 800001)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(840)
	drain(r)

	if name := r.GetProcEntry(840).Info().GetCtxName(); name != "root" {
		t.Fatalf("ctx_name = %q, want root (same namespace as pid 1)", name)
	}
}

func TestUnknownContextName(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(1, "systemd", 800001)
	f.addProcess(850, "svc", 123456)

	r := newTestRegistry(t, f, nil)
	r.AddProcEntry(850)
	drain(r)

	if name := r.GetProcEntry(850).Info().GetCtxName(); name != "unknown" {
		t.Fatalf("ctx_name = %q, want unknown", name)
	}
}
