package dispatcher

import (
	"log/slog"
	"os"
	"testing"

	"github.com/anpopa/taskmonitor/internal/datasource"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

type fakeSender struct {
	calls []datasource.Collector
}

func (f *fakeSender) CollectAndSend(c datasource.Collector) bool {
	f.calls = append(f.calls, c)
	return true
}

type fakeRegistrySender struct {
	acct, info, ctx int
}

func (f *fakeRegistrySender) CollectAndSendProcAcct(datasource.Collector) bool {
	f.acct++
	return true
}
func (f *fakeRegistrySender) CollectAndSendProcInfo(datasource.Collector) bool {
	f.info++
	return true
}
func (f *fakeRegistrySender) CollectAndSendContextInfo(datasource.Collector) bool {
	f.ctx++
	return true
}

type fakeCollector struct{}

func (fakeCollector) Name() string                 { return "fake" }
func (fakeCollector) SendData(*tkmpb.Data) bool    { return true }

func testDispatcher(t *testing.T, src Sources) *Dispatcher {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	d, err := New(src, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(d.EventSource().Finalize)
	return d
}

func TestRoutesToOwningSource(t *testing.T) {
	stat := &fakeSender{}
	mem := &fakeSender{}
	reg := &fakeRegistrySender{}
	d := testDispatcher(t, Sources{Registry: reg, Stat: stat, MemInfo: mem})

	c := fakeCollector{}
	for _, action := range []Action{GetSysProcStat, GetSysProcMemInfo, GetProcAcct, GetProcInfo, GetContextInfo} {
		if !d.PushRequest(Request{Action: action, Collector: c}) {
			t.Fatalf("PushRequest(%d) rejected", action)
		}
	}
	d.EventSource().OnReadable()

	if len(stat.calls) != 1 || len(mem.calls) != 1 {
		t.Fatalf("stat/mem calls = %d/%d, want 1/1", len(stat.calls), len(mem.calls))
	}
	if reg.acct != 1 || reg.info != 1 || reg.ctx != 1 {
		t.Fatalf("registry calls = %d/%d/%d, want 1/1/1", reg.acct, reg.info, reg.ctx)
	}
}

func TestDisabledModuleIsAcknowledged(t *testing.T) {
	d := testDispatcher(t, Sources{})
	if !d.PushRequest(Request{Action: GetSysProcWireless, Collector: fakeCollector{}}) {
		t.Fatal("request for disabled module rejected at enqueue")
	}
	// Drain must not panic on nil sources.
	d.EventSource().OnReadable()
}

func TestActionForMapsEveryRequestType(t *testing.T) {
	mapped := map[tkmpb.Request_Type]Action{
		tkmpb.Request_GetProcAcct:         GetProcAcct,
		tkmpb.Request_GetProcInfo:         GetProcInfo,
		tkmpb.Request_GetProcEventStats:   GetProcEventStats,
		tkmpb.Request_GetSysProcMemInfo:   GetSysProcMemInfo,
		tkmpb.Request_GetSysProcDiskStats: GetSysProcDiskStats,
		tkmpb.Request_GetSysProcStat:      GetSysProcStat,
		tkmpb.Request_GetSysProcPressure:  GetSysProcPressure,
		tkmpb.Request_GetSysProcBuddyInfo: GetSysProcBuddyInfo,
		tkmpb.Request_GetSysProcWireless:  GetSysProcWireless,
		tkmpb.Request_GetSysProcVMStat:    GetSysProcVMStat,
		tkmpb.Request_GetContextInfo:      GetContextInfo,
		tkmpb.Request_GetStartupData:      GetStartupData,
	}
	for reqType, want := range mapped {
		got, ok := ActionFor(reqType)
		if !ok || got != want {
			t.Fatalf("ActionFor(%v) = %v, %v; want %v, true", reqType, got, ok, want)
		}
	}
	if _, ok := ActionFor(tkmpb.Request_CreateSession); ok {
		t.Fatal("CreateSession must not map to a dispatcher action")
	}
}
