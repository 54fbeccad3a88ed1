package collector

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/anpopa/taskmonitor/internal/dispatcher"
	"github.com/anpopa/taskmonitor/internal/reactor"
	"github.com/anpopa/taskmonitor/internal/wire"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeRouter struct {
	requests []dispatcher.Request
}

func (f *fakeRouter) PushRequest(rq dispatcher.Request) bool {
	f.requests = append(f.requests, rq)
	return true
}

func socketPair(t *testing.T) (server, peer int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	if err := unix.SetNonblock(fds[0], true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}
	t.Cleanup(func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

var testSession = SessionConfig{
	FastLaneInterval:  2 * time.Second,
	PaceLaneInterval:  5 * time.Second,
	SlowLaneInterval:  30 * time.Second,
	KeepAliveInterval: 10 * time.Second,
}

func testCollector(t *testing.T, router RequestRouter) (*Collector, int) {
	t.Helper()
	server, peer := socketPair(t)
	return newCollector(server, KindTCP, "A", router, testSession, testLogger()), peer
}

func sendRequest(t *testing.T, peer int, reqType tkmpb.Request_Type, origin tkmpb.Envelope_Recipient) {
	t.Helper()
	req := &tkmpb.Request{Id: "rq", Type: reqType}
	mesg, err := anypb.New(req)
	if err != nil {
		t.Fatalf("anypb.New: %v", err)
	}
	env := &tkmpb.Envelope{Mesg: mesg, Origin: origin, Target: tkmpb.Envelope_Monitor}
	frame, err := wire.Frame(env)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if _, err := unix.Write(peer, frame); err != nil {
		t.Fatalf("Write: %v", err)
	}
}

func readSessionInfo(t *testing.T, peer int) *tkmpb.SessionInfo {
	t.Helper()
	reader := wire.NewEnvelopeReader(peer)
	if err := unix.SetNonblock(peer, true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}
	var env tkmpb.Envelope
	if st := reader.Next(&env); st != wire.StatusOk {
		t.Fatalf("Next = %v, want StatusOk", st)
	}
	if env.GetOrigin() != tkmpb.Envelope_Monitor {
		t.Fatalf("reply origin = %v, want Monitor", env.GetOrigin())
	}
	var msg tkmpb.Message
	if err := env.GetMesg().UnmarshalTo(&msg); err != nil {
		t.Fatalf("unmarshal message: %v", err)
	}
	if msg.GetType() != tkmpb.Message_SetSession {
		t.Fatalf("message type = %v, want SetSession", msg.GetType())
	}
	var info tkmpb.SessionInfo
	if err := msg.GetPayload().UnmarshalTo(&info); err != nil {
		t.Fatalf("unmarshal session info: %v", err)
	}
	return &info
}

func TestCreateSessionMintsHashAndIntervals(t *testing.T) {
	router := &fakeRouter{}
	col, peer := testCollector(t, router)

	sendRequest(t, peer, tkmpb.Request_CreateSession, tkmpb.Envelope_Collector)
	if !col.OnReadable() {
		t.Fatal("OnReadable closed the session")
	}

	info := readSessionInfo(t, peer)
	if info.GetHash() == "" {
		t.Fatal("session hash missing")
	}
	if info.GetHash() != col.SessionHash() {
		t.Fatal("reply hash does not match collector state")
	}
	if info.GetFastLaneInterval() != 2_000_000 {
		t.Fatalf("fast lane interval = %d us, want 2000000", info.GetFastLaneInterval())
	}
	if info.GetSlowLaneInterval() != 30_000_000 {
		t.Fatalf("slow lane interval = %d us, want 30000000", info.GetSlowLaneInterval())
	}
}

func TestTwoSessionsWithSameDescriptorGetDistinctHashes(t *testing.T) {
	router := &fakeRouter{}

	colA, peerA := testCollector(t, router)
	sendRequest(t, peerA, tkmpb.Request_CreateSession, tkmpb.Envelope_Collector)
	colA.OnReadable()

	colB, peerB := testCollector(t, router)
	sendRequest(t, peerB, tkmpb.Request_CreateSession, tkmpb.Envelope_Collector)
	colB.OnReadable()

	if colA.SessionHash() == "" || colA.SessionHash() == colB.SessionHash() {
		t.Fatalf("hashes %q and %q must be distinct and non-empty",
			colA.SessionHash(), colB.SessionHash())
	}
}

func TestTypedRequestIsRoutedToDispatcher(t *testing.T) {
	router := &fakeRouter{}
	col, peer := testCollector(t, router)

	sendRequest(t, peer, tkmpb.Request_GetSysProcStat, tkmpb.Envelope_Collector)
	if !col.OnReadable() {
		t.Fatal("OnReadable closed the session")
	}

	if len(router.requests) != 1 {
		t.Fatalf("routed requests = %d, want 1", len(router.requests))
	}
	rq := router.requests[0]
	if rq.Action != dispatcher.GetSysProcStat {
		t.Fatalf("action = %v, want GetSysProcStat", rq.Action)
	}
	if rq.Collector != col {
		t.Fatal("request must carry the originating collector")
	}
}

func TestForeignOriginClosesSession(t *testing.T) {
	router := &fakeRouter{}
	col, peer := testCollector(t, router)

	sendRequest(t, peer, tkmpb.Request_GetProcInfo, tkmpb.Envelope_Client)
	if col.OnReadable() {
		t.Fatal("foreign origin must close the session")
	}
	if len(router.requests) != 0 {
		t.Fatal("foreign request must not be routed")
	}
}

func TestPeerCloseEndsSession(t *testing.T) {
	router := &fakeRouter{}
	col, peer := testCollector(t, router)

	_ = unix.Close(peer)
	if col.OnReadable() {
		t.Fatal("EOF must close the session")
	}
}

func TestRequestReadRefreshesLastUpdate(t *testing.T) {
	router := &fakeRouter{}
	col, peer := testCollector(t, router)
	col.lastUpdate = time.Now().Add(-time.Hour)

	sendRequest(t, peer, tkmpb.Request_GetProcInfo, tkmpb.Envelope_Collector)
	col.OnReadable()

	if time.Since(col.LastUpdate()) > time.Minute {
		t.Fatal("lastUpdate not refreshed by request read")
	}
}

func TestSendDataWrapsEnvelope(t *testing.T) {
	router := &fakeRouter{}
	col, peer := testCollector(t, router)

	data := &tkmpb.Data{What: tkmpb.Data_SysProcMemInfo}
	if !col.SendData(data) {
		t.Fatal("SendData failed")
	}

	reader := wire.NewEnvelopeReader(peer)
	if err := unix.SetNonblock(peer, true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}
	var env tkmpb.Envelope
	if st := reader.Next(&env); st != wire.StatusOk {
		t.Fatalf("Next = %v, want StatusOk", st)
	}
	if env.GetTarget() != tkmpb.Envelope_Collector {
		t.Fatalf("target = %v, want Collector", env.GetTarget())
	}
	var msg tkmpb.Message
	if err := env.GetMesg().UnmarshalTo(&msg); err != nil {
		t.Fatalf("unmarshal message: %v", err)
	}
	if msg.GetType() != tkmpb.Message_Data {
		t.Fatalf("message type = %v, want Data", msg.GetType())
	}
	var got tkmpb.Data
	if err := msg.GetPayload().UnmarshalTo(&got); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if got.GetWhat() != tkmpb.Data_SysProcMemInfo {
		t.Fatalf("what = %v, want SysProcMemInfo", got.GetWhat())
	}
}

type fakeLoop struct {
	removed []reactor.Pollable
}

func (f *fakeLoop) Remove(p reactor.Pollable) {
	f.removed = append(f.removed, p)
	p.Finalize()
}

func newTestStateManager(t *testing.T, loop LoopRemover, timeout time.Duration) *StateManager {
	t.Helper()
	sm, err := NewStateManager(loop, timeout, testLogger())
	if err != nil {
		t.Fatalf("NewStateManager: %v", err)
	}
	t.Cleanup(func() {
		sm.EventSource().Finalize()
		sm.Timer().Finalize()
	})
	return sm
}

func TestStateManagerMonitorsAndRemoves(t *testing.T) {
	loop := &fakeLoop{}
	sm := newTestStateManager(t, loop, time.Second)
	col, _ := testCollector(t, &fakeRouter{})

	sm.PushRequest(Request{Action: MonitorCollector, Collector: col})
	sm.EventSource().OnReadable()
	if !sm.Contains(col) {
		t.Fatal("collector missing from active set after monitor")
	}

	sm.PushRequest(Request{Action: RemoveCollector, Collector: col, WithEventSource: true})
	sm.EventSource().OnReadable()
	if sm.Contains(col) {
		t.Fatal("collector still in active set after removal")
	}
	if len(loop.removed) != 1 {
		t.Fatalf("loop removals = %d, want 1", len(loop.removed))
	}
}

func TestStateManagerEvictsIdleCollector(t *testing.T) {
	loop := &fakeLoop{}
	sm := newTestStateManager(t, loop, 500*time.Millisecond)

	idle, _ := testCollector(t, &fakeRouter{})
	busy, _ := testCollector(t, &fakeRouter{})
	sm.PushRequest(Request{Action: MonitorCollector, Collector: idle})
	sm.PushRequest(Request{Action: MonitorCollector, Collector: busy})
	sm.EventSource().OnReadable()

	idle.lastUpdate = time.Now().Add(-time.Second)
	busy.lastUpdate = time.Now()

	sm.checkCollectors()
	sm.EventSource().OnReadable()

	if sm.Contains(idle) {
		t.Fatal("idle collector must be evicted")
	}
	if !sm.Contains(busy) {
		t.Fatal("busy collector must survive")
	}
	if len(loop.removed) != 1 || loop.removed[0] != idle {
		t.Fatal("idle collector's event source must be removed from the loop")
	}
}

func TestFinalizeNotifiesStateManager(t *testing.T) {
	loop := &fakeLoop{}
	sm := newTestStateManager(t, loop, time.Second)
	col, _ := testCollector(t, &fakeRouter{})
	col.onFinalize = sm.NotifyClosed

	sm.PushRequest(Request{Action: MonitorCollector, Collector: col})
	sm.EventSource().OnReadable()

	col.Finalize()
	sm.EventSource().OnReadable()
	if sm.Contains(col) {
		t.Fatal("finalized collector still in active set")
	}
}
