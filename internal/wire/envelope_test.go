package wire

import (
	"testing"

	"golang.org/x/sys/unix"
	"google.golang.org/protobuf/types/known/anypb"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

func socketPair(t *testing.T) (int, int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	t.Cleanup(func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func makeEnvelope(t *testing.T, reqType tkmpb.Request_Type) *tkmpb.Envelope {
	t.Helper()
	req := &tkmpb.Request{Id: "rq-1", Type: reqType}
	mesg, err := anypb.New(req)
	if err != nil {
		t.Fatalf("anypb.New: %v", err)
	}
	return &tkmpb.Envelope{
		Mesg:   mesg,
		Origin: tkmpb.Envelope_Collector,
		Target: tkmpb.Envelope_Monitor,
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	a, b := socketPair(t)
	if err := unix.SetNonblock(b, true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}

	w := NewEnvelopeWriter(a)
	if !w.Send(makeEnvelope(t, tkmpb.Request_CreateSession)) {
		t.Fatal("Send failed")
	}

	r := NewEnvelopeReader(b)
	var env tkmpb.Envelope
	if st := r.Next(&env); st != StatusOk {
		t.Fatalf("Next = %v, want StatusOk", st)
	}
	if env.GetOrigin() != tkmpb.Envelope_Collector {
		t.Fatalf("origin = %v, want Collector", env.GetOrigin())
	}
	var req tkmpb.Request
	if err := env.GetMesg().UnmarshalTo(&req); err != nil {
		t.Fatalf("UnmarshalTo: %v", err)
	}
	if req.GetType() != tkmpb.Request_CreateSession {
		t.Fatalf("type = %v, want CreateSession", req.GetType())
	}
}

func TestReaderReturnsAgainOnEmptySocket(t *testing.T) {
	_, b := socketPair(t)
	if err := unix.SetNonblock(b, true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}
	r := NewEnvelopeReader(b)
	var env tkmpb.Envelope
	if st := r.Next(&env); st != StatusAgain {
		t.Fatalf("Next = %v, want StatusAgain", st)
	}
}

func TestReaderReturnsEOFOnPeerClose(t *testing.T) {
	a, b := socketPair(t)
	if err := unix.SetNonblock(b, true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}
	_ = unix.Close(a)
	r := NewEnvelopeReader(b)
	var env tkmpb.Envelope
	if st := r.Next(&env); st != StatusEOF {
		t.Fatalf("Next = %v, want StatusEOF", st)
	}
}

func TestReaderHandlesSplitFrames(t *testing.T) {
	a, b := socketPair(t)
	if err := unix.SetNonblock(b, true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}

	frame, err := Frame(makeEnvelope(t, tkmpb.Request_GetSysProcStat))
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}

	r := NewEnvelopeReader(b)
	var env tkmpb.Envelope

	// First half only: the reader must buffer and ask for more.
	if _, err := unix.Write(a, frame[:len(frame)/2]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if st := r.Next(&env); st != StatusAgain {
		t.Fatalf("Next on partial frame = %v, want StatusAgain", st)
	}

	if _, err := unix.Write(a, frame[len(frame)/2:]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if st := r.Next(&env); st != StatusOk {
		t.Fatalf("Next on completed frame = %v, want StatusOk", st)
	}
}

func TestReaderDrainsBackToBackFrames(t *testing.T) {
	a, b := socketPair(t)
	if err := unix.SetNonblock(b, true); err != nil {
		t.Fatalf("SetNonblock: %v", err)
	}

	w := NewEnvelopeWriter(a)
	if !w.Send(makeEnvelope(t, tkmpb.Request_GetProcInfo)) {
		t.Fatal("Send 1 failed")
	}
	if !w.Send(makeEnvelope(t, tkmpb.Request_GetProcAcct)) {
		t.Fatal("Send 2 failed")
	}

	r := NewEnvelopeReader(b)
	for i := 0; i < 2; i++ {
		var env tkmpb.Envelope
		if st := r.Next(&env); st != StatusOk {
			t.Fatalf("frame %d: Next = %v, want StatusOk", i, st)
		}
	}
	var env tkmpb.Envelope
	if st := r.Next(&env); st != StatusAgain {
		t.Fatalf("Next after drain = %v, want StatusAgain", st)
	}
}

func TestReadDescriptor(t *testing.T) {
	a, b := socketPair(t)

	frame, err := Frame(&tkmpb.Descriptor{Id: "collector-A"})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if _, err := unix.Write(a, frame); err != nil {
		t.Fatalf("Write: %v", err)
	}

	desc, err := ReadDescriptor(b)
	if err != nil {
		t.Fatalf("ReadDescriptor: %v", err)
	}
	if desc.GetId() != "collector-A" {
		t.Fatalf("id = %q, want collector-A", desc.GetId())
	}
}
