// Package collector implements the session layer: the TCP and UDS
// acceptors, the per-connection envelope session, and the state manager
// that evicts silent peers. A collector exists in the active set exactly
// from after a successful handshake until socket finalization or state
// manager eviction.
package collector

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/anypb"

	"github.com/anpopa/taskmonitor/internal/dispatcher"
	"github.com/anpopa/taskmonitor/internal/wire"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Kind tags the transport a collector arrived on.
type Kind int

const (
	KindTCP Kind = iota
	KindUDS
)

func (k Kind) String() string {
	if k == KindUDS {
		return "uds"
	}
	return "tcp"
}

// RequestRouter is the dispatcher's enqueue side.
type RequestRouter interface {
	PushRequest(rq dispatcher.Request) bool
}

// SessionConfig is what a new session learns about the monitor's cadence.
// The lane intervals travel in the SetSession reply so the collector knows
// what refresh rates to expect.
type SessionConfig struct {
	FastLaneInterval  time.Duration
	PaceLaneInterval  time.Duration
	SlowLaneInterval  time.Duration
	KeepAliveInterval time.Duration
}

// Collector is one authenticated peer connection: a pollable whose wake
// reads requests, and a Data sink the sources write snapshots to. All
// fields are owned by the reactor goroutine.
type Collector struct {
	logger *slog.Logger
	fd     int
	kind   Kind
	name   string

	reader *wire.EnvelopeReader
	writer *wire.EnvelopeWriter

	descriptorID string
	sessionHash  string
	lastUpdate   time.Time

	router  RequestRouter
	session SessionConfig

	// inactiveTimeout overrides the state manager's default eviction
	// threshold for this transport; zero selects the default.
	inactiveTimeout time.Duration

	// onFinalize lets the state manager drop its reference when the
	// pollable is torn down by the loop rather than by eviction.
	onFinalize func(*Collector)
}

func newCollector(fd int, kind Kind, descriptorID string, router RequestRouter, session SessionConfig, logger *slog.Logger) *Collector {
	return &Collector{
		logger:       logger,
		fd:           fd,
		kind:         kind,
		name:         fmt.Sprintf("%s-collector-%d", kind, fd),
		reader:       wire.NewEnvelopeReader(fd),
		writer:       wire.NewEnvelopeWriter(fd),
		descriptorID: descriptorID,
		lastUpdate:   time.Now(),
		router:       router,
		session:      session,
	}
}

func (c *Collector) Name() string  { return c.name }
func (c *Collector) FD() int       { return c.fd }
func (c *Collector) Priority() int { return 0 }

// LastUpdate reports when the peer last sent a well-formed request.
func (c *Collector) LastUpdate() time.Time { return c.lastUpdate }

// InactiveTimeout reports this session's eviction threshold; zero means
// the state manager default applies.
func (c *Collector) InactiveTimeout() time.Duration { return c.inactiveTimeout }

// SessionHash is the minted session identity; empty before CreateSession.
func (c *Collector) SessionHash() string { return c.sessionHash }

// OnReadable drains every buffered request. Returning false hands the
// session to the loop for teardown: read errors, end of file, a peer
// claiming a foreign origin, and unknown request types all end it.
func (c *Collector) OnReadable() bool {
	for {
		var env tkmpb.Envelope
		switch c.reader.Next(&env) {
		case wire.StatusAgain:
			return true
		case wire.StatusEOF:
			c.logger.Debug("collector read end of file", slog.String("collector", c.name))
			return false
		case wire.StatusError:
			c.logger.Debug("collector read error", slog.String("collector", c.name))
			return false
		}

		// Integrity check, not authentication: a peer that does not even
		// claim to be a collector is disconnected outright.
		if env.GetOrigin() != tkmpb.Envelope_Collector {
			return false
		}

		var req tkmpb.Request
		if err := env.GetMesg().UnmarshalTo(&req); err != nil {
			c.logger.Debug("collector request unmarshal failed",
				slog.String("collector", c.name), slog.String("error", err.Error()))
			return false
		}
		c.lastUpdate = time.Now()

		if req.GetType() == tkmpb.Request_CreateSession {
			if !c.doCreateSession() {
				return false
			}
			continue
		}

		action, known := dispatcher.ActionFor(req.GetType())
		if !known {
			c.logger.Debug("unknown request type",
				slog.String("collector", c.name), slog.Int("type", int(req.GetType())))
			return false
		}
		if !c.router.PushRequest(dispatcher.Request{Action: action, Collector: c}) {
			return false
		}
	}
}

// doCreateSession mints the session hash from the peer's descriptor id
// plus fresh randomness and replies with the active lane cadence.
func (c *Collector) doCreateSession() bool {
	content := c.descriptorID + fmt.Sprintf("%016X", rand.Uint64())
	c.sessionHash = strconv.FormatUint(wire.JenkinsHash64(content), 10)

	sessionInfo := &tkmpb.SessionInfo{
		Hash:              c.sessionHash,
		LifecycleId:       "na",
		FastLaneInterval:  uint64(c.session.FastLaneInterval / time.Microsecond),
		PaceLaneInterval:  uint64(c.session.PaceLaneInterval / time.Microsecond),
		SlowLaneInterval:  uint64(c.session.SlowLaneInterval / time.Microsecond),
		KeepAliveInterval: uint64(c.session.KeepAliveInterval / time.Microsecond),
	}
	c.logger.Info("send new session id",
		slog.String("collector", c.name), slog.String("hash", c.sessionHash))

	payload, err := anypb.New(sessionInfo)
	if err != nil {
		return false
	}
	return c.writeMessage(&tkmpb.Message{Type: tkmpb.Message_SetSession, Payload: payload})
}

// SendData wraps one Data record in the Message/Envelope framing and
// writes it out.
func (c *Collector) SendData(data *tkmpb.Data) bool {
	payload, err := anypb.New(data)
	if err != nil {
		return false
	}
	return c.writeMessage(&tkmpb.Message{Type: tkmpb.Message_Data, Payload: payload})
}

func (c *Collector) writeMessage(msg *tkmpb.Message) bool {
	mesg, err := anypb.New(msg)
	if err != nil {
		return false
	}
	env := &tkmpb.Envelope{
		Mesg:   mesg,
		Origin: tkmpb.Envelope_Monitor,
		Target: tkmpb.Envelope_Collector,
	}
	if !c.writer.Send(env) {
		c.logger.Debug("collector write failed", slog.String("collector", c.name))
		return false
	}
	return true
}

// Finalize closes the socket and tells the state manager this reference is
// dead. Called exactly once by the loop.
func (c *Collector) Finalize() {
	c.logger.Info("ended connection with collector", slog.String("collector", c.name))
	if c.fd > 0 {
		_ = closeFD(c.fd)
		c.fd = -1
	}
	if c.onFinalize != nil {
		c.onFinalize(c)
	}
}
