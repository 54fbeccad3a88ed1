package collector

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"golang.org/x/sys/unix"

	"github.com/anpopa/taskmonitor/internal/reactor"
	"github.com/anpopa/taskmonitor/internal/wire"
)

func closeFD(fd int) error { return unix.Close(fd) }

// handshakeTimeout bounds how long an accepted peer may take to send its
// descriptor before being disconnected.
var handshakeTimeout = unix.Timeval{Sec: 3}

// Deps is everything an acceptor needs to turn a raw connection into a
// monitored collector session.
type Deps struct {
	Logger  *slog.Logger
	Loop    *reactor.Loop
	Router  RequestRouter
	State   *StateManager
	Session SessionConfig
	// Timeout is this transport's inactivity threshold; zero keeps the
	// state manager's default.
	Timeout time.Duration
}

// acceptCollector runs the shared post-accept sequence: bounded descriptor
// read, non-blocking promotion, loop registration, and state manager
// monitoring. Failures close the peer and report an error; the acceptor
// stays up either way.
func acceptCollector(fd int, kind Kind, deps Deps) error {
	if err := unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &handshakeTimeout); err != nil {
		_ = closeFD(fd)
		return fmt.Errorf("set handshake timeout: %w", err)
	}

	desc, err := wire.ReadDescriptor(fd)
	if err != nil {
		_ = closeFD(fd)
		return fmt.Errorf("read descriptor: %w", err)
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		_ = closeFD(fd)
		return fmt.Errorf("set nonblocking: %w", err)
	}

	col := newCollector(fd, kind, desc.GetId(), deps.Router, deps.Session, deps.Logger)
	col.onFinalize = deps.State.NotifyClosed
	col.inactiveTimeout = deps.Timeout

	if err := deps.Loop.Add(col); err != nil {
		_ = closeFD(fd)
		return fmt.Errorf("register collector: %w", err)
	}

	deps.Logger.Info("new collector connected",
		slog.String("collector", col.Name()), slog.String("id", desc.GetId()))
	deps.State.PushRequest(Request{Action: MonitorCollector, Collector: col})
	return nil
}

// TCPServer accepts collector connections on a TCP listener. One accept is
// handled per readable wake; EAGAIN is the idle case, anything else tears
// the acceptor down.
type TCPServer struct {
	deps  Deps
	fd    int
	bound bool
}

func NewTCPServer(deps Deps) (*TCPServer, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("tcpserver: socket: %w", err)
	}
	_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	return &TCPServer{deps: deps, fd: fd}, nil
}

func (s *TCPServer) FD() int       { return s.fd }
func (s *TCPServer) Priority() int { return 0 }

// BindAndListen resolves the configured address ("any" selects INADDR_ANY)
// and starts listening.
func (s *TCPServer) BindAndListen(address string, port int) error {
	if s.bound {
		s.deps.Logger.Warn("tcp server already listening")
		return nil
	}

	sa := &unix.SockaddrInet4{Port: port}
	if address != "any" && address != "" {
		ips, err := net.LookupIP(address)
		if err != nil {
			return fmt.Errorf("tcpserver: resolve %s: %w", address, err)
		}
		found := false
		for _, ip := range ips {
			if v4 := ip.To4(); v4 != nil {
				copy(sa.Addr[:], v4)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("tcpserver: no IPv4 address for %s", address)
		}
	}

	if err := unix.Bind(s.fd, sa); err != nil {
		return fmt.Errorf("tcpserver: bind port %d: %w", port, err)
	}
	if err := unix.Listen(s.fd, 10); err != nil {
		return fmt.Errorf("tcpserver: listen port %d: %w", port, err)
	}
	s.bound = true
	s.deps.Logger.Info("tcp server listening", slog.Int("port", port))
	return nil
}

func (s *TCPServer) OnReadable() bool {
	collectorFd, _, err := unix.Accept4(s.fd, unix.SOCK_CLOEXEC)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return true
		}
		s.deps.Logger.Warn("fail to accept on tcp server socket", slog.String("error", err.Error()))
		return false
	}

	configureKeepAlive(collectorFd)

	if err := acceptCollector(collectorFd, KindTCP, s.deps); err != nil {
		// A misbehaving peer is that peer's problem; keep accepting.
		s.deps.Logger.Warn("collector handshake failed", slog.String("error", err.Error()))
	}
	return true
}

func (s *TCPServer) Finalize() {
	if s.fd > 0 {
		_ = closeFD(s.fd)
		s.fd = -1
	}
}

// configureKeepAlive arms aggressive keepalive probing so dead peers are
// noticed within seconds rather than kernel-default hours.
func configureKeepAlive(fd int) {
	_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_KEEPALIVE, 1)
	_ = unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPIDLE, 1)
	_ = unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPINTVL, 2)
	_ = unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPCNT, 5)
}
