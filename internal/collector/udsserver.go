package collector

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// UDSServer accepts collector connections on a Unix domain socket. The
// socket path is recreated on every start and left world-connectable;
// local access control is the directory's business.
type UDSServer struct {
	deps Deps
	fd   int
	path string
}

func NewUDSServer(deps Deps) (*UDSServer, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("udsserver: socket: %w", err)
	}
	return &UDSServer{deps: deps, fd: fd}, nil
}

func (s *UDSServer) FD() int       { return s.fd }
func (s *UDSServer) Priority() int { return 0 }

// Start binds to path, removing any stale socket left by a previous run,
// and begins listening.
func (s *UDSServer) Start(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("udsserver: remove stale socket %s: %w", path, err)
	}

	if err := unix.Bind(s.fd, &unix.SockaddrUnix{Name: path}); err != nil {
		return fmt.Errorf("udsserver: bind %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o666); err != nil {
		return fmt.Errorf("udsserver: chmod %s: %w", path, err)
	}
	if err := unix.Listen(s.fd, 10); err != nil {
		return fmt.Errorf("udsserver: listen %s: %w", path, err)
	}
	s.path = path
	s.deps.Logger.Info("uds server listening", slog.String("path", path))
	return nil
}

func (s *UDSServer) OnReadable() bool {
	collectorFd, _, err := unix.Accept4(s.fd, unix.SOCK_CLOEXEC)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return true
		}
		s.deps.Logger.Warn("fail to accept on uds server socket", slog.String("error", err.Error()))
		return false
	}

	if err := acceptCollector(collectorFd, KindUDS, s.deps); err != nil {
		s.deps.Logger.Warn("collector handshake failed", slog.String("error", err.Error()))
	}
	return true
}

func (s *UDSServer) Finalize() {
	if s.fd > 0 {
		_ = closeFD(s.fd)
		s.fd = -1
	}
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}
