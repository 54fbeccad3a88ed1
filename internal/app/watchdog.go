package app

import (
	"context"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"
)

// watchdog sends systemd heartbeats at half the configured timeout. It is
// only active when the service manager asked for it: both NOTIFY_SOCKET
// and WATCHDOG_USEC must be present in the environment.
type watchdog struct {
	logger   *slog.Logger
	socket   string
	interval time.Duration
}

func newWatchdog(logger *slog.Logger) *watchdog {
	socket := os.Getenv("NOTIFY_SOCKET")
	usecRaw := os.Getenv("WATCHDOG_USEC")
	if socket == "" || usecRaw == "" {
		logger.Info("systemd watchdog disabled")
		return nil
	}
	usec, err := strconv.ParseInt(usecRaw, 10, 64)
	if err != nil || usec <= 0 {
		logger.Warn("fail to get the systemd watchdog status",
			slog.String("watchdog_usec", usecRaw))
		return nil
	}
	timeout := time.Duration(usec) * time.Microsecond
	logger.Info("systemd watchdog enabled", slog.Duration("timeout", timeout))
	return &watchdog{logger: logger, socket: socket, interval: timeout / 2}
}

func (w *watchdog) notify(state string) error {
	conn, err := net.Dial("unixgram", w.socket)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Write([]byte(state))
	return err
}

// run blocks sending heartbeats until ctx is cancelled.
func (w *watchdog) run(ctx context.Context) error {
	if err := w.notify("READY=1"); err != nil {
		w.logger.Warn("fail to notify service readiness", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.notify("WATCHDOG=1"); err != nil {
				w.logger.Warn("fail to send the heartbeat to systemd",
					slog.String("error", err.Error()))
			} else {
				w.logger.Debug("watchdog heartbeat sent")
			}
		}
	}
}
