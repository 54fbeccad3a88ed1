// Command taskmonitor is the host telemetry agent. It loads an INI
// configuration file, builds the sampling and fan-out engine, serves
// collector connections over TCP and UDS, and shuts down gracefully on
// SIGTERM or SIGINT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/anpopa/taskmonitor/internal/app"
	"github.com/anpopa/taskmonitor/internal/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "/etc/taskmonitor.conf", "path to the TaskMonitor INI configuration file")
	flag.StringVar(&configPath, "c", "/etc/taskmonitor.conf", "shorthand for --config")
	logLevel := flag.String("log-level", "info", "minimum log level: debug, info, warn, error")
	flag.Parse()

	logger := newLogger(*logLevel)
	slog.SetDefault(logger)

	store, err := config.Load(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "taskmonitor: %v\n", err)
		os.Exit(1)
	}
	settings := config.Resolve(store)

	logger.Info("configuration loaded",
		slog.String("config_path", configPath),
		slog.Duration("fast_lane", settings.FastLaneInterval),
		slog.Duration("pace_lane", settings.PaceLaneInterval),
		slog.Duration("slow_lane", settings.SlowLaneInterval),
	)

	// Collector writes race peer disconnects by design; the write error is
	// handled per session, never by process death.
	signal.Ignore(syscall.SIGPIPE)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	agent, err := app.New(settings, logger)
	if err != nil {
		logger.Error("failed to build agent", slog.Any("error", err))
		os.Exit(1)
	}

	if err := agent.Run(ctx); err != nil {
		logger.Error("agent terminated with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger constructs a *slog.Logger that writes JSON-structured log
// records to stderr at the requested minimum level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
