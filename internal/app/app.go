// Package app is the composition root: it builds the reactor, every data
// source, the dispatcher, the collector servers, and the operator-facing
// health surface from resolved settings, and owns their lifetime.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/anpopa/taskmonitor/internal/collector"
	"github.com/anpopa/taskmonitor/internal/config"
	"github.com/anpopa/taskmonitor/internal/dispatcher"
	"github.com/anpopa/taskmonitor/internal/procacct"
	"github.com/anpopa/taskmonitor/internal/procevent"
	"github.com/anpopa/taskmonitor/internal/reactor"
	"github.com/anpopa/taskmonitor/internal/registry"
	"github.com/anpopa/taskmonitor/internal/scheduler"
	"github.com/anpopa/taskmonitor/internal/startupcache"
	"github.com/anpopa/taskmonitor/internal/sysproc"
)

// ErrAlreadyInitialized is returned when a second App is constructed while
// one is still alive. The agent is strictly single-instance per process.
var ErrAlreadyInitialized = errors.New("app: already initialized")

var initialized atomic.Bool

// App owns every subsystem. Construction wires them together; Run
// registers them with the reactor and blocks until shutdown.
type App struct {
	logger   *slog.Logger
	settings *config.Settings

	loop      *reactor.Loop
	registry  *registry.Registry
	procEvent *procevent.ProcEvent
	procAcct  *procacct.ProcAcct

	stat      *sysproc.Stat
	memInfo   *sysproc.MemInfo
	vmStat    *sysproc.VMStat
	diskStats *sysproc.DiskStats
	buddyInfo *sysproc.BuddyInfo
	pressure  *sysproc.Pressure
	wireless  *sysproc.Wireless

	startup    *startupcache.Cache
	dispatcher *dispatcher.Dispatcher
	scheduler  *scheduler.Scheduler
	stateMgr   *collector.StateManager
	tcpServer  *collector.TCPServer
	udsServer  *collector.UDSServer

	metrics *Metrics
}

// New builds the agent from resolved settings. A second call while a
// previous App is alive fails with ErrAlreadyInitialized.
func New(settings *config.Settings, logger *slog.Logger) (*App, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	a, err := build(settings, logger)
	if err != nil {
		initialized.Store(false)
		return nil, err
	}
	return a, nil
}

func build(settings *config.Settings, logger *slog.Logger) (*App, error) {
	a := &App{logger: logger, settings: settings}

	if settings.SelfLowerPriority {
		if err := unix.Setpriority(unix.PRIO_PROCESS, 0, 19); err != nil {
			logger.Warn("fail to lower process priority", slog.String("error", err.Error()))
		}
	}

	loop, err := reactor.New(logger)
	if err != nil {
		return nil, err
	}
	a.loop = loop

	a.registry, err = registry.New(registry.Config{
		ContainersPath: settings.ContainersPath,
		Blacklist:      settings.Blacklist,
	}, logger)
	if err != nil {
		return nil, err
	}

	if settings.EnableStartupData {
		a.startup, err = startupcache.New(logger)
		if err != nil {
			return nil, err
		}
	}
	// The sysproc constructors tolerate a nil sink; the typed nil must not
	// escape into their interface fields.
	var sink sysproc.StartupSink
	if a.startup != nil {
		sink = a.startup
	}

	if a.stat, err = sysproc.NewStat("/proc/stat", logger, sink); err != nil {
		return nil, err
	}
	if a.memInfo, err = sysproc.NewMemInfo("/proc/meminfo", logger, sink); err != nil {
		return nil, err
	}
	if a.vmStat, err = sysproc.NewVMStat("/proc/vmstat", logger); err != nil {
		return nil, err
	}
	if a.diskStats, err = sysproc.NewDiskStats("/proc/diskstats", logger); err != nil {
		return nil, err
	}
	if a.buddyInfo, err = sysproc.NewBuddyInfo("/proc/buddyinfo", logger); err != nil {
		return nil, err
	}
	if a.pressure, err = sysproc.NewPressure("/proc/pressure", sysproc.PressureConfig{
		WithCPU:    settings.PressureWithCPU,
		WithMemory: settings.PressureWithMemory,
		WithIO:     settings.PressureWithIO,
	}, logger, sink); err != nil {
		return nil, err
	}
	if a.wireless, err = sysproc.NewWireless("/proc/net/wireless", logger); err != nil {
		return nil, err
	}

	if settings.EnableProcEvent {
		a.procEvent, err = procevent.New(procevent.Config{
			RxBufferSize: int(settings.RxBufferSize),
			TxBufferSize: int(settings.TxBufferSize),
		}, a.registry, logger)
		if err != nil {
			return nil, err
		}
	}

	if settings.EnableProcAcct {
		a.procAcct, err = procacct.New(procacct.Config{
			RxBufferSize: int(settings.RxBufferSize),
			TxBufferSize: int(settings.TxBufferSize),
		}, a.registry, logger)
		if err != nil {
			return nil, err
		}
		a.registry.SetAcctRequester(a.procAcct)
	}

	sources := dispatcher.Sources{
		Registry:  a.registry,
		Stat:      a.stat,
		MemInfo:   a.memInfo,
		VMStat:    a.vmStat,
		DiskStats: a.diskStats,
		BuddyInfo: a.buddyInfo,
		Pressure:  a.pressure,
		Wireless:  a.wireless,
	}
	if a.procEvent != nil {
		sources.ProcEvent = a.procEvent
	}
	if a.startup != nil {
		sources.StartupData = a.startup
	}
	a.dispatcher, err = dispatcher.New(sources, logger)
	if err != nil {
		return nil, err
	}

	a.scheduler, err = scheduler.New(scheduler.Intervals{
		Fast: settings.FastLaneInterval,
		Pace: settings.PaceLaneInterval,
		Slow: settings.SlowLaneInterval,
	}, logger)
	if err != nil {
		return nil, err
	}
	a.scheduler.RegisterSource(a.registry)
	a.scheduler.RegisterSource(a.stat)
	a.scheduler.RegisterSource(a.memInfo)
	a.scheduler.RegisterSource(a.vmStat)
	a.scheduler.RegisterSource(a.diskStats)
	a.scheduler.RegisterSource(a.buddyInfo)
	a.scheduler.RegisterSource(a.pressure)
	a.scheduler.RegisterSource(a.wireless)

	a.stateMgr, err = collector.NewStateManager(a.loop, settings.CollectorInactiveTimeout, logger)
	if err != nil {
		return nil, err
	}

	deps := collector.Deps{
		Logger: logger,
		Loop:   a.loop,
		Router: a.dispatcher,
		State:  a.stateMgr,
		Session: collector.SessionConfig{
			FastLaneInterval:  settings.FastLaneInterval,
			PaceLaneInterval:  settings.PaceLaneInterval,
			SlowLaneInterval:  settings.SlowLaneInterval,
			KeepAliveInterval: settings.CollectorInactiveTimeout,
		},
		Timeout: settings.CollectorInactiveTimeout,
	}
	if settings.EnableTCPServer {
		a.tcpServer, err = collector.NewTCPServer(deps)
		if err != nil {
			return nil, err
		}
	}
	if settings.EnableUDSServer {
		udsDeps := deps
		udsDeps.Timeout = settings.UDSMonitorCollectorInactivity
		a.udsServer, err = collector.NewUDSServer(udsDeps)
		if err != nil {
			return nil, err
		}
	}

	a.metrics = newMetrics(
		func() float64 { return float64(a.stateMgr.ActiveCount()) },
		func() float64 { return float64(a.registry.Count()) },
	)
	a.metrics.setLaneIntervals(settings.FastLaneInterval, settings.PaceLaneInterval, settings.SlowLaneInterval)

	return a, nil
}

// shouldStartServers evaluates the conditional-start path. The same key
// gates both transports.
func (a *App) shouldStartServers() bool {
	if a.settings.TCPServerStartIfPath == "" || a.settings.TCPServerStartIfPath == "none" {
		return true
	}
	_, err := os.Stat(a.settings.TCPServerStartIfPath)
	return err == nil
}

// register adds every component to the reactor in dependency order.
func (a *App) register() error {
	pollables := []reactor.Pollable{
		a.dispatcher.EventSource(),
		a.registry.EventSource(),
		a.stat.EventSource(),
		a.memInfo.EventSource(),
		a.vmStat.EventSource(),
		a.diskStats.EventSource(),
		a.buddyInfo.EventSource(),
		a.pressure.EventSource(),
		a.wireless.EventSource(),
		a.stateMgr.EventSource(),
		a.stateMgr.Timer(),
	}
	pollables = append(pollables, a.scheduler.Timers()...)

	if a.procEvent != nil {
		pollables = append(pollables, a.procEvent, a.procEvent.EventSource())
	}
	if a.procAcct != nil {
		pollables = append(pollables, a.procAcct.EventSource())
	}
	if a.startup != nil {
		pollables = append(pollables, a.startup.EventSource())

		expiry, err := reactor.NewTimer(a.settings.StartupDataCleanupTime, 0, func() bool {
			a.startup.DropData()
			return false
		})
		if err != nil {
			return fmt.Errorf("app: startup expiry timer: %w", err)
		}
		pollables = append(pollables, expiry)
	}
	if a.tcpServer != nil {
		pollables = append(pollables, a.tcpServer)
	}
	if a.udsServer != nil {
		pollables = append(pollables, a.udsServer)
	}

	for _, p := range pollables {
		if err := a.loop.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Run wires everything to the reactor and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.register(); err != nil {
		return err
	}

	if a.settings.RuntimeDirectory != "" {
		if err := os.MkdirAll(a.settings.RuntimeDirectory, 0o755); err != nil {
			a.logger.Warn("cannot create runtime directory",
				slog.String("path", a.settings.RuntimeDirectory), slog.String("error", err.Error()))
		}
	}

	if a.shouldStartServers() {
		if a.tcpServer != nil {
			if err := a.tcpServer.BindAndListen(a.settings.TCPServerAddress, int(a.settings.TCPServerPort)); err != nil {
				a.logger.Error("fail to start tcp server", slog.String("error", err.Error()))
			}
		}
		if a.udsServer != nil {
			if err := a.udsServer.Start(a.settings.UDSServerSocketPath); err != nil {
				a.logger.Error("fail to start uds server", slog.String("error", err.Error()))
			}
		}
	}

	if a.procAcct != nil {
		a.procAcct.Start()
	}
	if a.settings.ReadProcAtInit {
		a.registry.InitFromProc()
	}
	if a.procEvent != nil {
		if err := a.procEvent.StartMonitoring(); err != nil {
			return err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)

	stop := make(chan struct{})
	group.Go(func() error {
		a.loop.Run(stop)
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		close(stop)
		return nil
	})

	healthServer := &http.Server{
		Addr:         a.settings.HealthAddress,
		Handler:      a.healthHandler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	group.Go(func() error {
		a.logger.Info("health server listening", slog.String("addr", a.settings.HealthAddress))
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return healthServer.Shutdown(shutdownCtx)
	})

	if a.settings.WatchdogEnable {
		if wd := newWatchdog(a.logger); wd != nil {
			group.Go(func() error { return wd.run(groupCtx) })
		}
	}

	err := group.Wait()
	a.close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// close releases every owned resource and the singleton slot.
func (a *App) close() {
	if a.procAcct != nil {
		a.procAcct.Close()
	}
	_ = a.loop.Close()
	initialized.Store(false)
	a.logger.Info("taskmonitor exited cleanly")
}

// healthHandler serves the operator surface: liveness plus Prometheus
// metrics.
func (a *App) healthHandler() http.Handler {
	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	router.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(a.metrics.registry, promhttp.HandlerOpts{}))
	return router
}
