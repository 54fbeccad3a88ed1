package config

import (
	"os"
	"time"
)

// Default lane intervals and thresholds, applied whenever the INI file omits
// a key or the key fails to parse. Production lanes are coarser than
// profiling-mode lanes, and no lane interval is ever allowed to resolve
// below minLaneInterval.
const (
	minLaneInterval = time.Second

	defaultProdFastLaneUs  = int64(2 * time.Second / time.Microsecond)
	defaultProdPaceLaneUs  = int64(5 * time.Second / time.Microsecond)
	defaultProdSlowLaneUs  = int64(30 * time.Second / time.Microsecond)
	defaultProfFastLaneUs  = int64(time.Second / time.Microsecond)
	defaultProfPaceLaneUs  = int64(time.Second / time.Microsecond)
	defaultProfSlowLaneUs  = int64(2 * time.Second / time.Microsecond)
	defaultRxBufferSize    = 1 << 20
	defaultTxBufferSize    = 1 << 20
	defaultMsgBufferSize   = 1 << 20
	defaultTCPPort         = int64(23456)
	defaultInactiveTimeout = 30 * time.Second
	defaultStartupCleanup  = 30 * time.Second
)

// Settings is the fully-resolved, typed configuration consumed by the
// composition root. It is built once from a Store at startup.
type Settings struct {
	RuntimeDirectory string
	ContainersPath   string
	HealthAddress    string

	RxBufferSize  int64
	TxBufferSize  int64
	MsgBufferSize int64

	FastLaneInterval time.Duration
	PaceLaneInterval time.Duration
	SlowLaneInterval time.Duration

	SelfLowerPriority bool
	ReadProcAtInit    bool
	EnableProcEvent   bool
	EnableProcAcct    bool
	EnableTCPServer   bool
	EnableUDSServer   bool
	EnableStartupData bool
	WatchdogEnable    bool

	StartupDataCleanupTime  time.Duration
	CollectorInactiveTimeout time.Duration

	TCPServerAddress     string
	TCPServerPort        int64
	TCPServerStartIfPath string

	UDSServerSocketPath          string
	UDSMonitorCollectorInactivity time.Duration

	PressureWithCPU    bool
	PressureWithMemory bool
	PressureWithIO     bool

	Blacklist []string
}

// Resolve reads every recognized section/key from s and applies the
// documented defaults and minimums. The profile/production lane choice is
// made here, once, based on whether ProfModeIfPath exists on disk at the
// moment Resolve runs.
func Resolve(s Store) *Settings {
	cfg := &Settings{
		RuntimeDirectory: s.GetString("monitor", "RuntimeDirectory", "/run/taskmonitor"),
		ContainersPath:   s.GetString("monitor", "ContainersPath", "/var/lib/lxc"),
		HealthAddress:    s.GetString("monitor", "HealthAddress", "127.0.0.1:8088"),

		RxBufferSize:  s.GetInt64("monitor", "RxBufferSize", defaultRxBufferSize),
		TxBufferSize:  s.GetInt64("monitor", "TxBufferSize", defaultTxBufferSize),
		MsgBufferSize: s.GetInt64("monitor", "MsgBufferSize", defaultMsgBufferSize),

		SelfLowerPriority: s.GetBool("monitor", "SelfLowerPriority", false),
		ReadProcAtInit:    s.GetBool("monitor", "ReadProcAtInit", true),
		EnableProcEvent:   s.GetBool("monitor", "EnableProcEvent", true),
		EnableProcAcct:    s.GetBool("monitor", "EnableProcAcct", true),
		EnableTCPServer:   s.GetBool("monitor", "EnableTCPServer", true),
		EnableUDSServer:   s.GetBool("monitor", "EnableUDSServer", true),
		EnableStartupData: s.GetBool("monitor", "EnableStartupData", true),
		WatchdogEnable:    s.GetBool("monitor", "WatchdogEnable", false),

		StartupDataCleanupTime:  microseconds(s.GetInt64("monitor", "StartupDataCleanupTime", int64(defaultStartupCleanup/time.Microsecond))),
		CollectorInactiveTimeout: microseconds(s.GetInt64("monitor", "CollectorInactiveTimeout", int64(defaultInactiveTimeout/time.Microsecond))),

		TCPServerAddress:     s.GetString("netserver", "TCPServerAddress", "any"),
		TCPServerPort:        s.GetInt64("netserver", "TCPServerPort", defaultTCPPort),
		TCPServerStartIfPath: s.GetString("netserver", "TCPServerStartIfPath", ""),

		UDSServerSocketPath: s.GetString("udsserver", "UDSServerSocketPath", "/run/taskmonitor/taskmonitor.sock"),
		UDSMonitorCollectorInactivity: microseconds(s.GetInt64("udsserver", "UDSMonitorCollectorInactivity", int64(defaultInactiveTimeout/time.Microsecond))),

		PressureWithCPU:    s.GetBool("pressure", "WithCPU", true),
		PressureWithMemory: s.GetBool("pressure", "WithMemory", true),
		PressureWithIO:     s.GetBool("pressure", "WithIO", true),

		Blacklist: s.Keys("blacklist"),
	}

	profileMode := false
	if p := s.GetString("monitor", "ProfModeIfPath", ""); p != "" {
		if _, err := os.Stat(p); err == nil {
			profileMode = true
		}
	}

	if profileMode {
		cfg.FastLaneInterval = laneInterval(s, "ProfModeFastLaneInt", defaultProfFastLaneUs)
		cfg.PaceLaneInterval = laneInterval(s, "ProfModePaceLaneInt", defaultProfPaceLaneUs)
		cfg.SlowLaneInterval = laneInterval(s, "ProfModeSlowLaneInt", defaultProfSlowLaneUs)
	} else {
		cfg.FastLaneInterval = laneInterval(s, "ProdModeFastLaneInt", defaultProdFastLaneUs)
		cfg.PaceLaneInterval = laneInterval(s, "ProdModePaceLaneInt", defaultProdPaceLaneUs)
		cfg.SlowLaneInterval = laneInterval(s, "ProdModeSlowLaneInt", defaultProdSlowLaneUs)
	}

	return cfg
}

func laneInterval(s Store, key string, defaultUs int64) time.Duration {
	us := s.GetInt64("monitor", key, defaultUs)
	d := microseconds(us)
	if d < minLaneInterval {
		return microseconds(defaultUs)
	}
	return d
}

func microseconds(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}
