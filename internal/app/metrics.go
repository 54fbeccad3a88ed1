package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the agent's own observability surface, served at /metrics on
// the health listener. It watches the engine from the outside: gauges pull
// their values on scrape instead of instrumenting the hot paths.
type Metrics struct {
	registry *prometheus.Registry

	laneInterval *prometheus.GaugeVec
}

func newMetrics(activeCollectors, trackedProcesses func() float64) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		laneInterval: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "taskmonitor",
			Name:      "lane_interval_seconds",
			Help:      "Configured update interval per scheduler lane.",
		}, []string{"lane"}),
	}
	m.registry.MustRegister(m.laneInterval)

	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "taskmonitor",
		Name:      "active_collectors",
		Help:      "Collectors currently in the state manager's active set.",
	}, activeCollectors))

	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "taskmonitor",
		Name:      "tracked_processes",
		Help:      "Process entries currently committed in the registry.",
	}, trackedProcesses))

	return m
}

func (m *Metrics) setLaneIntervals(fast, pace, slow time.Duration) {
	m.laneInterval.WithLabelValues("fast").Set(fast.Seconds())
	m.laneInterval.WithLabelValues("pace").Set(pace.Seconds())
	m.laneInterval.WithLabelValues("slow").Set(slow.Seconds())
}
