package sysproc

import (
	"bufio"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/anpopa/taskmonitor/internal/datasource"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// cpuTimes is one raw /proc/stat sample for a single cpu line, in jiffies.
type cpuTimes struct {
	user, nice, system, idle   uint64
	iowait, irq, softirq       uint64
	steal, guest, guestNice    uint64
}

func (t cpuTimes) total() uint64 {
	return t.user + t.nice + t.system + t.idle + t.iowait + t.irq + t.softirq + t.steal
}

func (t cpuTimes) sub(prev cpuTimes) cpuTimes {
	return cpuTimes{
		user: t.user - prev.user, nice: t.nice - prev.nice,
		system: t.system - prev.system, idle: t.idle - prev.idle,
		iowait: t.iowait - prev.iowait, irq: t.irq - prev.irq,
		softirq: t.softirq - prev.softirq, steal: t.steal - prev.steal,
		guest: t.guest - prev.guest, guestNice: t.guestNice - prev.guestNice,
	}
}

// cpuCore keeps the previous observation alongside the reported record. The
// first sample only establishes the baseline, so the record stays zeroed
// until the second update.
type cpuCore struct {
	name      string
	aggregate bool
	last      cpuTimes
	data      *tkmpb.CPUStat
}

func (c *cpuCore) updateStats(sample cpuTimes) {
	if c.last.total() == 0 {
		c.last = sample
		return
	}
	diff := sample.sub(c.last)
	c.last = sample

	total := diff.total()
	if total == 0 {
		return
	}
	c.data.Usr = uint32(diff.user * 100 / total)
	c.data.Sys = uint32(diff.system * 100 / total)
	c.data.Iow = uint32(diff.iowait * 100 / total)
	c.data.All = c.data.Usr + c.data.Sys + c.data.Iow
}

// Stat samples /proc/stat on the fast lane and reports per-core and
// aggregate usage percentages relative to the previous observation.
type Stat struct {
	*base
	path    string
	cores   map[string]*cpuCore
	order   []string
	startup StartupSink
}

// NewStat creates the source. path is normally "/proc/stat"; sink may be
// nil when the startup cache is disabled.
func NewStat(path string, logger *slog.Logger, sink StartupSink) (*Stat, error) {
	s := &Stat{path: path, cores: make(map[string]*cpuCore), startup: sink}
	b, err := newBase("sysprocstat", datasource.Fast, logger, s.handleRequest)
	if err != nil {
		return nil, err
	}
	s.base = b
	return s, nil
}

func (s *Stat) handleRequest(rq Request) bool {
	switch rq.Action {
	case UpdateStats:
		return s.updateStats()
	case CollectAndSend:
		return sendData(rq.Collector, tkmpb.Data_SysProcStat, s.snapshot())
	default:
		return s.unknownAction(rq)
	}
}

func (s *Stat) updateStats() bool {
	file, err := os.Open(s.path)
	if err != nil {
		s.logger.Warn("cannot open stat file",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu") {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 11 {
			s.logger.Warn("stat line parse error", slog.String("line", line))
			return false
		}

		var sample cpuTimes
		values := []*uint64{
			&sample.user, &sample.nice, &sample.system, &sample.idle,
			&sample.iowait, &sample.irq, &sample.softirq, &sample.steal,
			&sample.guest, &sample.guestNice,
		}
		ok := true
		for i, dst := range values {
			v, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				ok = false
				break
			}
			*dst = v
		}
		if !ok {
			s.logger.Warn("stat line parse error", slog.String("line", line))
			return false
		}

		name := fields[0]
		core, known := s.cores[name]
		if !known {
			core = &cpuCore{
				name:      name,
				aggregate: name == "cpu",
				data:      &tkmpb.CPUStat{Name: name},
			}
			s.cores[name] = core
			s.order = append(s.order, name)
			s.logger.Info("adding new cpu core for statistics", slog.String("name", name))
		}
		core.updateStats(sample)
	}

	if s.startup != nil {
		s.startup.AddCpuData(s.snapshot())
	}
	return true
}

func (s *Stat) snapshot() *tkmpb.SysProcStat {
	out := &tkmpb.SysProcStat{}
	for _, name := range s.order {
		core := s.cores[name]
		record := &tkmpb.CPUStat{
			Name: core.data.Name,
			All:  core.data.All,
			Usr:  core.data.Usr,
			Sys:  core.data.Sys,
			Iow:  core.data.Iow,
		}
		if core.aggregate {
			out.Cpu = record
		} else {
			out.Core = append(out.Core, record)
		}
	}
	return out
}
