package sysproc

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anpopa/taskmonitor/internal/datasource"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// PressureConfig selects which PSI resources are sampled.
type PressureConfig struct {
	WithCPU    bool
	WithMemory bool
	WithIO     bool
}

// Pressure samples /proc/pressure/{cpu,memory,io} on the pace lane, gated
// per resource by config flags. Each resource contributes both its "some"
// and "full" series.
type Pressure struct {
	*base
	dir       string
	resources []string
	data      *tkmpb.SysProcPressure
	startup   StartupSink
}

// NewPressure creates the source. dir is normally "/proc/pressure".
func NewPressure(dir string, cfg PressureConfig, logger *slog.Logger, sink StartupSink) (*Pressure, error) {
	p := &Pressure{dir: dir, data: &tkmpb.SysProcPressure{}, startup: sink}
	if cfg.WithCPU {
		p.resources = append(p.resources, "cpu")
	}
	if cfg.WithMemory {
		p.resources = append(p.resources, "memory")
	}
	if cfg.WithIO {
		p.resources = append(p.resources, "io")
	}
	b, err := newBase("sysprocpressure", datasource.Pace, logger, p.handleRequest)
	if err != nil {
		return nil, err
	}
	p.base = b
	return p, nil
}

func (p *Pressure) handleRequest(rq Request) bool {
	switch rq.Action {
	case UpdateStats:
		return p.updateStats()
	case CollectAndSend:
		return sendData(rq.Collector, tkmpb.Data_SysProcPressure, p.snapshot())
	default:
		return p.unknownAction(rq)
	}
}

func (p *Pressure) updateStats() bool {
	for _, resource := range p.resources {
		some, full, err := readPSIFile(filepath.Join(p.dir, resource))
		if err != nil {
			p.logger.Warn("cannot read pressure file",
				slog.String("resource", resource), slog.String("error", err.Error()))
			continue
		}
		switch resource {
		case "cpu":
			p.data.CpuSome, p.data.CpuFull = some, full
		case "memory":
			p.data.MemSome, p.data.MemFull = some, full
		case "io":
			p.data.IoSome, p.data.IoFull = some, full
		}
	}

	if p.startup != nil {
		p.startup.AddPsiData(p.snapshot())
	}
	return true
}

// readPSIFile parses one PSI resource file. Lines look like:
//
//	some avg10=0.00 avg60=0.00 avg300=0.00 total=0
func readPSIFile(path string) (some, full *tkmpb.PSIData, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 {
			continue
		}
		series := &tkmpb.PSIData{}
		for _, field := range fields[1:] {
			key, value, found := strings.Cut(field, "=")
			if !found {
				continue
			}
			switch key {
			case "avg10":
				f, _ := strconv.ParseFloat(value, 32)
				series.Avg10 = float32(f)
			case "avg60":
				f, _ := strconv.ParseFloat(value, 32)
				series.Avg60 = float32(f)
			case "avg300":
				f, _ := strconv.ParseFloat(value, 32)
				series.Avg300 = float32(f)
			case "total":
				series.Total, _ = strconv.ParseUint(value, 10, 64)
			}
		}
		switch fields[0] {
		case "some":
			some = series
		case "full":
			full = series
		}
	}
	return some, full, nil
}

func (p *Pressure) snapshot() *tkmpb.SysProcPressure {
	clone := func(in *tkmpb.PSIData) *tkmpb.PSIData {
		if in == nil {
			return nil
		}
		return &tkmpb.PSIData{Avg10: in.Avg10, Avg60: in.Avg60, Avg300: in.Avg300, Total: in.Total}
	}
	return &tkmpb.SysProcPressure{
		CpuSome: clone(p.data.CpuSome), CpuFull: clone(p.data.CpuFull),
		MemSome: clone(p.data.MemSome), MemFull: clone(p.data.MemFull),
		IoSome: clone(p.data.IoSome), IoFull: clone(p.data.IoFull),
	}
}
