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

// MemInfo samples /proc/meminfo on the fast lane. All sizes are reported in
// kibibytes as read; the two percentages are derived and guarded against
// division by zero.
type MemInfo struct {
	*base
	path    string
	data    *tkmpb.SysProcMemInfo
	startup StartupSink
}

func NewMemInfo(path string, logger *slog.Logger, sink StartupSink) (*MemInfo, error) {
	m := &MemInfo{path: path, data: &tkmpb.SysProcMemInfo{}, startup: sink}
	b, err := newBase("sysprocmeminfo", datasource.Fast, logger, m.handleRequest)
	if err != nil {
		return nil, err
	}
	m.base = b
	return m, nil
}

func (m *MemInfo) handleRequest(rq Request) bool {
	switch rq.Action {
	case UpdateStats:
		return m.updateStats()
	case CollectAndSend:
		return sendData(rq.Collector, tkmpb.Data_SysProcMemInfo, m.snapshot())
	default:
		return m.unknownAction(rq)
	}
}

func (m *MemInfo) updateStats() bool {
	file, err := os.Open(m.path)
	if err != nil {
		m.logger.Warn("cannot open meminfo file",
			slog.String("path", m.path), slog.String("error", err.Error()))
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			m.data.MemTotal = value
		case "MemFree":
			m.data.MemFree = value
		case "MemAvailable":
			m.data.MemAvailable = value
		case "Cached":
			m.data.MemCached = value
		case "SwapTotal":
			m.data.SwapTotal = value
		case "SwapFree":
			m.data.SwapFree = value
		case "SwapCached":
			m.data.SwapCached = value
		}
	}

	if m.data.MemTotal > 0 {
		m.data.MemPercent = uint32(m.data.MemAvailable * 100 / m.data.MemTotal)
	}
	if m.data.SwapTotal > 0 {
		m.data.SwapPercent = uint32(m.data.SwapFree * 100 / m.data.SwapTotal)
	}

	if m.startup != nil {
		m.startup.AddMemData(m.snapshot())
	}
	return true
}

func (m *MemInfo) snapshot() *tkmpb.SysProcMemInfo {
	return &tkmpb.SysProcMemInfo{
		MemTotal:     m.data.MemTotal,
		MemFree:      m.data.MemFree,
		MemAvailable: m.data.MemAvailable,
		MemCached:    m.data.MemCached,
		MemPercent:   m.data.MemPercent,
		SwapTotal:    m.data.SwapTotal,
		SwapFree:     m.data.SwapFree,
		SwapCached:   m.data.SwapCached,
		SwapPercent:  m.data.SwapPercent,
	}
}
