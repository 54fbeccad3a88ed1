package sysproc

import (
	"bufio"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"

	"github.com/anpopa/taskmonitor/internal/datasource"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Wireless samples /proc/net/wireless on the slow lane. Interfaces are
// keyed by name; the kernel renders the quality columns with a trailing
// dot, which is stripped before parsing.
type Wireless struct {
	*base
	path  string
	ifs   map[string]*tkmpb.WlanInterfaceData
	order []string
}

func NewWireless(path string, logger *slog.Logger) (*Wireless, error) {
	w := &Wireless{path: path, ifs: make(map[string]*tkmpb.WlanInterfaceData)}
	b, err := newBase("sysprocwireless", datasource.Slow, logger, w.handleRequest)
	if err != nil {
		return nil, err
	}
	w.base = b
	return w, nil
}

func (w *Wireless) handleRequest(rq Request) bool {
	switch rq.Action {
	case UpdateStats:
		return w.updateStats()
	case CollectAndSend:
		return sendData(rq.Collector, tkmpb.Data_SysProcWireless, w.snapshot())
	default:
		return w.unknownAction(rq)
	}
}

func trimDot(s string) string { return strings.TrimSuffix(s, ".") }

func (w *Wireless) updateStats() bool {
	file, err := os.Open(w.path)
	if err != nil {
		w.logger.Warn("cannot open wireless file",
			slog.String("path", w.path), slog.String("error", err.Error()))
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) < 11 || !strings.HasSuffix(tokens[0], ":") {
			// header lines
			continue
		}

		name := strings.TrimSuffix(tokens[0], ":")
		entry, known := w.ifs[name]
		if !known {
			entry = &tkmpb.WlanInterfaceData{Name: name}
			w.ifs[name] = entry
			w.order = append(w.order, name)
			w.logger.Info("adding new wireless interface", slog.String("name", name))
		}

		entry.Status = tokens[1]
		if v, err := strconv.ParseInt(trimDot(tokens[2]), 10, 32); err == nil {
			entry.QualityLink = int32(v)
		}
		if v, err := strconv.ParseInt(trimDot(tokens[3]), 10, 32); err == nil {
			entry.QualityLevel = int32(v)
		}
		if v, err := strconv.ParseInt(trimDot(tokens[4]), 10, 32); err == nil {
			entry.QualityNoise = int32(v)
		}
		discarded := []*uint32{
			&entry.DiscardedNwid, &entry.DiscardedCrypt, &entry.DiscardedFrag,
			&entry.DiscardedRetry, &entry.DiscardedMisc, &entry.MissedBeacon,
		}
		for i, dst := range discarded {
			if v, err := strconv.ParseUint(tokens[5+i], 10, 32); err == nil {
				*dst = uint32(v)
			}
		}
	}
	return true
}

func (w *Wireless) snapshot() *tkmpb.SysProcWireless {
	out := &tkmpb.SysProcWireless{}
	for _, name := range w.order {
		out.Ifw = append(out.Ifw, proto.Clone(w.ifs[name]).(*tkmpb.WlanInterfaceData))
	}
	return out
}
