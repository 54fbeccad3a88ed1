package sysproc

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/anpopa/taskmonitor/internal/datasource"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// BuddyInfo samples /proc/buddyinfo on the slow lane. Entries are keyed by
// (node, zone); the payload keeps the per-order free page counts as one
// space separated string, exactly as the kernel prints them.
type BuddyInfo struct {
	*base
	path  string
	nodes map[string]*tkmpb.BuddyInfoEntry
	order []string
}

func NewBuddyInfo(path string, logger *slog.Logger) (*BuddyInfo, error) {
	bi := &BuddyInfo{path: path, nodes: make(map[string]*tkmpb.BuddyInfoEntry)}
	b, err := newBase("sysprocbuddyinfo", datasource.Slow, logger, bi.handleRequest)
	if err != nil {
		return nil, err
	}
	bi.base = b
	return bi, nil
}

func (bi *BuddyInfo) handleRequest(rq Request) bool {
	switch rq.Action {
	case UpdateStats:
		return bi.updateStats()
	case CollectAndSend:
		return sendData(rq.Collector, tkmpb.Data_SysProcBuddyInfo, bi.snapshot())
	default:
		return bi.unknownAction(rq)
	}
}

func (bi *BuddyInfo) updateStats() bool {
	file, err := os.Open(bi.path)
	if err != nil {
		bi.logger.Warn("cannot open buddyinfo file",
			slog.String("path", bi.path), slog.String("error", err.Error()))
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())

		zoneMarker := 0
		for i, tok := range tokens {
			if tok == "zone" {
				zoneMarker = i
				break
			}
		}
		if zoneMarker == 0 || len(tokens) < zoneMarker+3 {
			continue
		}

		name := strings.Join(tokens[:zoneMarker], " ")
		zone := tokens[zoneMarker+1]
		counts := strings.Join(tokens[zoneMarker+2:], " ")

		key := name + "/" + zone
		entry, known := bi.nodes[key]
		if !known {
			entry = &tkmpb.BuddyInfoEntry{Name: name, Zone: zone}
			bi.nodes[key] = entry
			bi.order = append(bi.order, key)
			bi.logger.Info("adding new buddyinfo entry",
				slog.String("name", name), slog.String("zone", zone))
		}
		entry.Data = counts
	}
	return true
}

func (bi *BuddyInfo) snapshot() *tkmpb.SysProcBuddyInfo {
	out := &tkmpb.SysProcBuddyInfo{}
	for _, key := range bi.order {
		src := bi.nodes[key]
		out.Node = append(out.Node, &tkmpb.BuddyInfoEntry{
			Name: src.Name, Zone: src.Zone, Data: src.Data,
		})
	}
	return out
}
