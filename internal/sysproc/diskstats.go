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

type diskKey struct {
	major uint32
	minor uint32
}

// DiskStats samples /proc/diskstats on the pace lane. Devices are keyed by
// (major, minor); new devices are appended, known ones updated in place.
type DiskStats struct {
	*base
	path  string
	disks map[diskKey]*tkmpb.DiskStatEntry
	order []diskKey
}

func NewDiskStats(path string, logger *slog.Logger) (*DiskStats, error) {
	d := &DiskStats{path: path, disks: make(map[diskKey]*tkmpb.DiskStatEntry)}
	b, err := newBase("sysprocdiskstats", datasource.Pace, logger, d.handleRequest)
	if err != nil {
		return nil, err
	}
	d.base = b
	return d, nil
}

func (d *DiskStats) handleRequest(rq Request) bool {
	switch rq.Action {
	case UpdateStats:
		return d.updateStats()
	case CollectAndSend:
		return sendData(rq.Collector, tkmpb.Data_SysProcDiskStats, d.snapshot())
	default:
		return d.unknownAction(rq)
	}
}

func (d *DiskStats) updateStats() bool {
	file, err := os.Open(d.path)
	if err != nil {
		d.logger.Warn("cannot open diskstats file",
			slog.String("path", d.path), slog.String("error", err.Error()))
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 14 {
			continue
		}

		numbers := make([]uint64, 0, 14)
		ok := true
		for i, f := range fields[:14] {
			if i == 2 {
				numbers = append(numbers, 0)
				continue
			}
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				ok = false
				break
			}
			numbers = append(numbers, v)
		}
		if !ok {
			continue
		}

		key := diskKey{major: uint32(numbers[0]), minor: uint32(numbers[1])}
		entry, known := d.disks[key]
		if !known {
			entry = &tkmpb.DiskStatEntry{Major: key.major, Minor: key.minor}
			d.disks[key] = entry
			d.order = append(d.order, key)
			d.logger.Info("adding new disk entry for statistics",
				slog.String("name", fields[2]))
		}
		entry.Name = fields[2]
		entry.ReadsCompleted = numbers[3]
		entry.ReadsMerged = numbers[4]
		entry.ReadsSpentMs = numbers[6]
		entry.WritesCompleted = numbers[7]
		entry.WritesMerged = numbers[8]
		entry.WritesSpentMs = numbers[10]
		entry.IoInProgress = numbers[11]
		entry.IoSpentMs = numbers[12]
		entry.IoWeightedMs = numbers[13]
	}
	return true
}

func (d *DiskStats) snapshot() *tkmpb.SysProcDiskStats {
	out := &tkmpb.SysProcDiskStats{}
	for _, key := range d.order {
		out.Disk = append(out.Disk, proto.Clone(d.disks[key]).(*tkmpb.DiskStatEntry))
	}
	return out
}
