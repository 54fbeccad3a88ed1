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

// VMStat samples /proc/vmstat on the pace lane. Only the monitored keys
// below are reported; every other line is skipped.
type VMStat struct {
	*base
	path string
	data *tkmpb.SysProcVMStat
}

func NewVMStat(path string, logger *slog.Logger) (*VMStat, error) {
	v := &VMStat{path: path, data: &tkmpb.SysProcVMStat{}}
	b, err := newBase("sysprocvmstat", datasource.Pace, logger, v.handleRequest)
	if err != nil {
		return nil, err
	}
	v.base = b
	return v, nil
}

func (v *VMStat) handleRequest(rq Request) bool {
	switch rq.Action {
	case UpdateStats:
		return v.updateStats()
	case CollectAndSend:
		return sendData(rq.Collector, tkmpb.Data_SysProcVMStat, v.snapshot())
	default:
		return v.unknownAction(rq)
	}
}

func (v *VMStat) updateStats() bool {
	file, err := os.Open(v.path)
	if err != nil {
		v.logger.Warn("cannot open vmstat file",
			slog.String("path", v.path), slog.String("error", err.Error()))
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		v.store(fields[0], value)
	}
	return true
}

func (v *VMStat) store(key string, value uint64) {
	switch key {
	case "pgpgin":
		v.data.Pgpgin = value
	case "pgpgout":
		v.data.Pgpgout = value
	case "pswpin":
		v.data.Pswpin = value
	case "pswpout":
		v.data.Pswpout = value
	case "pgmajfault":
		v.data.Pgmajfault = value
	case "pgsteal_kswapd":
		v.data.PgstealKswapd = value
	case "pgsteal_direct":
		v.data.PgstealDirect = value
	case "pgsteal_khugepaged":
		v.data.PgstealKhugepaged = value
	case "pgsteal_anon":
		v.data.PgstealAnon = value
	case "pgsteal_file":
		v.data.PgstealFile = value
	case "pgscan_kswapd":
		v.data.PgscanKswapd = value
	case "pgscan_direct":
		v.data.PgscanDirect = value
	case "pgscan_khugepaged":
		v.data.PgscanKhugepaged = value
	case "pgscan_direct_throttle":
		v.data.PgscanDirectThrottle = value
	case "pgscan_anon":
		v.data.PgscanAnon = value
	case "pgscan_file":
		v.data.PgscanFile = value
	case "oom_kill":
		v.data.OomKill = value
	case "compact_stall":
		v.data.CompactStall = value
	case "compact_fail":
		v.data.CompactFail = value
	case "compact_success":
		v.data.CompactSuccess = value
	case "thp_fault_alloc":
		v.data.ThpFaultAlloc = value
	case "thp_collapse_alloc":
		v.data.ThpCollapseAlloc = value
	case "thp_collapse_alloc_failed":
		v.data.ThpCollapseAllocFailed = value
	case "thp_file_alloc":
		v.data.ThpFileAlloc = value
	case "thp_file_mapped":
		v.data.ThpFileMapped = value
	case "thp_split_page":
		v.data.ThpSplitPage = value
	case "thp_split_page_failed":
		v.data.ThpSplitPageFailed = value
	case "thp_zero_page_alloc":
		v.data.ThpZeroPageAlloc = value
	case "thp_zero_page_alloc_failed":
		v.data.ThpZeroPageAllocFailed = value
	case "thp_swpout":
		v.data.ThpSwpout = value
	case "thp_swpout_fallback":
		v.data.ThpSwpoutFallback = value
	}
}

func (v *VMStat) snapshot() *tkmpb.SysProcVMStat {
	return proto.Clone(v.data).(*tkmpb.SysProcVMStat)
}
