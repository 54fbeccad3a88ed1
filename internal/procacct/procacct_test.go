package procacct

import (
	"testing"
	"unsafe"

	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

func taskstatsBytes(ts *unix.Taskstats) []byte {
	size := int(unsafe.Sizeof(*ts))
	raw := unsafe.Slice((*byte)(unsafe.Pointer(ts)), size)
	return append([]byte(nil), raw...)
}

func sampleTaskstats() *unix.Taskstats {
	ts := &unix.Taskstats{
		Ac_uid:                1000,
		Ac_gid:                1000,
		Ac_pid:                4242,
		Ac_ppid:               1,
		Ac_utime:              300,
		Ac_stime:              200,
		Cpu_count:             4,
		Cpu_delay_total:       8_000_000, // 8 ms over 4 periods
		Cpu_run_real_total:    111,
		Cpu_run_virtual_total: 222,
		Blkio_count:           2,
		Blkio_delay_total:     6_000_000,
		Swapin_count:          0,
		Swapin_delay_total:    5_000_000,
		Coremem:               1234,
		Virtmem:               5678,
		Hiwater_rss:           4321,
		Hiwater_vm:            8765,
		Nvcsw:                 10,
		Nivcsw:                20,
		Read_bytes:            100,
		Write_bytes:           200,
		Freepages_count:       3,
		Freepages_delay_total: 9_000_000,
		Thrashing_count:       1,
		Thrashing_delay_total: 4_000_000,
	}
	comm := "stress-ng"
	for i := 0; i < len(comm); i++ {
		ts.Ac_comm[i] = int8(comm[i])
	}
	return ts
}

func TestParseTaskstatsFields(t *testing.T) {
	acct, err := parseTaskstats(taskstatsBytes(sampleTaskstats()))
	if err != nil {
		t.Fatalf("parseTaskstats: %v", err)
	}

	if acct.GetAcComm() != "stress-ng" {
		t.Fatalf("ac_comm = %q, want stress-ng", acct.GetAcComm())
	}
	if acct.GetAcPid() != 4242 || acct.GetAcPpid() != 1 {
		t.Fatalf("pid/ppid = %d/%d", acct.GetAcPid(), acct.GetAcPpid())
	}
	if acct.GetAcUtime() != 300 || acct.GetAcStime() != 200 {
		t.Fatalf("utime/stime = %d/%d", acct.GetAcUtime(), acct.GetAcStime())
	}
	if acct.GetMem().GetCoremem() != 1234 || acct.GetMem().GetHiwaterVm() != 8765 {
		t.Fatalf("mem = %+v", acct.GetMem())
	}
	if acct.GetCtx().GetNvcsw() != 10 || acct.GetCtx().GetNivcsw() != 20 {
		t.Fatalf("ctx = %+v", acct.GetCtx())
	}
	if acct.GetIo().GetReadBytes() != 100 || acct.GetIo().GetWriteBytes() != 200 {
		t.Fatalf("io = %+v", acct.GetIo())
	}
}

func TestParseTaskstatsDelayAverages(t *testing.T) {
	acct, err := parseTaskstats(taskstatsBytes(sampleTaskstats()))
	if err != nil {
		t.Fatalf("parseTaskstats: %v", err)
	}

	// 8 ms cumulative delay across 4 cpus.
	if got := acct.GetCpu().GetCpuDelayAverage(); got != 2 {
		t.Fatalf("cpu_delay_average = %d ms, want 2", got)
	}
	// 6 ms across 2 block io operations.
	if got := acct.GetIo().GetBlkioDelayAverage(); got != 3 {
		t.Fatalf("blkio_delay_average = %d ms, want 3", got)
	}
	// Zero count divides by one, not by zero.
	if got := acct.GetSwp().GetSwapinDelayAverage(); got != 5 {
		t.Fatalf("swapin_delay_average = %d ms, want 5", got)
	}
	if got := acct.GetReclaim().GetFreepagesDelayAverage(); got != 3 {
		t.Fatalf("freepages_delay_average = %d ms, want 3", got)
	}
	if got := acct.GetThrashing().GetThrashingDelayAverage(); got != 4 {
		t.Fatalf("thrashing_delay_average = %d ms, want 4", got)
	}
}

func TestParseTaskstatsShortPayload(t *testing.T) {
	if _, err := parseTaskstats(make([]byte, 16)); err == nil {
		t.Fatal("short payload must fail")
	}
}

func TestDecodeTaskstatsReplyAggrPid(t *testing.T) {
	stats := taskstatsBytes(sampleTaskstats())

	ae := netlink.NewAttributeEncoder()
	ae.Nested(unix.TASKSTATS_TYPE_AGGR_PID, func(nae *netlink.AttributeEncoder) error {
		nae.Uint32(unix.TASKSTATS_TYPE_PID, 4242)
		nae.Bytes(unix.TASKSTATS_TYPE_STATS, stats)
		return nil
	})
	data, err := ae.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	acct, err := decodeTaskstatsReply(data)
	if err != nil {
		t.Fatalf("decodeTaskstatsReply: %v", err)
	}
	if acct == nil {
		t.Fatal("no record decoded")
	}
	if acct.GetAcPid() != 4242 {
		t.Fatalf("ac_pid = %d, want 4242", acct.GetAcPid())
	}
}

func TestDecodeTaskstatsReplyWithoutStats(t *testing.T) {
	ae := netlink.NewAttributeEncoder()
	ae.Uint32(unix.TASKSTATS_CMD_ATTR_PID, 1)
	data, err := ae.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	acct, err := decodeTaskstatsReply(data)
	if err != nil {
		t.Fatalf("decodeTaskstatsReply: %v", err)
	}
	if acct != nil {
		t.Fatal("expected no record for a statless message")
	}
}

type fakeRegistry struct {
	updated map[int]*tkmpb.ProcAcct
}

func (f *fakeRegistry) UpdateProcAcct(pid int, acct *tkmpb.ProcAcct) bool {
	if f.updated == nil {
		f.updated = make(map[int]*tkmpb.ProcAcct)
	}
	f.updated[pid] = acct
	return true
}

func TestApplyAcctRoutesToRegistry(t *testing.T) {
	reg := &fakeRegistry{}
	p := &ProcAcct{registry: reg}

	acct := &tkmpb.ProcAcct{AcPid: 77}
	if !p.applyAcct(acct) {
		t.Fatal("applyAcct failed")
	}
	if reg.updated[77] != acct {
		t.Fatal("record not installed on registry entry")
	}
}
