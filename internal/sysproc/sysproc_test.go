package sysproc

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/anpopa/taskmonitor/internal/datasource"
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeCollector struct {
	sent []*tkmpb.Data
}

func (f *fakeCollector) Name() string { return "fake" }
func (f *fakeCollector) SendData(d *tkmpb.Data) bool {
	f.sent = append(f.sent, d)
	return true
}

const statFirst = `cpu  100 0 50 800 50 0 0 0 0 0
cpu0 100 0 50 800 50 0 0 0 0 0
intr 12345
`

// +100 usr, +50 sys, +50 iow over a +400 jiffy interval.
const statSecond = `cpu  200 0 100 950 100 0 0 0 0 0
cpu0 200 0 100 950 100 0 0 0 0 0
intr 12345
`

func TestStatFirstSampleIsBaseline(t *testing.T) {
	path := writeFixture(t, "stat", statFirst)
	s, err := NewStat(path, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewStat: %v", err)
	}
	defer s.EventSource().Finalize()

	if !s.updateStats() {
		t.Fatal("updateStats failed")
	}
	snap := s.snapshot()
	if snap.GetCpu() == nil {
		t.Fatal("aggregate cpu record missing")
	}
	if all := snap.GetCpu().GetAll(); all != 0 {
		t.Fatalf("first sample all = %d, want 0", all)
	}
	if len(snap.GetCore()) != 1 {
		t.Fatalf("core count = %d, want 1", len(snap.GetCore()))
	}
}

func TestStatSecondSampleReportsDeltas(t *testing.T) {
	path := writeFixture(t, "stat", statFirst)
	s, err := NewStat(path, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewStat: %v", err)
	}
	defer s.EventSource().Finalize()

	if !s.updateStats() {
		t.Fatal("first updateStats failed")
	}
	if err := os.WriteFile(path, []byte(statSecond), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	if !s.updateStats() {
		t.Fatal("second updateStats failed")
	}

	cpu := s.snapshot().GetCpu()
	if cpu.GetUsr() != 25 || cpu.GetSys() != 12 || cpu.GetIow() != 12 {
		t.Fatalf("usr/sys/iow = %d/%d/%d, want 25/12/12",
			cpu.GetUsr(), cpu.GetSys(), cpu.GetIow())
	}
	if cpu.GetAll() != cpu.GetUsr()+cpu.GetSys()+cpu.GetIow() {
		t.Fatalf("all = %d, want usr+sys+iow = %d",
			cpu.GetAll(), cpu.GetUsr()+cpu.GetSys()+cpu.GetIow())
	}
	if cpu.GetAll() > 100 {
		t.Fatalf("all = %d, want <= 100", cpu.GetAll())
	}
}

func TestStatCollectAndSendDeliversToCollector(t *testing.T) {
	path := writeFixture(t, "stat", statFirst)
	s, err := NewStat(path, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewStat: %v", err)
	}
	defer s.EventSource().Finalize()
	s.updateStats()

	sink := &fakeCollector{}
	if !s.CollectAndSend(sink) {
		t.Fatal("CollectAndSend rejected")
	}
	// Drain the queue the way the reactor would.
	s.EventSource().OnReadable()

	if len(sink.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sink.sent))
	}
	data := sink.sent[0]
	if data.GetWhat() != tkmpb.Data_SysProcStat {
		t.Fatalf("what = %v, want SysProcStat", data.GetWhat())
	}
	if data.GetSystemTimeSec() == 0 {
		t.Fatal("system time stamp missing")
	}
}

func TestUpdateCoalescesWhilePending(t *testing.T) {
	path := writeFixture(t, "stat", statFirst)
	s, err := NewStat(path, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewStat: %v", err)
	}
	defer s.EventSource().Finalize()

	if !s.Update(datasource.Fast) {
		t.Fatal("first Update failed")
	}
	if !s.Update(datasource.Fast) {
		t.Fatal("coalesced Update should report success")
	}
	if got := s.queue.Len(); got != 1 {
		t.Fatalf("queue length = %d, want 1 (second update coalesced)", got)
	}

	s.EventSource().OnReadable()
	if s.pending.Active() {
		t.Fatal("pending latch not released after drain")
	}
}

func TestUpdateIgnoresOtherLanes(t *testing.T) {
	path := writeFixture(t, "stat", statFirst)
	s, err := NewStat(path, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewStat: %v", err)
	}
	defer s.EventSource().Finalize()

	if !s.Update(datasource.Slow) {
		t.Fatal("off-lane Update should report success")
	}
	if got := s.queue.Len(); got != 0 {
		t.Fatalf("queue length = %d, want 0 (slow lane ignored)", got)
	}
}

const meminfoFixture = `MemTotal:       16000000 kB
MemFree:         4000000 kB
MemAvailable:    8000000 kB
Buffers:          500000 kB
Cached:          2000000 kB
SwapCached:        10000 kB
SwapTotal:       2000000 kB
SwapFree:        1500000 kB
`

func TestMemInfoParsesAndDerivesPercentages(t *testing.T) {
	path := writeFixture(t, "meminfo", meminfoFixture)
	m, err := NewMemInfo(path, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewMemInfo: %v", err)
	}
	defer m.EventSource().Finalize()

	if !m.updateStats() {
		t.Fatal("updateStats failed")
	}
	snap := m.snapshot()
	if snap.GetMemTotal() != 16000000 || snap.GetMemAvailable() != 8000000 {
		t.Fatalf("mem_total/mem_available = %d/%d", snap.GetMemTotal(), snap.GetMemAvailable())
	}
	if snap.GetMemCached() != 2000000 {
		t.Fatalf("mem_cached = %d, want 2000000", snap.GetMemCached())
	}
	if snap.GetMemPercent() != 50 {
		t.Fatalf("mem_percent = %d, want 50", snap.GetMemPercent())
	}
	if snap.GetSwapPercent() != 75 {
		t.Fatalf("swap_percent = %d, want 75", snap.GetSwapPercent())
	}
}

func TestMemInfoZeroTotalsDoNotDivide(t *testing.T) {
	path := writeFixture(t, "meminfo", "MemTotal: 0 kB\nSwapTotal: 0 kB\n")
	m, err := NewMemInfo(path, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewMemInfo: %v", err)
	}
	defer m.EventSource().Finalize()

	if !m.updateStats() {
		t.Fatal("updateStats failed")
	}
	if m.snapshot().GetMemPercent() != 0 || m.snapshot().GetSwapPercent() != 0 {
		t.Fatal("percentages should stay zero for zero totals")
	}
}

const vmstatFixture = `nr_free_pages 1000
pgpgin 11
pgpgout 22
pswpin 33
pswpout 44
pgmajfault 55
oom_kill 2
compact_stall 7
thp_fault_alloc 9
not_a_monitored_key 999
`

func TestVMStatWhitelistOnly(t *testing.T) {
	path := writeFixture(t, "vmstat", vmstatFixture)
	v, err := NewVMStat(path, testLogger())
	if err != nil {
		t.Fatalf("NewVMStat: %v", err)
	}
	defer v.EventSource().Finalize()

	if !v.updateStats() {
		t.Fatal("updateStats failed")
	}
	snap := v.snapshot()
	if snap.GetPgpgin() != 11 || snap.GetPgpgout() != 22 {
		t.Fatalf("pgpgin/pgpgout = %d/%d", snap.GetPgpgin(), snap.GetPgpgout())
	}
	if snap.GetPgmajfault() != 55 || snap.GetOomKill() != 2 {
		t.Fatalf("pgmajfault/oom_kill = %d/%d", snap.GetPgmajfault(), snap.GetOomKill())
	}
	if snap.GetCompactStall() != 7 || snap.GetThpFaultAlloc() != 9 {
		t.Fatalf("compact_stall/thp_fault_alloc = %d/%d",
			snap.GetCompactStall(), snap.GetThpFaultAlloc())
	}
}

const diskstatsFixture = `   8       0 sda 120 10 5000 300 80 20 4000 500 0 700 800
   8       1 sda1 60 5 2500 150 40 10 2000 250 0 350 400
`

func TestDiskStatsKeyedByMajorMinor(t *testing.T) {
	path := writeFixture(t, "diskstats", diskstatsFixture)
	d, err := NewDiskStats(path, testLogger())
	if err != nil {
		t.Fatalf("NewDiskStats: %v", err)
	}
	defer d.EventSource().Finalize()

	if !d.updateStats() {
		t.Fatal("updateStats failed")
	}
	snap := d.snapshot()
	if len(snap.GetDisk()) != 2 {
		t.Fatalf("disk count = %d, want 2", len(snap.GetDisk()))
	}
	sda := snap.GetDisk()[0]
	if sda.GetMajor() != 8 || sda.GetMinor() != 0 || sda.GetName() != "sda" {
		t.Fatalf("first entry = %d:%d %q", sda.GetMajor(), sda.GetMinor(), sda.GetName())
	}
	if sda.GetReadsCompleted() != 120 || sda.GetReadsSpentMs() != 300 {
		t.Fatalf("reads = %d spent %d ms", sda.GetReadsCompleted(), sda.GetReadsSpentMs())
	}
	if sda.GetWritesCompleted() != 80 || sda.GetIoWeightedMs() != 800 {
		t.Fatalf("writes = %d weighted %d ms", sda.GetWritesCompleted(), sda.GetIoWeightedMs())
	}

	// Same device sampled again updates in place rather than duplicating.
	if !d.updateStats() {
		t.Fatal("second updateStats failed")
	}
	if got := len(d.snapshot().GetDisk()); got != 2 {
		t.Fatalf("disk count after resample = %d, want 2", got)
	}
}

const buddyinfoFixture = `Node 0, zone      DMA      1      1      1      0      2      1      1      0      1      1      3
Node 0, zone   Normal    204    189    102     77     37     20      9      3      1      1      0
`

func TestBuddyInfoKeyedByNodeAndZone(t *testing.T) {
	path := writeFixture(t, "buddyinfo", buddyinfoFixture)
	b, err := NewBuddyInfo(path, testLogger())
	if err != nil {
		t.Fatalf("NewBuddyInfo: %v", err)
	}
	defer b.EventSource().Finalize()

	if !b.updateStats() {
		t.Fatal("updateStats failed")
	}
	snap := b.snapshot()
	if len(snap.GetNode()) != 2 {
		t.Fatalf("entry count = %d, want 2", len(snap.GetNode()))
	}
	dma := snap.GetNode()[0]
	if dma.GetName() != "Node 0," || dma.GetZone() != "DMA" {
		t.Fatalf("first entry = %q zone %q", dma.GetName(), dma.GetZone())
	}
	if dma.GetData() != "1 1 1 0 2 1 1 0 1 1 3" {
		t.Fatalf("data = %q", dma.GetData())
	}
}

const psiFixture = `some avg10=1.50 avg60=0.75 avg300=0.10 total=123456
full avg10=0.50 avg60=0.25 avg300=0.05 total=65432
`

func TestPressureParsesGatedResources(t *testing.T) {
	dir := t.TempDir()
	for _, res := range []string{"cpu", "memory", "io"} {
		if err := os.WriteFile(filepath.Join(dir, res), []byte(psiFixture), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	p, err := NewPressure(dir, PressureConfig{WithCPU: true, WithIO: true}, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewPressure: %v", err)
	}
	defer p.EventSource().Finalize()

	if !p.updateStats() {
		t.Fatal("updateStats failed")
	}
	snap := p.snapshot()
	if snap.GetCpuSome().GetAvg10() != 1.5 || snap.GetCpuSome().GetTotal() != 123456 {
		t.Fatalf("cpu some = %+v", snap.GetCpuSome())
	}
	if snap.GetCpuFull().GetAvg300() != 0.05 {
		t.Fatalf("cpu full avg300 = %v", snap.GetCpuFull().GetAvg300())
	}
	if snap.GetIoSome() == nil {
		t.Fatal("io series missing despite WithIO")
	}
	if snap.GetMemSome() != nil {
		t.Fatal("memory series present despite WithMemory=false")
	}
}

const wirelessFixture = `Inter-| sta-|   Quality        |   Discarded packets               | Missed | WE
 face | tus | link level noise |  nwid  crypt   frag  retry   misc | beacon | 22
 wlan0: 0000   54.  -56.  -256        0      1      2      3      4        5
`

func TestWirelessStripsTrailingDots(t *testing.T) {
	path := writeFixture(t, "wireless", wirelessFixture)
	w, err := NewWireless(path, testLogger())
	if err != nil {
		t.Fatalf("NewWireless: %v", err)
	}
	defer w.EventSource().Finalize()

	if !w.updateStats() {
		t.Fatal("updateStats failed")
	}
	snap := w.snapshot()
	if len(snap.GetIfw()) != 1 {
		t.Fatalf("interface count = %d, want 1", len(snap.GetIfw()))
	}
	wlan := snap.GetIfw()[0]
	if wlan.GetName() != "wlan0" {
		t.Fatalf("name = %q, want wlan0", wlan.GetName())
	}
	if wlan.GetQualityLink() != 54 || wlan.GetQualityLevel() != -56 || wlan.GetQualityNoise() != -256 {
		t.Fatalf("quality = %d/%d/%d", wlan.GetQualityLink(), wlan.GetQualityLevel(), wlan.GetQualityNoise())
	}
	if wlan.GetDiscardedCrypt() != 1 || wlan.GetMissedBeacon() != 5 {
		t.Fatalf("discarded crypt = %d missed beacon = %d",
			wlan.GetDiscardedCrypt(), wlan.GetMissedBeacon())
	}
}
