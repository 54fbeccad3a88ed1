package startupcache

import (
	"log/slog"
	"os"
	"testing"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	c, err := New(logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.EventSource().Finalize)
	return c
}

type fakeCollector struct {
	sent []*tkmpb.Data
}

func (f *fakeCollector) Name() string { return "fake" }
func (f *fakeCollector) SendData(d *tkmpb.Data) bool {
	f.sent = append(f.sent, d)
	return true
}

func TestReplayPreservesCaptureOrder(t *testing.T) {
	c := testCache(t)

	c.AddCpuData(&tkmpb.SysProcStat{})
	c.AddCpuData(&tkmpb.SysProcStat{})
	c.AddMemData(&tkmpb.SysProcMemInfo{MemTotal: 1})
	c.AddPsiData(&tkmpb.SysProcPressure{})

	sink := &fakeCollector{}
	if !c.CollectAndSend(sink) {
		t.Fatal("CollectAndSend rejected")
	}
	c.EventSource().OnReadable()

	want := []tkmpb.Data_What{
		tkmpb.Data_SysProcStat, tkmpb.Data_SysProcStat,
		tkmpb.Data_SysProcMemInfo, tkmpb.Data_SysProcPressure,
	}
	if len(sink.sent) != len(want) {
		t.Fatalf("sent %d records, want %d", len(sink.sent), len(want))
	}
	for i, data := range sink.sent {
		if data.GetWhat() != want[i] {
			t.Fatalf("record %d what = %v, want %v", i, data.GetWhat(), want[i])
		}
	}
}

func TestSamplesAreStampedAtCaptureTime(t *testing.T) {
	c := testCache(t)
	c.AddCpuData(&tkmpb.SysProcStat{})

	sink := &fakeCollector{}
	c.CollectAndSend(sink)
	c.EventSource().OnReadable()

	if len(sink.sent) != 1 {
		t.Fatalf("sent %d records, want 1", len(sink.sent))
	}
	if sink.sent[0].GetSystemTimeSec() == 0 {
		t.Fatal("capture stamp missing")
	}
}

func TestExpiryDropsDataAndIgnoresAdds(t *testing.T) {
	c := testCache(t)

	c.AddCpuData(&tkmpb.SysProcStat{})
	c.AddMemData(&tkmpb.SysProcMemInfo{})
	c.DropData()

	if !c.Expired() {
		t.Fatal("cache should be expired")
	}
	cpu, mem, psi := c.Sizes()
	if cpu+mem+psi != 0 {
		t.Fatalf("sizes = %d/%d/%d after expiry, want zeros", cpu, mem, psi)
	}

	c.AddCpuData(&tkmpb.SysProcStat{})
	if cpu, _, _ := c.Sizes(); cpu != 0 {
		t.Fatal("add after expiry must be ignored")
	}

	sink := &fakeCollector{}
	c.CollectAndSend(sink)
	c.EventSource().OnReadable()
	if len(sink.sent) != 0 {
		t.Fatal("replay after expiry must be a no-op")
	}
}

func TestSeriesAreBounded(t *testing.T) {
	c := testCache(t)
	for i := 0; i < maxSamples*2; i++ {
		c.AddCpuData(&tkmpb.SysProcStat{})
	}
	if cpu, _, _ := c.Sizes(); cpu != maxSamples {
		t.Fatalf("cpu series = %d, want bound %d", cpu, maxSamples)
	}
}

func TestDropDataIsIdempotent(t *testing.T) {
	c := testCache(t)
	c.DropData()
	c.DropData()
	if !c.Expired() {
		t.Fatal("cache should stay expired")
	}
}
