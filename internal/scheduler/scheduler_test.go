package scheduler

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/anpopa/taskmonitor/internal/datasource"
)

type recordingSource struct {
	name  string
	lanes []datasource.UpdateLane
	ok    bool
}

func (r *recordingSource) Name() string { return r.name }
func (r *recordingSource) Update(lane datasource.UpdateLane) bool {
	r.lanes = append(r.lanes, lane)
	return r.ok
}
func (r *recordingSource) CollectAndSend(datasource.Collector) bool { return true }

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s, err := New(Intervals{Fast: time.Second, Pace: 2 * time.Second, Slow: 5 * time.Second}, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		for _, timer := range s.Timers() {
			timer.Finalize()
		}
	})
	return s
}

func TestTickDispatchesLaneToEverySource(t *testing.T) {
	s := testScheduler(t)
	a := &recordingSource{name: "a", ok: true}
	b := &recordingSource{name: "b", ok: true}
	s.RegisterSource(a)
	s.RegisterSource(b)

	s.tick(datasource.Fast)
	s.tick(datasource.Slow)

	want := []datasource.UpdateLane{datasource.Fast, datasource.Slow}
	for _, src := range []*recordingSource{a, b} {
		if len(src.lanes) != len(want) {
			t.Fatalf("%s saw %d ticks, want %d", src.name, len(src.lanes), len(want))
		}
		for i := range want {
			if src.lanes[i] != want[i] {
				t.Fatalf("%s lanes = %v, want %v", src.name, src.lanes, want)
			}
		}
	}
}

func TestFailingSourceDoesNotStopOthers(t *testing.T) {
	s := testScheduler(t)
	failing := &recordingSource{name: "failing", ok: false}
	healthy := &recordingSource{name: "healthy", ok: true}
	s.RegisterSource(failing)
	s.RegisterSource(healthy)

	s.tick(datasource.Pace)

	if len(healthy.lanes) != 1 {
		t.Fatal("healthy source skipped after another source failed")
	}
}

func TestThreeLaneTimers(t *testing.T) {
	s := testScheduler(t)
	if got := len(s.Timers()); got != 3 {
		t.Fatalf("timer count = %d, want 3", got)
	}
}
