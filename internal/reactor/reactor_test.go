package reactor

import (
	"sync"
	"testing"
	"time"
)

func TestWorkQueueDrainsInFIFOOrder(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	var got []int
	done := make(chan struct{})
	wq, err := NewWorkQueue[int](0, 0, func(item int) bool {
		got = append(got, item)
		if len(got) == 3 {
			close(done)
		}
		return true
	})
	if err != nil {
		t.Fatalf("NewWorkQueue: %v", err)
	}
	if err := l.Add(wq); err != nil {
		t.Fatalf("Add: %v", err)
	}

	stop := make(chan struct{})
	go l.Run(stop)
	defer close(stop)

	if err := wq.Push(1); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := wq.Push(2); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := wq.Push(3); err != nil {
		t.Fatalf("Push: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for drain, got %v", got)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got = %v, want [1 2 3]", got)
	}
}

func TestWorkQueueRejectsPushAfterClose(t *testing.T) {
	wq, err := NewWorkQueue[int](0, 0, func(int) bool { return true })
	if err != nil {
		t.Fatalf("NewWorkQueue: %v", err)
	}
	defer wq.Finalize()
	wq.Close()
	if err := wq.Push(1); err != ErrQueueClosed {
		t.Fatalf("Push after Close = %v, want ErrQueueClosed", err)
	}
}

func TestWorkQueueBoundRejectsOverflow(t *testing.T) {
	wq, err := NewWorkQueue[int](1, 0, func(int) bool { return true })
	if err != nil {
		t.Fatalf("NewWorkQueue: %v", err)
	}
	defer wq.Finalize()

	wq.mu.Lock()
	wq.items = append(wq.items, 1)
	wq.mu.Unlock()

	if err := wq.Push(2); err != ErrQueueFull {
		t.Fatalf("Push over capacity = %v, want ErrQueueFull", err)
	}
}

func TestTimerFiresRepeatedly(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	fired := make(chan struct{}, 8)
	timer, err := NewTimer(20*time.Millisecond, 0, func() bool {
		select {
		case fired <- struct{}{}:
		default:
		}
		return true
	})
	if err != nil {
		t.Fatalf("NewTimer: %v", err)
	}
	if err := l.Add(timer); err != nil {
		t.Fatalf("Add: %v", err)
	}

	stop := make(chan struct{})
	go l.Run(stop)
	defer close(stop)

	count := 0
	timeout := time.After(2 * time.Second)
	for count < 3 {
		select {
		case <-fired:
			count++
		case <-timeout:
			t.Fatalf("timer fired %d times, want at least 3", count)
		}
	}
}

func TestTimerHandlerFalseMakesOneShot(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	fired := make(chan struct{}, 8)
	timer, err := NewTimer(20*time.Millisecond, 0, func() bool {
		fired <- struct{}{}
		return false
	})
	if err != nil {
		t.Fatalf("NewTimer: %v", err)
	}
	if err := l.Add(timer); err != nil {
		t.Fatalf("Add: %v", err)
	}

	stop := make(chan struct{})
	go l.Run(stop)
	defer close(stop)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	select {
	case <-fired:
		t.Fatal("one-shot timer fired twice")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPriorityOrdersDispatchWithinOneWake(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	var order []int
	var mu sync.Mutex
	makeHandler := func(id int) func(int) bool {
		return func(int) bool {
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
			return true
		}
	}

	low, _ := NewWorkQueue[int](0, 10, makeHandler(2))
	high, _ := NewWorkQueue[int](0, 0, makeHandler(1))
	_ = l.Add(low)
	_ = l.Add(high)

	_ = low.Push(0)
	_ = high.Push(0)

	stop := make(chan struct{})
	go l.Run(stop)
	defer close(stop)

	time.Sleep(300 * time.Millisecond)
	mu.Lock()
	got := append([]int(nil), order...)
	mu.Unlock()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("dispatch order = %v, want [1 2] (priority 0 before priority 10)", got)
	}
}
