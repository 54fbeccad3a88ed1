package reactor

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Timer is a pollable backed by a Linux timerfd. It fires fn every period
// on the loop goroutine; no goroutine is spawned per timer. fn returning
// false removes and finalizes the timer, which makes one-shot timers a
// handler decision rather than a separate type.
type Timer struct {
	fd       int
	priority int
	fn       func() bool
}

// NewTimer creates and arms a repeating timer with the given period and
// priority. The caller must register it with a Loop via Loop.Add.
func NewTimer(period time.Duration, priority int, fn func() bool) (*Timer, error) {
	fd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, unix.TFD_CLOEXEC|unix.TFD_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("reactor: timerfd_create: %w", err)
	}
	spec := durationToItimerspec(period)
	if err := unix.TimerfdSettime(fd, 0, &spec, nil); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("reactor: timerfd_settime: %w", err)
	}
	return &Timer{fd: fd, priority: priority, fn: fn}, nil
}

func durationToItimerspec(period time.Duration) unix.ItimerSpec {
	sec := int64(period / time.Second)
	nsec := int64(period % time.Second)
	ts := unix.Timespec{Sec: sec, Nsec: nsec}
	return unix.ItimerSpec{Interval: ts, Value: ts}
}

func (t *Timer) FD() int       { return t.fd }
func (t *Timer) Priority() int { return t.priority }

// OnReadable drains the expiration counter and invokes fn once per wake
// regardless of how many periods elapsed (a stalled loop coalesces missed
// ticks rather than bursting fn calls).
func (t *Timer) OnReadable() bool {
	var buf [8]byte
	_, err := unix.Read(t.fd, buf[:])
	if err != nil && err != unix.EAGAIN {
		return false
	}
	return t.fn()
}

func (t *Timer) Finalize() {
	_ = unix.Close(t.fd)
}

// Rearm changes the timer's period, useful when intervals are reloaded.
func (t *Timer) Rearm(period time.Duration) error {
	spec := durationToItimerspec(period)
	return unix.TimerfdSettime(t.fd, 0, &spec, nil)
}
