// Package scheduler drives the registered data sources at three cadences.
// Each lane is a timerfd on the reactor; a tick only invokes Update, which
// enqueues work on the source's own queue and returns, so ticks never
// block on sampling.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anpopa/taskmonitor/internal/datasource"
	"github.com/anpopa/taskmonitor/internal/reactor"
)

// Intervals carries the three lane periods, already resolved against
// config minimums and the profile/production mode switch.
type Intervals struct {
	Fast time.Duration
	Pace time.Duration
	Slow time.Duration
}

// Scheduler owns the three lane timers and the source registrations.
// Sources register once at startup; the scheduler holds them only for
// Update dispatch and never manages their lifetime.
type Scheduler struct {
	logger  *slog.Logger
	sources []datasource.Source
	timers  []*reactor.Timer
}

func New(intervals Intervals, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{logger: logger}

	lanes := []struct {
		lane   datasource.UpdateLane
		period time.Duration
	}{
		{datasource.Fast, intervals.Fast},
		{datasource.Pace, intervals.Pace},
		{datasource.Slow, intervals.Slow},
	}
	for _, l := range lanes {
		lane := l.lane
		timer, err := reactor.NewTimer(l.period, 0, func() bool {
			s.tick(lane)
			return true
		})
		if err != nil {
			for _, t := range s.timers {
				t.Finalize()
			}
			return nil, fmt.Errorf("scheduler: %s lane timer: %w", lane, err)
		}
		s.timers = append(s.timers, timer)
		logger.Info("update lane enabled",
			slog.String("lane", lane.String()), slog.Duration("interval", l.period))
	}
	return s, nil
}

// RegisterSource adds src to every lane's dispatch list. Not safe for use
// once the reactor is running; registration is a startup concern.
func (s *Scheduler) RegisterSource(src datasource.Source) {
	s.sources = append(s.sources, src)
}

// Timers exposes the lane timers for loop registration.
func (s *Scheduler) Timers() []reactor.Pollable {
	out := make([]reactor.Pollable, len(s.timers))
	for i, t := range s.timers {
		out[i] = t
	}
	return out
}

func (s *Scheduler) tick(lane datasource.UpdateLane) {
	for _, src := range s.sources {
		if !src.Update(lane) {
			s.logger.Warn("source update failed",
				slog.String("source", src.Name()), slog.String("lane", lane.String()))
		}
	}
}
