// Package loop drives a registry.Game at a fixed tick rate outside Bubble Tea:
// headless replays and plain terminal playback use it.
package loop

import (
	"context"
	"time"
)

// DefaultTickRate is used when no tick rate is configured.
const DefaultTickRate = 60

// Period returns the duration of one tick at tickRate ticks per second.
func Period(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// Clock is the time source of a Scheduler.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Scheduler paces a loop to fixed ticks. Ticks are deadlines on a fixed grid,
// so a slow frame is followed by a short wait rather than drifting.
type Scheduler struct {
	clock  Clock
	period time.Duration
	next   time.Time
	// maxLag bounds how far behind the grid may fall before it is re-anchored.
	maxLag time.Duration
}

// NewScheduler creates a scheduler whose first tick is due immediately.
func NewScheduler(clock Clock, tickRate int) *Scheduler {
	p := Period(tickRate)
	return &Scheduler{
		clock:  clock,
		period: p,
		next:   clock.Now(),
		maxLag: 5 * p,
	}
}

// Period returns the tick period.
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// Wait blocks until the next tick is due, then schedules the one after it.
func (s *Scheduler) Wait(ctx context.Context) error {
	now := s.clock.Now()
	if wait := s.next.Sub(now); wait > 0 {
		if err := s.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	} else if -wait > s.maxLag {
		// Too far behind: restart the grid instead of bursting
		s.next = now
	}
	s.next = s.next.Add(s.period)
	return ctx.Err()
}
