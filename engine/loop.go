// Package engine drives the simulation with a fixed-timestep accumulator.
package engine

import (
	"context"
	"time"

	cfg "github.com/automoto/runaway-hotdog/config"
)

// Loop turns variable frame times into a whole number of fixed ticks.
type Loop struct {
	tick   func(dt float64)
	render func()

	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
	ticks    uint64
}

// NewLoop creates a loop stepping at config.Loop.TickRate. render may be nil.
func NewLoop(tick func(dt float64), render func()) *Loop {
	return &Loop{
		tick:     tick,
		render:   render,
		step:     time.Second / time.Duration(cfg.Loop.TickRate),
		maxFrame: cfg.Loop.MaxFrame,
	}
}

// Advance feeds one elapsed-time sample into the loop. The sample is capped
// so a long stall cannot trigger a burst of catch-up ticks. It runs every
// tick that is due, renders once, and returns the number of ticks run.
func (l *Loop) Advance(elapsed time.Duration) int {
	if elapsed > l.maxFrame {
		elapsed = l.maxFrame
	}
	if elapsed > 0 {
		l.acc += elapsed
	}

	dt := l.step.Seconds()
	n := 0
	for l.acc >= l.step {
		l.tick(dt)
		l.acc -= l.step
		n++
	}
	l.ticks += uint64(n)

	if l.render != nil {
		l.render()
	}
	return n
}

// Ticks is the total number of ticks run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Reset drops any accumulated time, e.g. after a pause.
func (l *Loop) Reset() {
	l.acc = 0
}

// Run calls Advance with the measured time between frames until ctx is
// done. Frontends without their own frame callback use it.
func (l *Loop) Run(ctx context.Context, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Advance(now.Sub(last))
			last = now
		}
	}
}
