package scene

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidSpeed is returned for speed scales that are not finite and
// strictly positive.
var ErrInvalidSpeed = errors.New("speed scale must be positive")

// Clock turns wall-clock deltas into scaled, pausable animation time.
// It is not safe for concurrent use; Scene serializes access to it.
type Clock struct {
	time    TimeProvider
	running bool
	speed   float64
	last    time.Time
}

// NewClock returns a stopped clock at speed 1 reading from tp.
func NewClock(tp TimeProvider) *Clock {
	if tp == nil {
		tp = SystemTime{}
	}
	return &Clock{time: tp, speed: 1}
}

// Start begins counting from now. Calling it on a running clock does nothing,
// so elapsed time is never counted twice.
func (c *Clock) Start() {
	c.Resume()
}

// Pause stops time from elapsing. Cursors freeze because no ticks reach them.
func (c *Clock) Pause() {
	c.running = false
}

// Resume restarts a paused clock, re-anchored at now so the paused gap is
// dropped instead of replayed.
func (c *Clock) Resume() {
	if c.running {
		return
	}
	c.running = true
	c.last = c.time.Now()
}

func (c *Clock) Running() bool { return c.running }

// SetSpeedScale replaces the multiplier applied to elapsed time. It takes
// effect on the next tick; the old value stays if factor is rejected.
func (c *Clock) SetSpeedScale(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return fmt.Errorf("scene: speed %v: %w", factor, ErrInvalidSpeed)
	}
	c.speed = factor
	return nil
}

func (c *Clock) SpeedScale() float64 { return c.speed }

// Now reads the clock's time provider.
func (c *Clock) Now() time.Time { return c.time.Now() }

// Tick returns the scaled milliseconds elapsed since the previous tick (or
// since Start/Resume). ok is false while paused. A time source that steps
// backwards yields zero elapsed time.
func (c *Clock) Tick(now time.Time) (scaledMs float64, ok bool) {
	if !c.running {
		return 0, false
	}
	raw := now.Sub(c.last)
	c.last = now
	if raw <= 0 {
		return 0, true
	}
	return float64(raw) / float64(time.Millisecond) * c.speed, true
}
