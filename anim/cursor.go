package anim

import "math"

// Cursor tracks the current pose of a looping PoseSequence and the time left
// on it. The zero value is not usable; build one with NewCursor.
type Cursor struct {
	seq       *PoseSequence
	index     int
	remaining float64
}

// NewCursor returns a cursor positioned at the start of seq.
func NewCursor(seq *PoseSequence) Cursor {
	c := Cursor{}
	c.Retarget(seq)
	return c
}

// Retarget switches to seq and rewinds to its first pose. Phase is not
// carried over from the previous sequence.
func (c *Cursor) Retarget(seq *PoseSequence) {
	c.seq = seq
	c.index = 0
	c.remaining = float64(seq.At(0).DurationMs)
}

// Advance consumes deltaMs of animation time. Any time left over after the
// current pose ends is carried into the following poses, wrapping at the end
// of the sequence, so a single large delta lands on the same pose as many
// small ones. Non-positive deltas are ignored.
func (c *Cursor) Advance(deltaMs float64) {
	if !(deltaMs > 0) || math.IsInf(deltaMs, 1) {
		return
	}
	c.remaining -= deltaMs
	if c.remaining > 0 {
		return
	}

	n := c.seq.Len()
	total := float64(c.seq.TotalMs())
	for c.remaining <= 0 {
		over := -c.remaining
		// A whole loop from a pose boundary comes back to the same boundary.
		if over >= total {
			over = math.Mod(over, total)
		}
		c.index = (c.index + 1) % n
		c.remaining = float64(c.seq.At(c.index).DurationMs) - over
	}
}

func (c *Cursor) Sequence() *PoseSequence { return c.seq }

func (c *Cursor) PoseIndex() int { return c.index }

// RemainingMs is the time left before the current pose ends. Always in
// (0, current pose duration].
func (c *Cursor) RemainingMs() float64 { return c.remaining }

func (c *Cursor) Pose() Pose { return c.seq.At(c.index) }

func (c *Cursor) ImageID() int { return c.seq.At(c.index).ImageID }
