package scene

import (
	"errors"
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualTime(t *testing.T) {
	mt := NewManualTime(epoch)
	if !mt.Now().Equal(epoch) {
		t.Fatalf("expected %v, got %v", epoch, mt.Now())
	}
	mt.Advance(1500 * time.Millisecond)
	if got := mt.Now().Sub(epoch); got != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s after Advance, got %v", got)
	}
	later := epoch.Add(time.Hour)
	mt.Set(later)
	if !mt.Now().Equal(later) {
		t.Fatalf("expected %v after Set, got %v", later, mt.Now())
	}
}

func TestClockTickWhileStopped(t *testing.T) {
	mt := NewManualTime(epoch)
	c := NewClock(mt)
	mt.Advance(time.Second)
	if d, ok := c.Tick(mt.Now()); ok || d != 0 {
		t.Fatalf("stopped clock ticked: %v %v", d, ok)
	}
}

func TestClockStartIsIdempotent(t *testing.T) {
	mt := NewManualTime(epoch)
	c := NewClock(mt)
	c.Start()
	mt.Advance(100 * time.Millisecond)
	c.Start()
	mt.Advance(50 * time.Millisecond)

	d, ok := c.Tick(mt.Now())
	if !ok || d != 150 {
		t.Fatalf("expected 150ms since first Start, got %v ok=%v", d, ok)
	}
}

func TestClockPauseResume(t *testing.T) {
	mt := NewManualTime(epoch)
	c := NewClock(mt)
	c.Start()

	mt.Advance(40 * time.Millisecond)
	if d, _ := c.Tick(mt.Now()); d != 40 {
		t.Fatalf("expected 40ms, got %v", d)
	}

	c.Pause()
	for i := 0; i < 5; i++ {
		mt.Advance(time.Hour)
		if d, ok := c.Tick(mt.Now()); ok || d != 0 {
			t.Fatalf("paused tick %d returned %v ok=%v", i, d, ok)
		}
	}

	c.Resume()
	mt.Advance(10 * time.Millisecond)
	if d, ok := c.Tick(mt.Now()); !ok || d != 10 {
		t.Fatalf("expected only 10ms after resume, got %v ok=%v", d, ok)
	}

	// Resume on a running clock must not drop time that is already elapsing.
	mt.Advance(25 * time.Millisecond)
	c.Resume()
	if d, _ := c.Tick(mt.Now()); d != 25 {
		t.Fatalf("expected 25ms across redundant Resume, got %v", d)
	}
}

func TestClockSetSpeedScale(t *testing.T) {
	cases := []struct {
		name   string
		factor float64
		valid  bool
	}{
		{"double", 2, true},
		{"tiny", 0.001, true},
		{"zero", 0, false},
		{"negative", -1, false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clk := NewClock(NewManualTime(epoch))
			if err := clk.SetSpeedScale(1.5); err != nil {
				t.Fatalf("SetSpeedScale(1.5): %v", err)
			}
			err := clk.SetSpeedScale(c.factor)
			if c.valid {
				if err != nil || clk.SpeedScale() != c.factor {
					t.Fatalf("expected speed %v, got %v err=%v", c.factor, clk.SpeedScale(), err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidSpeed) {
				t.Fatalf("expected ErrInvalidSpeed, got %v", err)
			}
			if clk.SpeedScale() != 1.5 {
				t.Fatalf("rejected speed replaced previous value: %v", clk.SpeedScale())
			}
		})
	}
}

func TestClockSpeedScaleApplies(t *testing.T) {
	mt := NewManualTime(epoch)
	c := NewClock(mt)
	c.Start()

	mt.Advance(100 * time.Millisecond)
	if err := c.SetSpeedScale(3); err != nil {
		t.Fatalf("SetSpeedScale: %v", err)
	}
	// The new scale applies to the whole interval since the last tick.
	if d, _ := c.Tick(mt.Now()); d != 300 {
		t.Fatalf("expected 300 scaled ms, got %v", d)
	}

	if err := c.SetSpeedScale(0.5); err != nil {
		t.Fatalf("SetSpeedScale: %v", err)
	}
	mt.Advance(100 * time.Millisecond)
	if d, _ := c.Tick(mt.Now()); d != 50 {
		t.Fatalf("expected 50 scaled ms, got %v", d)
	}
}

func TestClockBackwardsTime(t *testing.T) {
	mt := NewManualTime(epoch)
	c := NewClock(mt)
	c.Start()

	mt.Set(epoch.Add(-time.Second))
	if d, ok := c.Tick(mt.Now()); !ok || d != 0 {
		t.Fatalf("expected zero delta for backwards step, got %v ok=%v", d, ok)
	}
	mt.Advance(20 * time.Millisecond)
	if d, _ := c.Tick(mt.Now()); d != 20 {
		t.Fatalf("expected 20ms after re-anchoring on backwards step, got %v", d)
	}
}
