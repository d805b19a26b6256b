package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const clickRate = beep.SampleRate(44100)

// clicker plays a short tone on every pose change.
type clicker struct {
	enabled bool
}

func newClicker() (*clicker, error) {
	if err := speaker.Init(clickRate, clickRate.N(time.Second/10)); err != nil {
		return &clicker{}, err
	}
	return &clicker{enabled: true}, nil
}

func (c *clicker) click() {
	if c == nil || !c.enabled {
		return
	}
	sine, err := generators.SineTone(clickRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(clickRate.N(15*time.Millisecond), sine))
}

func (c *clicker) close() {
	if c != nil && c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
