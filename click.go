package main

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const clickSampleRate = 44100

// clickPlayer plays a short tone whenever the displayed pose changes.
type clickPlayer struct {
	ctx *audio.Context
	pcm []byte

	lastPose int
	lastKey  string
}

func newClickPlayer() *clickPlayer {
	return &clickPlayer{
		ctx:      audio.NewContext(clickSampleRate),
		pcm:      sineTone(clickSampleRate, 880, 15*time.Millisecond),
		lastPose: -1,
	}
}

// observe clicks when the pose of the sprite identified by key moved on.
// Switching to another sprite resets without clicking.
func (c *clickPlayer) observe(key string, pose int) {
	if c == nil {
		return
	}
	if key != c.lastKey {
		c.lastKey, c.lastPose = key, pose
		return
	}
	if pose == c.lastPose {
		return
	}
	c.lastPose = pose
	c.ctx.NewPlayerFromBytes(c.pcm).Play()
}

// sineTone renders a 16 bit stereo little endian tone, the format
// audio.Context expects.
func sineTone(rate, freq int, d time.Duration) []byte {
	n := int(int64(rate) * int64(d) / int64(time.Second))
	buf := make([]byte, n*4)
	for i := range n {
		// Short linear fade out avoids a pop at the end.
		gain := 0.3 * float64(n-i) / float64(n)
		v := int16(gain * math.MaxInt16 * math.Sin(2*math.Pi*float64(freq)*float64(i)/float64(rate)))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
