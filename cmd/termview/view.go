package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/spriteviewer/anim"
	"github.com/milk9111/spriteviewer/scene"
)

type termView struct {
	screen tcell.Screen
	scene  *scene.Scene
	kind   *anim.SpriteType
	state  string
	click  *clicker
	bg     colorful.Color

	lastPose int
	lastErr  error
}

// nextState returns the state after current in authored order, wrapping.
func nextState(states []string, current string) string {
	if len(states) == 0 {
		return current
	}
	for i, s := range states {
		if s == current {
			return states[(i+1)%len(states)]
		}
	}
	return states[0]
}

func (v *termView) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	v.lastPose = -1
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.scene.Update()
			v.draw()
		}
	}
}

func (v *termView) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			v.cycleState()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.scene.TogglePlay()
			case '+', '=':
				v.lastErr = v.scene.SpeedUp()
			case '-':
				v.lastErr = v.scene.SlowDown()
			case 'n':
				v.cycleState()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *termView) cycleState() {
	next := nextState(v.kind.StateNames(), v.state)
	playing := v.scene.Playing()
	if err := v.scene.SelectAnimationState(v.kind, next); err != nil {
		v.lastErr = err
		return
	}
	if !playing {
		v.scene.Pause()
	}
	v.state = next
	v.lastPose = -1
	v.lastErr = nil
}

func (v *termView) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	frames, err := v.scene.Frames()
	if err != nil {
		v.lastErr = err
	}
	status := fmt.Sprintf("%s %s", v.kind.Name(), v.state)
	if len(frames) > 0 {
		f := frames[0]
		if f.PoseIndex != v.lastPose {
			if v.lastPose >= 0 {
				v.click.click()
			}
			v.lastPose = f.PoseIndex
		}
		v.drawImage(f, width, height-2)
		status += fmt.Sprintf("  pose %d  image %d  %4.0fms left", f.PoseIndex, f.ImageID, f.RemainingMs)
	}
	playing := "paused"
	if v.scene.Playing() {
		playing = "playing"
	}
	status += fmt.Sprintf("  speed %.2fx  %s", v.scene.SpeedScale(), playing)
	v.drawText(0, height-2, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	help := "space pause  +/- speed  tab next state  q quit"
	if v.lastErr != nil {
		v.drawText(0, height-1, "error: "+v.lastErr.Error(), tcell.StyleDefault.Foreground(tcell.ColorRed))
	} else {
		v.drawText(0, height-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	v.screen.Show()
}

func (v *termView) drawImage(f scene.Frame, maxCols, maxRows int) {
	b := f.Image.Bounds()
	cols, rows := fitCells(b.Dx(), b.Dy(), maxCols, maxRows)
	if cols == 0 || rows == 0 {
		return
	}
	grid := sampleCells(f.Image, cols, rows, v.bg)
	offX := (maxCols - cols) / 2
	offY := (maxRows - rows) / 2
	for y, line := range grid {
		for x, c := range line {
			style := tcell.StyleDefault.Foreground(c.top).Background(c.bottom)
			v.screen.SetContent(offX+x, offY+y, halfBlock, nil, style)
		}
	}
}

func (v *termView) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
