package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/spriteviewer/catalog"
	"github.com/milk9111/spriteviewer/data"
	"github.com/milk9111/spriteviewer/scene"
)

type viewerFixture struct {
	v       *viewer
	tp      *scene.ManualTime
	sc      *scene.Scene
	loadErr error
	states  []string
	types   []string
	reloads int
}

func newFixture(t *testing.T, autoplay bool) *viewerFixture {
	t.Helper()
	f := &viewerFixture{tp: scene.NewManualTime(time.Unix(0, 0))}
	f.sc = scene.New(scene.Options{Time: f.tp, SpawnX: 300, SpawnY: 100})
	load := func() (*catalog.Catalog, error) {
		if f.loadErr != nil {
			return nil, f.loadErr
		}
		return catalog.Load(data.SpriteTypes(), data.ListFile)
	}
	v, err := newViewer(f.sc, autoplay, load)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	v.onStates = func(names []string) { f.states = names }
	v.onTypes = func(names []string) { f.types = names }
	v.onReload = func() { f.reloads++ }
	f.v = v
	return f
}

func TestViewerSelection(t *testing.T) {
	f := newFixture(t, true)

	if err := f.v.selectState("IDLE"); !errors.Is(err, errNoType) {
		t.Fatalf("expected errNoType before a type is chosen, got %v", err)
	}
	if err := f.v.selectType("nope"); err == nil {
		t.Fatalf("expected error for unknown type")
	}

	if err := f.v.selectType("box_man"); err != nil {
		t.Fatalf("selectType: %v", err)
	}
	if len(f.states) != 3 || f.states[0] != "IDLE" {
		t.Fatalf("expected box_man states, got %v", f.states)
	}
	if f.sc.Len() != 0 {
		t.Fatalf("type selection should leave the scene empty")
	}

	if err := f.v.selectState("WALKING"); err != nil {
		t.Fatalf("selectState: %v", err)
	}
	if f.sc.Len() != 1 || !f.sc.Playing() {
		t.Fatalf("expected one playing sprite")
	}
	frames, err := f.sc.Frames()
	if err != nil || len(frames) != 1 {
		t.Fatalf("Frames: %v %v", frames, err)
	}
	if frames[0].X != 300 || frames[0].Y != 100 || frames[0].ImageID != 2 {
		t.Fatalf("unexpected frame %+v", frames[0])
	}

	f.tp.Advance(130 * time.Millisecond)
	f.sc.Update()
	frames, _ = f.sc.Frames()
	if frames[0].PoseIndex != 1 || frames[0].ImageID != 3 {
		t.Fatalf("expected second walking pose, got %+v", frames[0])
	}

	if err := f.v.selectState("FLYING"); err == nil {
		t.Fatalf("expected error for unknown state")
	}
	if f.v.lastErr == nil || !strings.Contains(f.v.status(frames), "error:") {
		t.Fatalf("expected the failure in the status line")
	}

	if err := f.v.selectType("blob"); err != nil {
		t.Fatalf("selectType: %v", err)
	}
	if f.sc.Len() != 0 || f.v.state != "" || f.v.lastErr != nil {
		t.Fatalf("type change should clear sprite, state and error")
	}
}

func TestViewerWithoutAutoplay(t *testing.T) {
	f := newFixture(t, false)
	_ = f.v.selectType("blob")
	if err := f.v.selectState("BOUNCE"); err != nil {
		t.Fatalf("selectState: %v", err)
	}
	if f.sc.Playing() {
		t.Fatalf("expected a paused scene without autoplay")
	}
	f.v.play()
	if !f.sc.Playing() {
		t.Fatalf("expected play to start the scene")
	}
	f.v.toggle()
	if f.sc.Playing() {
		t.Fatalf("expected toggle to pause")
	}
}

func TestViewerSpeedCommands(t *testing.T) {
	f := newFixture(t, true)
	f.v.speedUp()
	if got := f.sc.SpeedScale(); got < 1.0999 || got > 1.1001 {
		t.Fatalf("expected 1.1x, got %v", got)
	}
	f.v.slowDown()
	f.v.slowDown()
	if got := f.sc.SpeedScale(); got >= 1 {
		t.Fatalf("expected below 1x, got %v", got)
	}
	if !strings.Contains(f.v.status(nil), "speed 0.91x") {
		t.Fatalf("unexpected status %q", f.v.status(nil))
	}
}

func TestViewerReload(t *testing.T) {
	f := newFixture(t, true)
	_ = f.v.selectType("box_man")
	_ = f.v.selectState("IDLE")
	f.v.pause()

	f.loadErr = errors.New("broken document")
	if err := f.v.reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	if f.reloads != 0 || f.v.catalog.Len() != 2 || f.sc.Len() != 1 {
		t.Fatalf("failed reload must keep the previous catalog and sprite")
	}

	f.loadErr = nil
	if err := f.v.reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if f.reloads != 1 || len(f.types) != 2 {
		t.Fatalf("expected reload hooks to fire, got reloads=%d types=%v", f.reloads, f.types)
	}
	if f.v.typeName != "box_man" || f.v.state != "IDLE" || f.sc.Len() != 1 {
		t.Fatalf("expected selection to survive reload")
	}
	if f.sc.Playing() {
		t.Fatalf("reload should keep the scene paused")
	}
	if f.v.lastErr != nil {
		t.Fatalf("successful reload should clear the error")
	}
}

func TestViewerReloadKeepsSpriteWhenOtherTypeChanged(t *testing.T) {
	f := newFixture(t, true)
	f.v.root = "data"
	_ = f.v.selectType("box_man")
	_ = f.v.selectState("IDLE")

	advance := func() {
		f.tp.Advance(450 * time.Millisecond)
		f.sc.Update()
	}
	pose := func(t *testing.T) int {
		t.Helper()
		frames, err := f.sc.Frames()
		if err != nil || len(frames) != 1 {
			t.Fatalf("Frames: %v %v", frames, err)
		}
		return frames[0].PoseIndex
	}

	advance()
	if got := pose(t); got != 1 {
		t.Fatalf("expected pose 1 after 450ms, got %d", got)
	}

	cases := []struct {
		name    string
		changed []string
		want    int
	}{
		{"other_type", []string{filepath.Join("data", "blob", "blob.yaml"), filepath.Join("data", "blob", "bounce_0.png")}, 1},
		{"list_document", []string{filepath.Join("data", "sprite_type_list.xml")}, 1},
		{"own_image", []string{filepath.Join("data", "box_man", "idle_1.png")}, 0},
		{"unknown_changes", nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if pose(t) != 1 {
				_ = f.v.selectState("IDLE")
				advance()
			}
			if err := f.v.reload(c.changed...); err != nil {
				t.Fatalf("reload: %v", err)
			}
			if got := pose(t); got != c.want {
				t.Fatalf("expected pose %d after reload, got %d", c.want, got)
			}
			if f.v.typeName != "box_man" || f.v.state != "IDLE" {
				t.Fatalf("selection lost: %s %s", f.v.typeName, f.v.state)
			}
		})
	}
}
