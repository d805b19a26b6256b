package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/spriteviewer/anim"
	"github.com/milk9111/spriteviewer/catalog"
	"github.com/milk9111/spriteviewer/scene"
)

var errNoType = errors.New("no sprite type selected")

// viewer tracks the current selection and turns UI commands into scene
// commands. It knows nothing about ebiten.
type viewer struct {
	load     func() (*catalog.Catalog, error)
	catalog  *catalog.Catalog
	scene    *scene.Scene
	autoplay bool
	// root holds the list document and one directory per type.
	root string

	typeName string
	state    string
	lastErr  error

	// Hooks for the UI; any may be nil.
	onTypes  func(names []string)
	onStates func(names []string)
	onReload func()
}

func newViewer(sc *scene.Scene, autoplay bool, load func() (*catalog.Catalog, error)) (*viewer, error) {
	c, err := load()
	if err != nil {
		return nil, err
	}
	return &viewer{load: load, catalog: c, scene: sc, autoplay: autoplay}, nil
}

func (v *viewer) typeNames() []string { return v.catalog.Names() }

func (v *viewer) currentType() (*anim.SpriteType, bool) {
	if v.typeName == "" {
		return nil, false
	}
	return v.catalog.Type(v.typeName)
}

// selectType makes name the current type, clears the scene and offers its
// states for selection.
func (v *viewer) selectType(name string) error {
	t, ok := v.catalog.Type(name)
	if !ok {
		return v.fail(fmt.Errorf("viewer: unknown sprite type %q", name))
	}
	v.typeName = name
	v.state = ""
	v.scene.SelectSpriteType(t)
	if v.onStates != nil {
		v.onStates(t.StateNames())
	}
	v.lastErr = nil
	return nil
}

// selectState spawns a sprite of the current type playing name.
func (v *viewer) selectState(name string) error {
	t, ok := v.currentType()
	if !ok {
		return v.fail(errNoType)
	}
	if err := v.scene.SelectAnimationState(t, name); err != nil {
		return v.fail(fmt.Errorf("viewer: %s: %w", t.Name(), err))
	}
	if !v.autoplay {
		v.scene.Pause()
	}
	v.state = name
	v.lastErr = nil
	return nil
}

func (v *viewer) play() { v.scene.Play() }
func (v *viewer) pause() { v.scene.Pause() }
func (v *viewer) toggle() { v.scene.TogglePlay() }

func (v *viewer) speedUp() {
	if err := v.scene.SpeedUp(); err != nil {
		v.fail(err)
	}
}

func (v *viewer) slowDown() {
	if err := v.scene.SlowDown(); err != nil {
		v.fail(err)
	}
}

// reload loads the catalog again. On failure the previous catalog stays in
// use. On success the selection is carried over when the type and state
// still exist. The sprite is only rebuilt when one of the changed files
// belongs to its type; no changed names means anything may have changed.
func (v *viewer) reload(changed ...string) error {
	c, err := v.load()
	if err != nil {
		log.Printf("viewer: reload failed, keeping previous sprite types: %v", err)
		return v.fail(err)
	}
	v.catalog = c
	v.lastErr = nil
	if v.onReload != nil {
		v.onReload()
	}
	if v.onTypes != nil {
		v.onTypes(c.Names())
	}

	if v.typeName == "" {
		return nil
	}
	t, ok := c.Type(v.typeName)
	if !ok {
		log.Printf("viewer: sprite type %s no longer exists", v.typeName)
		v.typeName, v.state = "", ""
		v.scene.Clear()
		if v.onStates != nil {
			v.onStates(nil)
		}
		return nil
	}
	if !v.touches(changed, v.typeName) {
		return nil
	}
	if v.onStates != nil {
		v.onStates(t.StateNames())
	}
	if v.state == "" {
		v.scene.SelectSpriteType(t)
		return nil
	}
	if _, ok := t.State(v.state); !ok {
		log.Printf("viewer: state %s of %s no longer exists", v.state, v.typeName)
		v.state = ""
		v.scene.SelectSpriteType(t)
		return nil
	}
	playing := v.scene.Playing()
	if err := v.scene.SelectAnimationState(t, v.state); err != nil {
		return v.fail(err)
	}
	if !playing {
		v.scene.Pause()
	}
	return nil
}

// touches reports whether any changed file lives in the directory of the
// named type.
func (v *viewer) touches(changed []string, typeName string) bool {
	if len(changed) == 0 {
		return true
	}
	dir := filepath.Clean(filepath.Join(v.root, typeName))
	for _, name := range changed {
		if filepath.Clean(filepath.Dir(name)) == dir {
			return true
		}
	}
	return false
}

func (v *viewer) fail(err error) error {
	v.lastErr = err
	return err
}

// status is the one-line summary shown under the sprite.
func (v *viewer) status(frames []scene.Frame) string {
	var b strings.Builder
	switch {
	case v.typeName == "":
		b.WriteString("select a sprite type")
	case v.state == "":
		fmt.Fprintf(&b, "%s: select an animation state", v.typeName)
	default:
		fmt.Fprintf(&b, "%s %s", v.typeName, v.state)
		if len(frames) > 0 {
			fmt.Fprintf(&b, "  pose %d (image %d)", frames[0].PoseIndex, frames[0].ImageID)
		}
	}
	playing := "paused"
	if v.scene.Playing() {
		playing = "playing"
	}
	fmt.Fprintf(&b, "  speed %.2fx  %s", v.scene.SpeedScale(), playing)
	if v.lastErr != nil {
		fmt.Fprintf(&b, "\nerror: %v", v.lastErr)
	}
	return b.String()
}
