// Command termview plays one sprite type's animations in a terminal.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/spriteviewer/anim"
	"github.com/milk9111/spriteviewer/catalog"
	"github.com/milk9111/spriteviewer/config"
	"github.com/milk9111/spriteviewer/data"
	"github.com/milk9111/spriteviewer/scene"
)

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file (optional)")
	dataDir := flag.String("data", "", "sprite type directory (overrides config)")
	listFile := flag.String("list", "", "sprite type list document inside the data directory (overrides config)")
	typeName := flag.String("type", "", "sprite type to play (default: first in the list)")
	stateName := flag.String("state", "", "animation state to play (default: first of the type)")
	speed := flag.Float64("speed", 0, "initial playback speed scale (overrides config)")
	click := flag.Bool("click", false, "play a click on every pose change")
	flag.Parse()

	cfg, err := config.Load(*configPath, true)
	if err != nil {
		log.Fatal(err)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if *listFile != "" {
		cfg.Data.ListFile = *listFile
	}
	if *speed > 0 {
		cfg.Playback.Speed = *speed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	fsys, list := spriteTypesFS(cfg)
	c, err := catalog.Load(fsys, list)
	if err != nil {
		log.Fatal(err)
	}
	kind, state, err := pick(c, *typeName, *stateName)
	if err != nil {
		log.Fatal(err)
	}

	sc := scene.New(scene.Options{
		SpeedStep: cfg.Playback.SpeedStep,
		MinSpeed:  cfg.Playback.MinSpeed,
		MaxSpeed:  cfg.Playback.MaxSpeed,
	})
	if err := sc.SetSpeedScale(cfg.Playback.Speed); err != nil {
		log.Fatal(err)
	}
	if err := sc.SelectAnimationState(kind, state); err != nil {
		log.Fatal(err)
	}

	var clk *clicker
	if *click {
		clk, err = newClicker()
		if err != nil {
			// Non-fatal, the animation runs silently.
			log.Printf("audio: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	bg, _ := colorful.MakeColor(cfg.Background.Color)
	view := &termView{
		screen: screen,
		scene:  sc,
		kind:   kind,
		state:  state,
		click:  clk,
		bg:     bg,
	}
	view.run()

	clk.close()
	screen.Fini()
}

// pick resolves the requested type and state, defaulting to the first of
// each in authored order.
func pick(c *catalog.Catalog, typeName, state string) (*anim.SpriteType, string, error) {
	names := c.Names()
	if typeName == "" {
		if len(names) == 0 {
			return nil, "", fmt.Errorf("termview: no sprite types loaded")
		}
		typeName = names[0]
	}
	kind, ok := c.Type(typeName)
	if !ok {
		return nil, "", fmt.Errorf("termview: unknown sprite type %q", typeName)
	}
	if state == "" {
		states := kind.StateNames()
		if len(states) == 0 {
			return nil, "", fmt.Errorf("termview: %s has no animation states", typeName)
		}
		state = states[0]
	}
	if _, ok := kind.State(state); !ok {
		return nil, "", fmt.Errorf("termview: %s has no state %q: %w", typeName, state, anim.ErrUnknownState)
	}
	return kind, state, nil
}

func spriteTypesFS(cfg config.Config) (fs.FS, string) {
	if info, err := os.Stat(cfg.Data.Dir); err == nil && info.IsDir() {
		return os.DirFS(cfg.Data.Dir), cfg.Data.ListFile
	}
	return data.SpriteTypes(), data.ListFile
}
