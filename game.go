package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/spriteviewer/catalog"
	"github.com/milk9111/spriteviewer/config"
	"github.com/milk9111/spriteviewer/render"
	"github.com/milk9111/spriteviewer/scene"
)

type Game struct {
	cfg     config.Config
	viewer  *viewer
	scene   *scene.Scene
	images  *render.Registry
	ui      *ebitenui.UI
	widgets *viewerUI

	watcher *catalog.Watcher
	dataDir string
	click   *clickPlayer

	lastFrameErr string
}

func NewGame(cfg config.Config, v *viewer, sc *scene.Scene, w *catalog.Watcher) *Game {
	g := &Game{
		cfg:     cfg,
		viewer:  v,
		scene:   sc,
		images:  render.NewRegistry(),
		watcher: w,
		dataDir: watchRoot(cfg),
	}
	g.ui, g.widgets = buildViewerUI(v)
	v.onTypes = g.widgets.setTypes
	v.onStates = g.widgets.setStates
	v.onReload = g.onReload
	return g
}

func (g *Game) onReload() {
	g.images.Reset()
	if g.watcher == nil {
		return
	}
	// New types get their own directory.
	for _, dir := range catalog.WatchDirs(g.dataDir, g.viewer.catalog) {
		if err := g.watcher.Add(dir); err != nil {
			log.Printf("watch: add %s: %v", dir, err)
		}
	}
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.viewer.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.viewer.speedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.viewer.slowDown()
	}

	g.ui.Update()
	g.scene.Update()

	g.widgets.setSpeed(g.scene.SpeedScale())
	g.widgets.setPaused(g.scene.Len() > 0 && !g.scene.Playing())
	return nil
}

// drainWatcher reloads the catalog at most once per frame however many file
// events arrived.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	var changed []string
	for {
		select {
		case name := <-g.watcher.Events:
			log.Printf("watch: %s changed", name)
			changed = append(changed, name)
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
			if len(changed) > 0 {
				_ = g.viewer.reload(changed...)
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.Color)

	frames, err := g.scene.Frames()
	if err != nil && err.Error() != g.lastFrameErr {
		log.Printf("scene: %v", err)
	}
	if err != nil {
		g.lastFrameErr = err.Error()
		g.viewer.lastErr = err
	} else {
		g.lastFrameErr = ""
	}
	render.DrawFrames(screen, g.images, frames)
	if len(frames) > 0 {
		g.click.observe(frames[0].TypeName+"/"+frames[0].State, frames[0].PoseIndex)
	}

	g.ui.Draw(screen)
	ebitenutil.DebugPrintAt(screen, g.viewer.status(frames), 190, g.cfg.Window.Height-36)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
