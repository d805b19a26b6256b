package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spriteviewer/catalog"
	"github.com/milk9111/spriteviewer/config"
	"github.com/milk9111/spriteviewer/data"
	"github.com/milk9111/spriteviewer/scene"
)

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file (optional)")
	dataDir := flag.String("data", "", "sprite type directory (overrides config)")
	listFile := flag.String("list", "", "sprite type list document inside the data directory (overrides config)")
	watch := flag.Bool("watch", false, "reload sprite types when their files change")
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
	if *watch {
		cfg.Data.Watch = true
	}
	if *speed > 0 {
		cfg.Playback.Speed = *speed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	fsys, listPath, onDisk := spriteTypesFS(cfg)
	load := func() (*catalog.Catalog, error) { return catalog.Load(fsys, listPath) }

	sc := scene.New(scene.Options{
		SpawnX:    cfg.Sprite.X,
		SpawnY:    cfg.Sprite.Y,
		VelocityX: cfg.Sprite.VelocityX,
		VelocityY: cfg.Sprite.VelocityY,
		SpeedStep: cfg.Playback.SpeedStep,
		MinSpeed:  cfg.Playback.MinSpeed,
		MaxSpeed:  cfg.Playback.MaxSpeed,
	})
	if err := sc.SetSpeedScale(cfg.Playback.Speed); err != nil {
		log.Fatal(err)
	}

	v, err := newViewer(sc, cfg.Playback.Autoplay, load)
	if err != nil {
		log.Fatal(err)
	}
	v.root = watchRoot(cfg)
	log.Printf("loaded %d sprite types", v.catalog.Len())

	var w *catalog.Watcher
	if cfg.Data.Watch && onDisk {
		w, err = catalog.NewWatcher(catalog.WatchDirs(watchRoot(cfg), v.catalog)...)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
			w = nil
		} else {
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg, v, sc, w)
	if *click {
		game.click = newClickPlayer()
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// spriteTypesFS picks the data directory on disk, falling back to the
// embedded samples when it does not exist.
func spriteTypesFS(cfg config.Config) (fs.FS, string, bool) {
	if info, err := os.Stat(cfg.Data.Dir); err == nil && info.IsDir() {
		return os.DirFS(cfg.Data.Dir), cfg.Data.ListFile, true
	}
	log.Printf("data: %s not found, using embedded sprite types", cfg.Data.Dir)
	return data.SpriteTypes(), data.ListFile, false
}

// watchRoot is the directory holding the list document and the type
// directories.
func watchRoot(cfg config.Config) string {
	return filepath.Join(cfg.Data.Dir, filepath.Dir(cfg.Data.ListFile))
}
