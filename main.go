package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shapeshift/config"
	"github.com/milk9111/shapeshift/prefabs"
	"github.com/milk9111/shapeshift/save"
)

const appName = "shapeshift"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	debug := flag.Bool("debug", cfg.Debug, "enable debug overlay")
	watch := flag.Bool("watch", cfg.Watch, "hot-reload prefab specs from disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", cfg.Level, "level file in levels/ (default arena.tmx)")
	flag.Parse()

	prefabs.SetDiskDir(cfg.PrefabDir)

	store, progress := openSave(cfg.Save)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(appName)

	game, err := NewGame(Options{
		Level:       *levelName,
		Debug:       *debug,
		Watch:       *watch,
		TPS:         cfg.TPS,
		RestoreForm: cfg.RestoreForm,
		Store:       store,
		Progress:    progress,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

// openSave falls back to an in-memory store when the data directory is
// unavailable.
func openSave(enabled bool) (save.Store, save.Progress) {
	var store save.Store = &save.MemoryStore{}
	if enabled {
		gs, err := save.OpenGData(appName)
		if err != nil {
			log.Printf("[save] %v; progress will not persist", err)
		} else {
			store = gs
		}
	}
	progress, err := store.Load()
	if err != nil {
		log.Printf("[save] %v; starting fresh", err)
		progress = save.Progress{Pickups: map[string]int{}}
	}
	return store, progress
}
