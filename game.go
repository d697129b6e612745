package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shapeshift/assets"
	"github.com/milk9111/shapeshift/common"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
	"github.com/milk9111/shapeshift/ecs/entity"
	"github.com/milk9111/shapeshift/ecs/system"
	"github.com/milk9111/shapeshift/levels"
	"github.com/milk9111/shapeshift/prefabs"
	"github.com/milk9111/shapeshift/save"
)

type Options struct {
	Level       string
	Debug       bool
	Watch       bool
	TPS         int
	RestoreForm bool
	Store       save.Store
	Progress    save.Progress
}

type Game struct {
	world     *ecs.World
	input     *system.InputSystem
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	loader    *assets.Loader
	watcher   *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(opts Options) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	catalystSpec, err := prefabs.LoadCatalystTable()
	if err != nil {
		return nil, err
	}
	layoutSpec, err := prefabs.LoadCollectibleLayout()
	if err != nil {
		return nil, err
	}
	lvl, err := levels.LoadEmbedded(opts.Level)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	w.Delta = common.TickDuration(opts.TPS)

	physics := system.NewPhysicsSystem()
	w.SetPhysicsWorld(physics)

	loader := assets.NewLoader(assets.FS())
	table, err := entity.CatalystTable(catalystSpec)
	if err != nil {
		return nil, err
	}
	w.Catalysts = table
	registerSheets(w, loader)
	if err := registerTextures(w, loader, layoutSpec); err != nil {
		return nil, err
	}

	log.Printf("[assets] queued %d sheets, %d textures", w.Sheets.Len(), w.Textures.Len())

	entity.LoadLevelToWorld(w, lvl)

	layout := lvl.Collectibles
	if len(layout) == 0 {
		layout, err = entity.LayoutFromSpec(layoutSpec)
		if err != nil {
			return nil, err
		}
	}
	spawned := entity.SpawnCollectibles(w, layout, entity.CollectibleStyleFromSpec(layoutSpec))

	spawnX, spawnY := float64(common.BaseWidth)/2, float64(common.BaseHeight)/2
	if lvl.HasSpawn {
		spawnX, spawnY = lvl.Spawn.X, lvl.Spawn.Y
	}
	player, err := entity.NewPlayerAt(w, playerSpec, loader.Load(playerSpec.Sheet.Image), spawnX, spawnY)
	if err != nil {
		return nil, err
	}
	if opts.RestoreForm {
		restoreForm(w, player, opts.Progress)
	}

	log.Printf("[game] loaded %s: %d platforms, %d collectibles", lvl.Name, len(lvl.Platforms), spawned)

	g := &Game{
		world: w,
		input: system.NewInputSystem(nil),
		scheduler: ecs.NewScheduler(
			system.NewPlayerControllerSystem(),
			system.NewAnimationSystem(),
			physics,
			system.NewPickupCollectSystem(),
			system.NewTransformationSystem(),
			system.NewPersistenceSystem(opts.Store, opts.Progress),
			system.NewPickupHoverSystem(),
		),
		render: system.NewRenderSystem(opts.Debug),
		loader: loader,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.DiskDir())
		if err != nil {
			log.Printf("[prefabs] watch %s: %v", prefabs.DiskDir(), err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// registerSheets queues a decode for every catalyst sheet. Keys already
// registered keep their first handle.
func registerSheets(w *ecs.World, loader *assets.Loader) {
	for _, potion := range component.Potions {
		recipe, ok := w.Catalysts.Lookup(potion)
		if !ok || recipe.Sheet == "" {
			continue
		}
		if _, exists := w.Sheets.Lookup(potion); exists {
			continue
		}
		w.Sheets.Register(potion, loader.Load(recipe.Sheet))
	}
}

func registerTextures(w *ecs.World, loader *assets.Loader, spec *prefabs.CollectibleLayoutSpec) error {
	for name, path := range spec.Textures {
		if _, err := component.ParsePotion(name); err != nil {
			return fmt.Errorf("collectibles: texture %s: %w", path, err)
		}
	}
	for _, potion := range component.Potions {
		path, ok := spec.Textures[potion.String()]
		if !ok {
			continue
		}
		w.Textures.Register(potion, loader.Load(path))
	}
	return nil
}

func restoreForm(w *ecs.World, player *ecs.PlayerEntity, progress save.Progress) {
	if progress.LastForm == "" {
		return
	}
	potion, err := component.ParsePotion(progress.LastForm)
	if err != nil {
		log.Printf("[save] ignoring last form: %v", err)
		return
	}
	if system.ApplyTransformation(w, player, potion) {
		log.Printf("[save] restored form %s", potion)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	g.input.Update(g.world)
	if g.world.Input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("[prefabs] watch: %v", err)
		}
	default:
	}
	for _, name := range g.watcher.Poll() {
		if err := g.reloadPrefab(name); err != nil {
			log.Printf("[prefabs] reload %s: %v", name, err)
			continue
		}
		if mod, ok := prefabs.ModTime(name); ok {
			log.Printf("[prefabs] reloaded %s (modified %s)", name, mod.Format("15:04:05"))
		} else {
			log.Printf("[prefabs] reloaded %s", name)
		}
	}
}

// reloadPrefab applies a changed spec to the running game. Catalyst recipes
// take effect on the next pickup; the player's blink sequence restarts.
func (g *Game) reloadPrefab(name string) error {
	switch name {
	case prefabs.CatalystsFile:
		spec, err := prefabs.LoadCatalystTable()
		if err != nil {
			return err
		}
		table, err := entity.CatalystTable(spec)
		if err != nil {
			return err
		}
		g.world.Catalysts = table
		registerSheets(g.world, g.loader)
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return err
		}
		if player, ok := g.world.Player(); ok {
			player.Animation.Blinks = component.NewBlinkSequence(spec.Animation.BlinkSequence()...)
		}
	}
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if err := g.loader.Wait(); err != nil {
		log.Printf("[assets] %v", err)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
