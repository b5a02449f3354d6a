package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/milk9111/shapehopper/ecs/entity"
	"github.com/milk9111/shapehopper/ecs/system"
	"github.com/milk9111/shapehopper/levels"
	"github.com/milk9111/shapehopper/prefabs"
)

type Options struct {
	Level       string
	Debug       bool
	Watch       bool
	Transitions *component.TransitionPolicy
}

type Game struct {
	frames int
	opts   Options

	catalog    *levels.Catalog
	levelIndex int
	layout     levels.Layout
	attempts   int
	// beaten maps a level name to the attempts it took this run.
	beaten map[string]int

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem

	paused     bool
	quit       bool
	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI

	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	catalog, err := levels.LoadCatalog()
	if err != nil {
		return nil, err
	}
	entry, err := catalog.Find(opts.Level)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:       opts,
		catalog:    catalog,
		levelIndex: catalogIndex(catalog, entry.Name),
		beaten:     make(map[string]int),
		physics:    system.NewPhysicsSystem(),
		render:     system.NewRenderSystem(),
	}
	g.pauseUI = NewPauseUI(g)
	g.gameOverUI = NewGameOverUI()

	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if opts.Watch {
		if _, err := os.Stat(prefabs.Dir); err == nil {
			watcher, err := prefabs.NewWatcher(prefabs.Dir)
			if err != nil {
				common.Logger().Warn().Err(err).Msg("prefab watcher disabled")
			} else {
				g.watcher = watcher
			}
		}
	}
	return g, nil
}

func catalogIndex(c *levels.Catalog, name string) int {
	for i, e := range c.Levels {
		if e.Name == name {
			return i
		}
	}
	return 0
}

// loadLevel builds a fresh world for the current catalog level.
func (g *Game) loadLevel() error {
	entry := g.catalog.Levels[g.levelIndex]
	g.layout = levels.Generate(entry)

	w := ecs.NewWorld()
	if _, err := entity.NewCamera(w); err != nil {
		return err
	}
	if _, err := entity.LoadLevelToWorld(w, g.layout); err != nil {
		return err
	}
	session, err := entity.NewSession(w, g.layout)
	if err != nil {
		return err
	}
	if s, ok := ecs.Get(w, session, component.SessionComponent.Kind()); ok {
		s.Attempts = g.attempts
		s.Cleared = len(g.beaten)
	}
	spawn := g.spawnActor
	if _, err := spawn(w); err != nil {
		return err
	}

	g.physics.Reset()
	g.world = w
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(nil),
		system.NewCommandSystem(),
		g.physics,
		system.NewActorControllerSystem(),
		system.NewGoalSystem(),
		system.NewActorEventSystem(),
		system.NewRespawnSystem(spawn),
		system.NewFadeSystem(),
		system.NewTransformSyncSystem(),
		system.NewCameraSystem(),
	)

	common.Logger().Info().
		Str("level", g.layout.Name).
		Uint64("seed", g.layout.Seed).
		Int("platforms", len(g.layout.Platforms)).
		Msg("level loaded")
	return nil
}

func (g *Game) spawnActor(w *ecs.World) (ecs.Entity, error) {
	return entity.NewActorAt(w, g.layout.Spawn, g.opts.Transitions)
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}

	g.drainPrefabEvents()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return g.handleReloadRequests()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.requestReload(false)
	}

	g.scheduler.Update(g.world)

	if session := g.session(); session != nil {
		g.attempts = session.Attempts
		if session.GameOver {
			g.gameOverUI.Update()
		}
	}

	return g.handleReloadRequests()
}

// requestReload queues a level rebuild for the end of the tick.
func (g *Game) requestReload(next bool) {
	e := ecs.CreateEntity(g.world)
	if err := ecs.Add(g.world, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Next: next}); err != nil {
		panic("game: add reload request: " + err.Error())
	}
}

func (g *Game) handleReloadRequests() error {
	requests := g.world.Query(component.ReloadRequestComponent.Kind())
	if len(requests) == 0 {
		return nil
	}

	if session := g.session(); session != nil && session.Beaten {
		g.beaten[session.Level] = session.Attempts + 1
		common.Logger().Info().
			Str("level", session.Level).
			Int("attempts", session.Attempts+1).
			Int("cleared", len(g.beaten)).
			Msg("level result")
	}

	next := false
	for _, e := range requests {
		if req, ok := ecs.Get(g.world, e, component.ReloadRequestComponent.Kind()); ok && req.Next {
			next = true
		}
	}
	if next {
		g.levelIndex = (g.levelIndex + 1) % len(g.catalog.Levels)
		g.attempts = 0
	} else {
		g.attempts++
	}
	g.paused = false
	if err := g.loadLevel(); err != nil {
		return fmt.Errorf("game: reload level: %w", err)
	}
	return nil
}

func (g *Game) drainPrefabEvents() {
	if g.watcher == nil {
		return
	}
	log := common.Logger()
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Warn().Err(err).Msg("prefab watcher")
			}
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(name string) {
	log := common.Logger()
	switch name {
	case "actor.yaml":
		tuning, err := prefabs.LoadActorTuning()
		if err != nil {
			log.Error().Err(err).Str("prefab", name).Msg("reload failed")
			return
		}
		n := entity.ApplyActorTuning(g.world, tuning)
		log.Info().Str("prefab", name).Int("actors", n).Msg("prefab reloaded")
	case "camera.yaml":
		g.requestReload(false)
		log.Info().Str("prefab", name).Msg("prefab reloaded, rebuilding level")
	}
}

func (g *Game) session() *component.Session {
	e, ok := g.world.First(component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(g.world, e, component.SessionComponent.Kind())
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.opts.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawActorDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 10, common.BaseHeight-20)
	}

	if session := g.session(); session != nil && session.GameOver {
		g.gameOverUI.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
