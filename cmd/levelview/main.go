package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/milk9111/shapehopper/ecs/entity"
	"github.com/milk9111/shapehopper/ecs/system"
	"github.com/milk9111/shapehopper/levels"
)

const (
	panSpeed = 12.0
	zoomStep = 1.1
	minZoom  = 0.1
	maxZoom  = 4.0
)

// viewer previews catalog levels with their platforms moving, no actor.
type viewer struct {
	catalog *levels.Catalog
	index   int
	seed    *uint64

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	camera    ecs.Entity

	paused bool
	debug  bool
}

func (v *viewer) load() error {
	entry := v.catalog.Levels[v.index]
	if v.seed != nil {
		entry.Seed = *v.seed
	}
	layout := levels.Generate(entry)

	w := ecs.NewWorld()
	cam, err := entity.NewCamera(w)
	if err != nil {
		return err
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok {
		c.TargetName = ""
		c.BaseZoom = 0.5
	}
	if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		t.X = layout.Spawn.X - common.BaseWidth
		t.Y = layout.Spawn.Y - common.BaseHeight
	}
	if _, err := entity.LoadLevelToWorld(w, layout); err != nil {
		return err
	}
	if _, err := entity.NewSession(w, layout); err != nil {
		return err
	}

	v.world = w
	v.camera = cam
	v.physics.Reset()
	v.scheduler = ecs.NewScheduler(
		v.physics,
		system.NewTransformSyncSystem(),
		system.NewCameraSystem(),
	)

	common.Logger().Info().
		Str("level", layout.Name).
		Uint64("seed", layout.Seed).
		Int("platforms", len(layout.Platforms)).
		Msg("previewing level")
	return nil
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.index = (v.index + 1) % len(v.catalog.Levels)
		return v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		v.debug = !v.debug
	}

	cam, _ := ecs.Get(v.world, v.camera, component.CameraComponent.Kind())
	t, _ := ecs.Get(v.world, v.camera, component.TransformComponent.Kind())
	if cam != nil && t != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
			cam.BaseZoom = common.Clamp(cam.BaseZoom*zoomStep, minZoom, maxZoom)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
			cam.BaseZoom = common.Clamp(cam.BaseZoom/zoomStep, minZoom, maxZoom)
		}
		step := panSpeed / cam.Zoom
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			t.X -= step
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			t.X += step
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			t.Y -= step
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			t.Y += step
		}
	}

	if !v.paused {
		v.scheduler.Update(v.world)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.render.Draw(v.world, screen)
	if v.debug {
		system.DrawPhysicsDebug(v.physics.Space(), v.world, screen)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d/%d] tab: next  space: pause  +/-: zoom  F1: colliders", v.index+1, len(v.catalog.Levels)), 10, common.BaseHeight-20)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func main() {
	levelName := flag.String("level", "", "level name or 1-based index from levels.yaml")
	seed := flag.Uint64("seed", 0, "override the level seed")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	log := common.SetupLogger(*logLevel)

	catalog, err := levels.LoadCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}
	entry, err := catalog.Find(*levelName)
	if err != nil {
		log.Fatal().Err(err).Msg("find level")
	}

	v := &viewer{catalog: catalog, physics: system.NewPhysicsSystem(), render: system.NewRenderSystem()}
	for i, e := range catalog.Levels {
		if e.Name == entry.Name {
			v.index = i
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			v.seed = seed
		}
	})
	if err := v.load(); err != nil {
		log.Fatal().Err(err).Msg("load level")
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("shapehopper level preview")
	ebiten.SetTPS(common.TPS)
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal().Err(err).Msg("run viewer")
	}
}
