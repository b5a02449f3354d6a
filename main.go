package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs/component"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name or 1-based index from levels.yaml")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	enforce := flag.Bool("enforce-transitions", false, "fail fast on actor state transitions the table does not allow")
	watch := flag.Bool("watch", true, "hot reload prefabs edited on disk")
	flag.Parse()

	log := common.SetupLogger(*logLevel)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("shapehopper")
	ebiten.SetTPS(common.TPS)

	opts := Options{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
	}
	// only override the prefab when the flag was given
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "enforce-transitions" {
			return
		}
		policy := component.TransitionAdvisory
		if *enforce {
			policy = component.TransitionEnforced
		}
		opts.Transitions = &policy
	})

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
