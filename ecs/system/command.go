package system

import (
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

const turnAxisThreshold = 0.5

// CommandInterpreter turns raw input into a command mask. It remembers the
// jump button between frames so Jump fires on the release edge only; charge
// and launch never share a tick.
type CommandInterpreter struct {
	jumpWasHeld bool
}

func (ci *CommandInterpreter) Interpret(in component.Input) component.Command {
	cmd := component.CommandNone

	if in.Forward {
		if in.Run {
			cmd |= component.CommandRun
		} else {
			cmd |= component.CommandWalkForward
		}
	}
	if in.Backward {
		cmd |= component.CommandWalkBackward
	}

	if in.TurnCW || in.Turn > turnAxisThreshold {
		cmd |= component.CommandTurnClockwise
	}
	if in.TurnCCW || in.Turn < -turnAxisThreshold {
		cmd |= component.CommandTurnCounterClockwise
	}

	switch {
	case in.JumpHeld:
		cmd |= component.CommandChargeJump
	case ci.jumpWasHeld:
		cmd |= component.CommandJump
	}
	ci.jumpWasHeld = in.JumpHeld

	return cmd
}

// Reset forgets the held jump so a respawned actor does not launch from a
// release that began in a previous life.
func (ci *CommandInterpreter) Reset() {
	ci.jumpWasHeld = false
}

// CommandSystem feeds each actor the command for this tick.
type CommandSystem struct {
	interpreters map[ecs.Entity]*CommandInterpreter
}

func NewCommandSystem() *CommandSystem {
	return &CommandSystem{interpreters: make(map[ecs.Entity]*CommandInterpreter)}
}

func (s *CommandSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for e := range s.interpreters {
		if !w.IsAlive(e) {
			delete(s.interpreters, e)
		}
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.ActorComponent.Kind(), func(e ecs.Entity, in *component.Input, a *component.Actor) {
		ci := s.interpreters[e]
		if a.Deactivated() {
			if ci != nil {
				ci.Reset()
			}
			return
		}
		if ci == nil {
			ci = &CommandInterpreter{}
			s.interpreters[e] = ci
		}
		a.SetCommand(ci.Interpret(*in))
	})
}
