package system

import (
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

// GoalSystem reports the first actor that stands on the level goal. It runs
// after the controller so it sees this tick's landing, and before the event
// system that turns the report into a level change.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	goalEnt, ok := w.First(component.GoalComponent.Kind())
	if !ok {
		return
	}
	goal, ok := ecs.Get(w, goalEnt, component.GoalComponent.Kind())
	if !ok || goal.Reached {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		if goal.Reached || !standing(a) || !goal.Contains(a.Position) {
			return
		}
		goal.Reached = true
		w.Events().Push(ecs.Event{Entity: e, Type: ActorEventType, Data: component.ActorEvent{Kind: component.EventGoalReached}})
	})
}

// standing is true for a live actor on a platform.
func standing(a *component.Actor) bool {
	s := a.Control.State
	if s.Airborne() || s.Has(component.StateDead|component.StateDeactivated) {
		return false
	}
	return a.CurrentPlatform() != nil
}
