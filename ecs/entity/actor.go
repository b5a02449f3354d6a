package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/milk9111/shapehopper/prefabs"
)

// NewActorAt builds the player actor from actor.yaml, standing idle at pos.
// A non-nil override replaces the prefab transition policy (the command
// line flag wins over the file).
func NewActorAt(w *ecs.World, pos cp.Vector, override *component.TransitionPolicy) (ecs.Entity, error) {
	spec, err := prefabs.LoadActorSpec()
	if err != nil {
		return 0, fmt.Errorf("actor: load spec: %w", err)
	}
	tuning := spec.Tuning.Apply(component.DefaultActorTuning())
	if override != nil {
		tuning.Transitions = *override
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ActorTagComponent.Kind(), &component.ActorTag{}); err != nil {
		return 0, fmt.Errorf("actor: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), component.NewActor(pos, tuning)); err != nil {
		return 0, fmt.Errorf("actor: add actor: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("actor: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: spec.SensorRadius}); err != nil {
		return 0, fmt.Errorf("actor: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("actor: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("actor: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.JumpMeterComponent.Kind(), &component.JumpMeter{}); err != nil {
		return 0, fmt.Errorf("actor: add jump meter: %w", err)
	}

	return e, nil
}

// ApplyActorTuning pushes reloaded tuning into every live actor, keeping the
// transition policy each one was built with.
func ApplyActorTuning(w *ecs.World, tuning component.ActorTuning) int {
	n := 0
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		t := tuning
		t.Transitions = a.Tuning.Transitions
		a.SetTuning(t)
		n++
	})
	return n
}
