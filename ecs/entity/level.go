package entity

import (
	"fmt"

	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/milk9111/shapehopper/levels"
)

// LoadLevelToWorld creates one entity per platform of the layout and returns
// them in layout order. The goal, if any, gets its own entity.
func LoadLevelToWorld(w *ecs.World, layout levels.Layout) ([]ecs.Entity, error) {
	entities := make([]ecs.Entity, 0, len(layout.Platforms))
	for i := range layout.Platforms {
		p := layout.Platforms[i]
		e, err := NewPlatform(w, &p)
		if err != nil {
			return nil, fmt.Errorf("level %s: platform %d: %w", layout.Name, i, err)
		}
		entities = append(entities, e)
	}
	if layout.Goal != nil {
		goal := *layout.Goal
		if _, err := NewGoal(w, &goal); err != nil {
			return nil, fmt.Errorf("level %s: %w", layout.Name, err)
		}
	}
	return entities, nil
}

func NewGoal(w *ecs.World, g *component.Goal) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GoalComponent.Kind(), g); err != nil {
		return 0, fmt.Errorf("goal: add goal: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: g.Point.X, Y: g.Point.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("goal: add transform: %w", err)
	}
	return e, nil
}

func NewPlatform(w *ecs.World, p *component.Platform) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{}); err != nil {
		return 0, fmt.Errorf("platform: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), p); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: p.Radius}); err != nil {
		return 0, fmt.Errorf("platform: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.Center.X, Y: p.Center.Y, ScaleX: 1, ScaleY: 1, Rotation: p.Rotation}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: p.ZOrder}); err != nil {
		return 0, fmt.Errorf("platform: add render layer: %w", err)
	}
	return e, nil
}

func NewSession(w *ecs.World, layout levels.Layout) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{Level: layout.Name, Seed: layout.Seed, HasGoal: layout.Goal != nil}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}
	return e, nil
}
