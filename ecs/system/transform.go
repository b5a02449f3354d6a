package system

import (
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

// TransformSyncSystem copies simulation poses into render transforms.
type TransformSyncSystem struct{}

func NewTransformSyncSystem() *TransformSyncSystem {
	return &TransformSyncSystem{}
}

func (s *TransformSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Actor, t *component.Transform) {
		t.X, t.Y = a.Position.X, a.Position.Y
		t.Rotation = a.Rotation
		t.ScaleX, t.ScaleY = a.Scale, a.Scale
	})

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Platform, t *component.Transform) {
		t.X, t.Y = p.Center.X, p.Center.Y
		t.Rotation = p.Rotation
		t.ScaleX, t.ScaleY = 1, 1
	})
}
