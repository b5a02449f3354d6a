package entity

import (
	"fmt"

	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/milk9111/shapehopper/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:        cameraSpec.Transform.X,
		Y:        cameraSpec.Transform.Y,
		ScaleX:   cameraSpec.Transform.ScaleX,
		ScaleY:   cameraSpec.Transform.ScaleY,
		Rotation: cameraSpec.Transform.Rotation,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	smooth := cameraSpec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	zoomDecay := cameraSpec.ZoomDecay
	if zoomDecay == 0 {
		zoomDecay = 0.08
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		TargetName:     cameraSpec.Target,
		Zoom:           zoom,
		BaseZoom:       zoom,
		ZoomDecay:      zoomDecay,
		Smoothness:     smooth,
		ScaleInfluence: cameraSpec.ScaleInfluence,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
