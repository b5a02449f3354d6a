package system

import (
	"math"

	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	frame        int
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward its target, pulls back with the target's
// altitude scale and applies pending shake requests.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cs.frame++

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if req, ok := ecs.Get(w, cs.camEntity, component.CameraShakeRequestComponent.Kind()); ok {
		cam.Zoom += req.ZoomPulse
		if req.Frames > cam.ShakeFrames {
			cam.ShakeFrames = req.Frames
		}
		cam.ShakeIntensity = math.Max(cam.ShakeIntensity, req.Intensity)
		ecs.Remove(w, cs.camEntity, component.CameraShakeRequestComponent.Kind())
	}

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
	}

	targetZoom := cam.BaseZoom
	if target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind()); ok {
		if scale := target.ScaleX; scale > 1 && cam.ScaleInfluence > 0 {
			targetZoom /= 1 + cam.ScaleInfluence*(scale-1)
		}
		cam.Zoom = common.Lerp(cam.Zoom, targetZoom, cam.ZoomDecay)

		zoom := cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		wantX := target.X - common.BaseWidth/2/zoom
		wantY := target.Y - common.BaseHeight/2/zoom
		camTransform.X = common.Lerp(camTransform.X, wantX, cam.Smoothness)
		camTransform.Y = common.Lerp(camTransform.Y, wantY, cam.Smoothness)
	} else {
		cam.Zoom = common.Lerp(cam.Zoom, targetZoom, cam.ZoomDecay)
	}

	cam.ShakeX, cam.ShakeY = 0, 0
	if cam.ShakeFrames > 0 {
		cam.ShakeFrames--
		cam.ShakeX = math.Sin(float64(cs.frame)*1.7) * cam.ShakeIntensity
		cam.ShakeY = math.Cos(float64(cs.frame)*2.3) * cam.ShakeIntensity
		if cam.ShakeFrames == 0 {
			cam.ShakeIntensity = 0
		}
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "actor" {
		if e, ok := w.First(component.ActorTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
