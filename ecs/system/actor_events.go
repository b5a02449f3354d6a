package system

import (
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

const (
	saturationFlashFrames = 20
	saturationShakeFrames = 12
	saturationShakeAmount = 4.0
	launchZoomPulse       = 0.15
	fadeFrames            = 45
	respawnDelayFrames    = 30
)

// ActorEventSystem is the host side of the actor notifications: HUD, camera,
// fade and game-over bookkeeping. The core never waits on any of it.
type ActorEventSystem struct{}

func NewActorEventSystem() *ActorEventSystem {
	return &ActorEventSystem{}
}

func (s *ActorEventSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type != ActorEventType {
			continue
		}
		ae, ok := evt.Data.(component.ActorEvent)
		if !ok {
			continue
		}
		s.handle(w, evt.Entity, ae)
	}
}

func (s *ActorEventSystem) handle(w *ecs.World, e ecs.Entity, evt component.ActorEvent) {
	log := common.Logger()

	switch evt.Kind {
	case component.EventChargeProgress:
		if meter, ok := ecs.Get(w, e, component.JumpMeterComponent.Kind()); ok {
			meter.Fraction = evt.Fraction
			meter.Saturated = evt.Fraction >= 1
		}
	case component.EventChargeSaturated:
		if meter, ok := ecs.Get(w, e, component.JumpMeterComponent.Kind()); ok {
			meter.Flash = saturationFlashFrames
		}
		requestCameraShake(w, component.CameraShakeRequest{Frames: saturationShakeFrames, Intensity: saturationShakeAmount})
	case component.EventLaunched:
		resetJumpMeter(w, e)
		requestCameraShake(w, component.CameraShakeRequest{ZoomPulse: launchZoomPulse * (1 + evt.Strength)})
	case component.EventLanded:
		resetJumpMeter(w, e)
	case component.EventGameOver:
		resetJumpMeter(w, e)
		if session, ok := firstSession(w); ok {
			session.GameOver = true
		}
		log.Info().Str("entity", e.String()).Msg("actor fell")
	case component.EventFadeOut:
		if err := ecs.Add(w, e, component.FadeComponent.Kind(), &component.Fade{Frames: fadeFrames, Total: fadeFrames}); err != nil {
			panic("actor events: add fade: " + err.Error())
		}
	case component.EventDeactivated:
		if err := ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Delay: respawnDelayFrames}); err != nil {
			panic("actor events: add respawn request: " + err.Error())
		}
		log.Debug().Str("entity", e.String()).Msg("actor deactivated")
	case component.EventGoalReached:
		resetJumpMeter(w, e)
		attempts := 0
		if session, ok := firstSession(w); ok {
			if session.Beaten {
				return
			}
			session.Beaten = true
			attempts = session.Attempts + 1
		}
		req := ecs.CreateEntity(w)
		if err := ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Next: true}); err != nil {
			panic("actor events: add reload request: " + err.Error())
		}
		log.Info().Str("entity", e.String()).Int("attempts", attempts).Msg("level beaten")
	}
}

func resetJumpMeter(w *ecs.World, e ecs.Entity) {
	if meter, ok := ecs.Get(w, e, component.JumpMeterComponent.Kind()); ok {
		meter.Fraction = 0
		meter.Saturated = false
	}
}

// requestCameraShake merges req into the camera's pending request so two
// events in one tick do not cancel each other.
func requestCameraShake(w *ecs.World, req component.CameraShakeRequest) {
	camEnt, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	if pending, ok := ecs.Get(w, camEnt, component.CameraShakeRequestComponent.Kind()); ok {
		pending.Frames = max(pending.Frames, req.Frames)
		pending.Intensity = max(pending.Intensity, req.Intensity)
		pending.ZoomPulse += req.ZoomPulse
		return
	}
	if err := ecs.Add(w, camEnt, component.CameraShakeRequestComponent.Kind(), &req); err != nil {
		panic("actor events: add camera shake: " + err.Error())
	}
}

func firstSession(w *ecs.World) (*component.Session, bool) {
	e, ok := w.First(component.SessionComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.SessionComponent.Kind())
}
