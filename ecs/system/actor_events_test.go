package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventFixture struct {
	w       *ecs.World
	actor   ecs.Entity
	camera  ecs.Entity
	meter   *component.JumpMeter
	session *component.Session
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	w := ecs.NewWorld()

	cam := w.CreateEntity()
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1, BaseZoom: 1}))

	sess := w.CreateEntity()
	session := &component.Session{Level: "test"}
	require.NoError(t, ecs.Add(w, sess, component.SessionComponent.Kind(), session))

	actor := w.CreateEntity()
	meter := &component.JumpMeter{}
	require.NoError(t, ecs.Add(w, actor, component.ActorTagComponent.Kind(), &component.ActorTag{}))
	require.NoError(t, ecs.Add(w, actor, component.JumpMeterComponent.Kind(), meter))

	return &eventFixture{w: w, actor: actor, camera: cam, meter: meter, session: session}
}

func (f *eventFixture) push(evts ...component.ActorEvent) {
	for _, evt := range evts {
		f.w.Events().Push(ecs.Event{Entity: f.actor, Type: ActorEventType, Data: evt})
	}
	NewActorEventSystem().Update(f.w)
}

func TestActorEventsDriveJumpMeter(t *testing.T) {
	f := newEventFixture(t)

	f.push(component.ActorEvent{Kind: component.EventChargeProgress, Fraction: 0.5})
	assert.Equal(t, 0.5, f.meter.Fraction)
	assert.False(t, f.meter.Saturated)

	f.push(
		component.ActorEvent{Kind: component.EventChargeProgress, Fraction: 1},
		component.ActorEvent{Kind: component.EventChargeSaturated},
	)
	assert.True(t, f.meter.Saturated)
	assert.Equal(t, saturationFlashFrames, f.meter.Flash)

	shake, ok := ecs.Get(f.w, f.camera, component.CameraShakeRequestComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, saturationShakeFrames, shake.Frames)

	f.push(component.ActorEvent{Kind: component.EventLaunched, Strength: 0.8})
	assert.Equal(t, 0.0, f.meter.Fraction)
	assert.False(t, f.meter.Saturated)

	// merged into the pending request rather than replacing it
	assert.Equal(t, saturationShakeFrames, shake.Frames)
	assert.InDelta(t, launchZoomPulse*1.8, shake.ZoomPulse, 1e-12)
}

func TestActorEventsGameOverAndRespawn(t *testing.T) {
	f := newEventFixture(t)

	f.push(component.ActorEvent{Kind: component.EventGameOver})
	assert.True(t, f.session.GameOver)

	f.push(component.ActorEvent{Kind: component.EventFadeOut})
	fade, ok := ecs.Get(f.w, f.actor, component.FadeComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 0.0, fade.Alpha())

	f.push(component.ActorEvent{Kind: component.EventDeactivated})
	req, ok := ecs.Get(f.w, f.actor, component.RespawnRequestComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, respawnDelayFrames, req.Delay)
}

func TestActorEventsIgnoreForeignEvents(t *testing.T) {
	f := newEventFixture(t)
	f.w.Events().Push(ecs.Event{Entity: f.actor, Type: "other", Data: component.ActorEvent{Kind: component.EventGameOver}})
	f.w.Events().Push(ecs.Event{Entity: f.actor, Type: ActorEventType, Data: "garbage"})
	NewActorEventSystem().Update(f.w)

	assert.False(t, f.session.GameOver)
	assert.Equal(t, 0, f.w.Events().Len())
}

func TestRespawnSystemReplacesActorAfterDelay(t *testing.T) {
	f := newEventFixture(t)
	f.session.GameOver = true
	require.NoError(t, ecs.Add(f.w, f.actor, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Delay: 1}))

	spawned := 0
	var fresh ecs.Entity
	s := NewRespawnSystem(func(w *ecs.World) (ecs.Entity, error) {
		spawned++
		fresh = w.CreateEntity()
		return fresh, ecs.Add(w, fresh, component.ActorTagComponent.Kind(), &component.ActorTag{})
	})

	s.Update(f.w)
	assert.Equal(t, 0, spawned)
	assert.True(t, f.w.IsAlive(f.actor))

	s.Update(f.w)
	assert.Equal(t, 1, spawned)
	assert.False(t, f.w.IsAlive(f.actor))
	assert.True(t, f.w.IsAlive(fresh))
	assert.Equal(t, 1, f.session.Attempts)
	assert.False(t, f.session.GameOver)

	s.Update(f.w)
	assert.Equal(t, 1, spawned)
}

func TestFadeSystemCountsDown(t *testing.T) {
	f := newEventFixture(t)
	fade := &component.Fade{Frames: 2, Total: 2}
	require.NoError(t, ecs.Add(f.w, f.actor, component.FadeComponent.Kind(), fade))
	f.meter.Flash = 1

	s := NewFadeSystem()
	s.Update(f.w)
	assert.Equal(t, 0.5, fade.Alpha())
	assert.Equal(t, 0, f.meter.Flash)

	s.Update(f.w)
	s.Update(f.w)
	assert.Equal(t, 1.0, fade.Alpha())
	assert.Equal(t, 0, f.meter.Flash)
}

func reloadRequests(w *ecs.World) []*component.ReloadRequest {
	var out []*component.ReloadRequest
	for _, e := range w.Query(component.ReloadRequestComponent.Kind()) {
		if req, ok := ecs.Get(w, e, component.ReloadRequestComponent.Kind()); ok {
			out = append(out, req)
		}
	}
	return out
}

func TestActorEventsGoalQueuesNextLevel(t *testing.T) {
	f := newEventFixture(t)
	f.session.Attempts = 2
	f.meter.Fraction = 0.4

	f.push(component.ActorEvent{Kind: component.EventGoalReached})
	assert.True(t, f.session.Beaten)
	assert.Equal(t, 2, f.session.Attempts)
	assert.Equal(t, 0.0, f.meter.Fraction)

	reqs := reloadRequests(f.w)
	require.Len(t, reqs, 1)
	assert.True(t, reqs[0].Next)

	f.push(component.ActorEvent{Kind: component.EventGoalReached})
	assert.Len(t, reloadRequests(f.w), 1)
}

func TestGoalSystemReportsStandingActorOnce(t *testing.T) {
	w := ecs.NewWorld()
	goal := &component.Goal{Point: cp.Vector{X: 300}, Radius: 50}
	g := w.CreateEntity()
	require.NoError(t, ecs.Add(w, g, component.GoalComponent.Kind(), goal))

	p := newStaticPlatform(500)
	a := component.NewActor(cp.Vector{X: 100}, component.DefaultActorTuning())
	a.EnterPlatform(p)
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.ActorComponent.Kind(), a))

	s := NewGoalSystem()
	s.Update(w)
	assert.Equal(t, 0, w.Events().Len())

	// over the goal but in the air
	a.Position = cp.Vector{X: 280}
	a.Control.State = component.StateJumping
	s.Update(w)
	assert.Equal(t, 0, w.Events().Len())
	assert.False(t, goal.Reached)

	a.Control.State = component.StateIdle
	s.Update(w)
	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, e, events[0].Entity)
	assert.Equal(t, component.ActorEvent{Kind: component.EventGoalReached}, events[0].Data)
	assert.True(t, goal.Reached)

	s.Update(w)
	assert.Equal(t, 0, w.Events().Len())
}
