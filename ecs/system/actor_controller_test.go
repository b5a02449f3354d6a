package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDT = 1.0 / 60

func newTestActor() *component.Actor {
	return component.NewActor(cp.Vector{}, component.DefaultActorTuning())
}

func newStaticPlatform(r float64) *component.Platform {
	return &component.Platform{Circumcircle: component.Circumcircle{Radius: r}}
}

func newGroundedActor(r float64) (*component.Actor, *component.Platform) {
	a := newTestActor()
	p := newStaticPlatform(r)
	a.EnterPlatform(p)
	return a, p
}

// step sets cmd and runs one tick, failing the test on a transition error.
func step(t *testing.T, a *component.Actor, cmd component.Command) []component.ActorEvent {
	t.Helper()
	a.SetCommand(cmd)
	events, err := StepActor(a, testDT)
	require.NoError(t, err)
	return events
}

func countEvents(events []component.ActorEvent, kind component.ActorEventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func assertStateConsistent(t *testing.T, s component.ActorState) {
	t.Helper()
	assert.False(t, s.Has(component.StateJumping) && s.Has(component.StateFreeFalling), s.String())
	if s.Airborne() {
		assert.False(t, s.Has(component.StateIdle|component.StateMoving|component.StateChargingJump), s.String())
	}
}

func TestStepActorScriptedRunKeepsStatesConsistent(t *testing.T) {
	a, _ := newGroundedActor(400)
	a.Tuning.Transitions = component.TransitionEnforced

	script := []struct {
		cmd   component.Command
		ticks int
	}{
		{component.CommandWalkForward, 20},
		{component.CommandTurnClockwise, 10},
		{component.CommandChargeJump | component.CommandWalkForward, 30},
		{component.CommandJump, 1},
		{component.CommandNone, 60},
		{component.CommandRun, 240},
	}
	for _, s := range script {
		for i := 0; i < s.ticks; i++ {
			step(t, a, s.cmd)
			assertStateConsistent(t, a.Control.State)
		}
	}
}

func TestChargeIsMonotoneAndClamped(t *testing.T) {
	a, _ := newGroundedActor(500)
	last := 0.0
	saturated := 0

	for i := 0; i < 120; i++ {
		events := step(t, a, component.CommandChargeJump)
		saturated += countEvents(events, component.EventChargeSaturated)
		assert.Equal(t, 1, countEvents(events, component.EventChargeProgress))

		js := a.Control.JumpStrength
		assert.GreaterOrEqual(t, js, last)
		assert.LessOrEqual(t, js, a.Tuning.MaxJumpStrength)
		last = js
	}
	assert.Equal(t, a.Tuning.MaxJumpStrength, last)
	assert.Equal(t, 1, saturated)
	assert.True(t, a.Control.State.Has(component.StateChargingJump))
}

func TestJumpWithoutChargeDoesNothing(t *testing.T) {
	a, _ := newGroundedActor(500)
	events := step(t, a, component.CommandJump)

	assert.Empty(t, events)
	assert.Equal(t, component.StateIdle, a.Control.State)
	assert.Equal(t, 0.0, a.VerticalVelocity)
}

func TestLaunchKeepsOnlyFacingComponent(t *testing.T) {
	a, _ := newGroundedActor(500)
	a.Control.State = component.StateChargingJump
	a.Control.JumpStrength = 0.5
	a.Control.GroundLinearVelocity = cp.Vector{X: 30, Y: -40}

	events := step(t, a, component.CommandJump)
	require.Equal(t, 1, countEvents(events, component.EventLaunched))
	assert.Equal(t, 0.5, events[0].Strength)
	assert.Equal(t, component.StateJumping, a.Control.State)

	// 40 along the facing, minus one tick of air assist
	assist := math.Log(0.5/100+0.1) * testDT
	air := a.Control.AirLinearVelocity
	assert.InDelta(t, 0, air.X, 1e-9)
	assert.InDelta(t, -40-assist, air.Y, 1e-9)
	assert.Less(t, air.Length(), 50.0)

	assert.InDelta(t, 0.5*2+10-30*testDT, a.VerticalVelocity, 1e-9)
	assert.Greater(t, a.Altitude, 0.0)
}

func TestJumpResetsOnLanding(t *testing.T) {
	a, _ := newGroundedActor(500)
	for i := 0; i < 30; i++ {
		step(t, a, component.CommandChargeJump)
	}
	require.Greater(t, a.Control.JumpStrength, 0.0)
	step(t, a, component.CommandJump)
	require.True(t, a.Control.State.Airborne())

	sawFall := false
	landed := false
	for i := 0; i < 300 && !landed; i++ {
		events := step(t, a, component.CommandNone)
		sawFall = sawFall || a.Control.State.Has(component.StateFreeFalling)
		landed = countEvents(events, component.EventLanded) == 1
		if !landed {
			assert.Greater(t, a.Control.JumpStrength, 0.0)
		}
	}
	require.True(t, landed)
	assert.True(t, sawFall)
	assert.Equal(t, component.StateIdle, a.Control.State)
	assert.Equal(t, 0.0, a.Control.JumpStrength)
	assert.Equal(t, 0.0, a.Altitude)
	assert.Equal(t, 0.0, a.VerticalVelocity)
	assert.Equal(t, 1.0, a.Scale)
	assert.Equal(t, cp.Vector{}, a.Control.AirLinearVelocity)
}

func TestFrictionSettlesAndStaysAtRest(t *testing.T) {
	a, _ := newGroundedActor(500)
	a.Control.GroundLinearVelocity = cp.Vector{X: 1}
	a.Control.GroundAngularVelocity = 0.05

	for i := 0; i < 10; i++ {
		step(t, a, component.CommandNone)
	}
	require.Equal(t, cp.Vector{}, a.Control.GroundLinearVelocity)
	require.Equal(t, 0.0, a.Control.GroundAngularVelocity)

	for i := 0; i < 10; i++ {
		step(t, a, component.CommandNone)
		assert.Equal(t, cp.Vector{}, a.Control.GroundLinearVelocity)
		assert.Equal(t, 0.0, a.Control.GroundAngularVelocity)
		assert.Equal(t, cp.Vector{}, a.Velocity)
	}
}

func TestFrictionNeverReversesVelocity(t *testing.T) {
	a := newTestActor()
	a.Control.GroundLinearVelocity = cp.Vector{X: 0.3}
	a.Control.GroundAngularVelocity = -0.005

	applyFriction(a)
	assert.Equal(t, cp.Vector{}, a.Control.GroundLinearVelocity)
	assert.Equal(t, 0.0, a.Control.GroundAngularVelocity)
}

func TestBackwardIgnoredWhileCharging(t *testing.T) {
	a, _ := newGroundedActor(500)
	step(t, a, component.CommandWalkBackward|component.CommandChargeJump)

	assert.Equal(t, cp.Vector{}, a.Control.GroundLinearVelocity)
	assert.False(t, a.Control.State.Has(component.StateMoving))
	assert.True(t, a.Control.State.Has(component.StateChargingJump))
}

func TestTurningIsDampedAtSpeed(t *testing.T) {
	still, _ := newGroundedActor(500)
	step(t, still, component.CommandTurnClockwise)

	moving, _ := newGroundedActor(500)
	moving.Control.State = component.StateMoving
	moving.Control.GroundLinearVelocity = moving.Facing().Mult(100)
	step(t, moving, component.CommandTurnClockwise|component.CommandWalkForward)

	assert.Greater(t, still.Control.GroundAngularVelocity, 0.0)
	assert.Less(t, math.Abs(moving.Control.GroundAngularVelocity), still.Control.GroundAngularVelocity)
	assert.True(t, still.Control.State.Has(component.StateTurning))
	assert.False(t, still.Control.State.Has(component.StateIdle))
}

func TestWalkingOffThePlatformStartsFreeFall(t *testing.T) {
	a, _ := newGroundedActor(100)
	fell := false
	for i := 0; i < 300 && !fell; i++ {
		step(t, a, component.CommandWalkForward)
		fell = a.Control.State.Has(component.StateFreeFalling)
	}
	require.True(t, fell)
	assert.Nil(t, a.CurrentPlatform())
	assert.Greater(t, a.Control.AirLinearVelocity.Length(), 0.0)
	assert.False(t, a.Control.State.Has(component.StateMoving))
}

func TestDeathThresholdsFireInOrder(t *testing.T) {
	a := newTestActor()
	a.Control.JumpStrength = 0.4
	a.Tuning.Transitions = component.TransitionEnforced

	altitudeAt := map[component.ActorEventKind]float64{}
	tickOf := map[component.ActorEventKind]int{}
	for i := 0; i < 2000 && !a.Deactivated(); i++ {
		for _, e := range step(t, a, component.CommandNone) {
			_, dup := tickOf[e.Kind]
			assert.False(t, dup, "duplicate %s", e.Kind)
			tickOf[e.Kind] = i
			altitudeAt[e.Kind] = a.Altitude
		}
	}
	require.True(t, a.Deactivated())
	require.Contains(t, tickOf, component.EventGameOver)
	require.Contains(t, tickOf, component.EventFadeOut)
	require.Contains(t, tickOf, component.EventDeactivated)

	assert.LessOrEqual(t, tickOf[component.EventGameOver], tickOf[component.EventFadeOut])
	assert.LessOrEqual(t, tickOf[component.EventFadeOut], tickOf[component.EventDeactivated])
	assert.Less(t, altitudeAt[component.EventGameOver], a.Tuning.DeathAltitude)
	assert.Less(t, altitudeAt[component.EventFadeOut], a.Tuning.FadeAltitude)
	assert.Less(t, altitudeAt[component.EventDeactivated], a.Tuning.DeactivateAltitude)

	assert.Equal(t, component.StateDeactivated, a.Control.State)
	assert.Equal(t, 0.0, a.Control.JumpStrength)
	assert.Equal(t, cp.Vector{}, a.Velocity)
}

func TestDeathClearsPlatforms(t *testing.T) {
	a, p := newGroundedActor(500)
	for i := 0; i < 10; i++ {
		step(t, a, component.CommandChargeJump)
	}
	a.LeavePlatform(p)

	died := false
	for i := 0; i < 100 && !died; i++ {
		died = countEvents(step(t, a, component.CommandChargeJump), component.EventGameOver) == 1
	}
	require.True(t, died)
	assert.Equal(t, component.StateDead, a.Control.State)
	assert.Equal(t, 0.0, a.Control.JumpStrength)

	a.EnterPlatform(p)
	assert.Equal(t, 0, a.Tracker.Len())
}

func TestFallingWhileChargingDropsTheCharge(t *testing.T) {
	a, p := newGroundedActor(500)
	for i := 0; i < 20; i++ {
		step(t, a, component.CommandChargeJump)
	}
	require.Greater(t, a.Control.JumpStrength, 0.0)

	a.LeavePlatform(p)
	events := step(t, a, component.CommandChargeJump)

	assert.Equal(t, component.StateFreeFalling, a.Control.State)
	assert.Equal(t, 0.0, a.Control.JumpStrength)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, component.EventChargeProgress, last.Kind)
	assert.Equal(t, 0.0, last.Fraction)

	// nothing left to assist or launch with
	events = step(t, a, component.CommandJump)
	assert.Zero(t, countEvents(events, component.EventLaunched))
	assert.Equal(t, 0.0, a.Control.JumpStrength)
}

func TestTurningAtACrawlIsStillDamped(t *testing.T) {
	still := newTestActor()
	still.SetCommand(component.CommandTurnClockwise)
	applyTurning(still, testDT)

	crawling := newTestActor()
	crawling.Control.State = component.StateMoving
	crawling.Control.GroundLinearVelocity = crawling.Facing().Mult(0.01)
	crawling.SetCommand(component.CommandTurnClockwise)
	applyTurning(crawling, testDT)

	tn := crawling.Tuning
	want := tn.TurnAcceleration * testDT / (tn.TurnSpeedDivisor * tn.LinearSnap)
	assert.InDelta(t, want, crawling.Control.GroundAngularVelocity, 1e-12)
	assert.LessOrEqual(t, crawling.Control.GroundAngularVelocity, still.Control.GroundAngularVelocity)
}

func TestDeactivatedActorIgnoresCommands(t *testing.T) {
	a := newTestActor()
	a.Control.State = component.StateDeactivated
	a.Altitude = -31
	a.Control.JumpStrength = 0
	a.SetCommand(component.CommandJump | component.CommandRun | component.CommandTurnClockwise)

	before := *a
	events, err := StepActor(a, testDT)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, before, *a)
}

func TestStillActorOnSpinningPlatform(t *testing.T) {
	p := newStaticPlatform(200)
	p.AngularVelocity = 0.5

	a := newTestActor()
	a.Position = cp.Vector{X: 100}
	a.EnterPlatform(p)
	step(t, a, component.CommandNone)

	// rigid rotation of the point (100, 0) about the origin
	rigid := cp.Vector{Y: 100 * 0.5}
	residual := a.Velocity.Sub(rigid)
	want := -100 * 0.5 * 0.5 * component.CentripetalCorrection * testDT

	assert.InDelta(t, want, residual.X, 1e-9)
	assert.InDelta(t, 0, residual.Y, 1e-9)
	assert.InDelta(t, 100*0.5, a.Velocity.Sub(residual).Length(), 1e-9)
	assert.Equal(t, 0.5, a.AngularVelocity)
	assert.Equal(t, component.StateIdle, a.Control.State)
}

func TestEnforcedPolicyReportsIllegalTransition(t *testing.T) {
	setup := func(policy component.TransitionPolicy) *component.Actor {
		a, _ := newGroundedActor(500)
		a.Tuning.Transitions = policy
		// a jump that never reached the descending phase
		a.Control.State = component.StateJumping
		return a
	}

	a := setup(component.TransitionEnforced)
	a.SetCommand(component.CommandNone)
	events, err := StepActor(a, testDT)
	require.Error(t, err)
	assert.ErrorIs(t, err, component.ErrInvalidTransition)
	assert.Equal(t, 1, countEvents(events, component.EventLanded))

	a = setup(component.TransitionAdvisory)
	step(t, a, component.CommandNone)
	assert.Equal(t, component.StateIdle, a.Control.State)
}

func TestActorControllerSystemPublishesEvents(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	a, _ := newGroundedActor(500)
	require.NoError(t, ecs.Add(w, e, component.ActorComponent.Kind(), a))

	a.SetCommand(component.CommandChargeJump)
	NewActorControllerSystem().Update(w)

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, e, events[0].Entity)
	assert.Equal(t, ActorEventType, events[0].Type)
	evt, ok := events[0].Data.(component.ActorEvent)
	require.True(t, ok)
	assert.Equal(t, component.EventChargeProgress, evt.Kind)
}

func TestActorControllerSystemPanicsOnEnforcedViolation(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	a, _ := newGroundedActor(500)
	a.Tuning.Transitions = component.TransitionEnforced
	a.Control.State = component.StateJumping
	require.NoError(t, ecs.Add(w, e, component.ActorComponent.Kind(), a))

	assert.Panics(t, func() { NewActorControllerSystem().Update(w) })
}
