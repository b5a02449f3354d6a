package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

// ActorEventType is the ecs.Event type used for actor notifications.
const ActorEventType = "actor"

// StepActor advances a by one tick using the command already set on it.
// The order is fixed: ground behaviors, fall resolution, friction, vertical
// integration with the landing and death thresholds, platform composition
// and finally the planar commit. Events come back in the order they arose.
//
// Under an enforced transition policy an illegal state change is returned as
// a *component.TransitionError after the tick has been applied.
func StepActor(a *component.Actor, dt float64) ([]component.ActorEvent, error) {
	if a == nil || a.Deactivated() {
		return nil, nil
	}

	c := &a.Control
	prev := c.State
	var events []component.ActorEvent

	if !c.State.Airborne() && !c.State.Has(component.StateDead) {
		applyMovement(a, dt)
		applyTurning(a, dt)
		events = applyLaunch(a, dt, events)
		events = applyCharge(a, dt, events)
		settleGroundState(c)
	}
	applyAirAssist(a, dt)

	events = resolveFallState(a, events)
	applyFriction(a)
	events = integrateFlight(a, dt, events)
	commitMotion(a, dt)

	if err := a.Tuning.Transitions.Check(prev, c.State); err != nil {
		return events, err
	}
	return events, nil
}

// commitMotion picks ground or air velocities, adds the platform under a
// grounded actor and moves the body.
func commitMotion(a *component.Actor, dt float64) {
	c := &a.Control
	if c.State.Has(component.StateDeactivated) {
		a.Velocity = cp.Vector{}
		a.AngularVelocity = 0
		return
	}

	if c.State.Airborne() || c.State.Has(component.StateDead) {
		a.Velocity = c.AirLinearVelocity
		a.AngularVelocity = c.AirAngularVelocity
	} else {
		a.Velocity = c.GroundLinearVelocity
		a.AngularVelocity = c.GroundAngularVelocity
		if pv, ok := a.Tracker.VelocityContribution(a.Position, dt); ok {
			a.Velocity = a.Velocity.Add(pv.Linear)
			a.AngularVelocity += pv.Angular
		}
	}
	a.IntegratePlanar(dt)
}

// ActorControllerSystem steps every actor once per tick and publishes what
// happened on the world event queue.
type ActorControllerSystem struct {
	dt float64
}

func NewActorControllerSystem() *ActorControllerSystem {
	return &ActorControllerSystem{dt: common.TickSeconds}
}

func (s *ActorControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		prev := a.Control.State
		events, err := StepActor(a, s.dt)
		if err != nil {
			panic(fmt.Errorf("actor %s: %w", e, err))
		}
		if prev != a.Control.State {
			common.Logger().Debug().
				Str("entity", e.String()).
				Stringer("from", prev).
				Stringer("to", a.Control.State).
				Msg("actor state")
		}
		for _, evt := range events {
			w.Events().Push(ecs.Event{Entity: e, Type: ActorEventType, Data: evt})
		}
	})
}
