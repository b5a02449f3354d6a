package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/ecs/component"
)

// applyCharge builds jump strength while the charge input is held.
func applyCharge(a *component.Actor, dt float64, events []component.ActorEvent) []component.ActorEvent {
	c := &a.Control
	t := &a.Tuning

	if !c.Command.Has(component.CommandChargeJump) || c.State.Airborne() {
		c.State &^= component.StateChargingJump
		return events
	}

	before := c.JumpStrength
	c.JumpStrength = math.Min(c.JumpStrength+t.ChargeRate*dt, t.MaxJumpStrength)
	c.State |= component.StateChargingJump

	fraction := 0.0
	if t.MaxJumpStrength > 0 {
		fraction = c.JumpStrength / t.MaxJumpStrength
	}
	events = append(events, component.ActorEvent{Kind: component.EventChargeProgress, Fraction: fraction})
	if before < t.MaxJumpStrength && c.JumpStrength >= t.MaxJumpStrength {
		events = append(events, component.ActorEvent{Kind: component.EventChargeSaturated})
	}
	return events
}

// applyLaunch turns a released charge into a jump. A release without a
// charge in progress does nothing. Only the part of the ground velocity along
// the facing direction survives the takeoff.
func applyLaunch(a *component.Actor, dt float64, events []component.ActorEvent) []component.ActorEvent {
	c := &a.Control
	t := &a.Tuning

	if !c.Command.Has(component.CommandJump) || !c.State.Has(component.StateChargingJump) {
		return events
	}

	facing := a.Facing()
	c.AirLinearVelocity = facing.Mult(c.GroundLinearVelocity.Dot(facing))
	c.AirAngularVelocity = c.GroundAngularVelocity
	if pv, ok := a.Tracker.VelocityContribution(a.Position, dt); ok {
		c.AirLinearVelocity = c.AirLinearVelocity.Add(pv.Linear)
		c.AirAngularVelocity += pv.Angular
	}

	a.VerticalVelocity = c.JumpStrength*t.LaunchScale + t.LaunchBase
	c.State = c.State.WithAirborne(component.StateJumping)

	return append(events, component.ActorEvent{Kind: component.EventLaunched, Strength: c.JumpStrength})
}

// applyAirAssist nudges a jumping actor along its facing. The log shaping
// makes this a small, usually negative, push.
func applyAirAssist(a *component.Actor, dt float64) {
	c := &a.Control
	if !c.State.Has(component.StateJumping) {
		return
	}
	push := math.Log(c.JumpStrength/100+0.1) * dt
	c.AirLinearVelocity = c.AirLinearVelocity.Add(a.Facing().Mult(push))
}

// resolveFallState detects falls without an edge test: a descending jump or
// standing on no platform means free fall. A ground actor that starts falling
// carries its ground motion into the air and loses any unreleased charge.
func resolveFallState(a *component.Actor, events []component.ActorEvent) []component.ActorEvent {
	c := &a.Control
	if c.State.Has(component.StateDead | component.StateDeactivated) {
		return events
	}

	if c.State.Has(component.StateFreeFalling) && a.VerticalVelocity == 0 {
		c.State &^= component.StateFreeFalling
		settleGroundState(c)
	}

	descending := c.State.Has(component.StateJumping) && a.VerticalVelocity < 0
	if !descending && a.CurrentPlatform() != nil {
		return events
	}
	if !c.State.Airborne() {
		c.AirLinearVelocity = c.GroundLinearVelocity
		c.AirAngularVelocity = c.GroundAngularVelocity
		if c.JumpStrength > 0 {
			c.JumpStrength = 0
			events = append(events, component.ActorEvent{Kind: component.EventChargeProgress})
		}
	}
	c.State = c.State.WithAirborne(component.StateFreeFalling)
	return events
}

// integrateFlight runs the vertical integrator for airborne or dead actors
// and then applies the landing and death thresholds.
func integrateFlight(a *component.Actor, dt float64, events []component.ActorEvent) []component.ActorEvent {
	c := &a.Control
	t := &a.Tuning

	if !c.State.Airborne() && !c.State.Has(component.StateDead) {
		return events
	}
	a.IntegrateVertical(t.Gravity, t.MaxScale, dt)

	if a.CurrentPlatform() != nil {
		if c.State.Airborne() && a.Altitude <= t.LandAltitude && a.VerticalVelocity <= 0 {
			land(a)
			events = append(events, component.ActorEvent{Kind: component.EventLanded})
		}
		return events
	}

	if a.Altitude < t.DeathAltitude && !c.State.Has(component.StateDead) {
		c.State = component.StateDead
		a.Tracker.Clear()
		c.JumpStrength = 0
		events = append(events, component.ActorEvent{Kind: component.EventGameOver})
	}
	if a.Altitude < t.FadeAltitude && !c.FadeTriggered() {
		c.MarkFadeTriggered()
		events = append(events, component.ActorEvent{Kind: component.EventFadeOut})
	}
	if a.Altitude < t.DeactivateAltitude {
		c.State = component.StateDeactivated
		events = append(events, component.ActorEvent{Kind: component.EventDeactivated})
	}
	return events
}

func land(a *component.Actor) {
	c := &a.Control
	a.VerticalVelocity = 0
	a.Altitude = 0
	a.Scale = component.AltitudeScale(0, a.Tuning.MaxScale)
	c.JumpStrength = 0
	c.AirLinearVelocity = cp.Vector{}
	c.AirAngularVelocity = 0
	c.State = component.StateIdle
}
