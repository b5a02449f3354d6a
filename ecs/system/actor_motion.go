package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs/component"
)

// applyMovement accelerates the ground velocity along the facing direction.
// Run replaces walk; backward is ignored while a jump is being charged.
func applyMovement(a *component.Actor, dt float64) {
	c := &a.Control
	t := &a.Tuning

	accel := 0.0
	active := false
	switch {
	case c.Command.Has(component.CommandRun):
		accel, active = t.RunAcceleration, true
	case c.Command.Has(component.CommandWalkForward):
		accel, active = t.WalkAcceleration, true
	}
	charging := c.Command.Has(component.CommandChargeJump) || c.State.Has(component.StateChargingJump)
	if c.Command.Has(component.CommandWalkBackward) && !charging {
		accel -= t.BackwardAcceleration
		active = true
	}

	if !active {
		c.State &^= component.StateMoving
		return
	}
	c.GroundLinearVelocity = c.GroundLinearVelocity.Add(a.Facing().Mult(accel * dt))
	c.State |= component.StateMoving
}

// applyTurning spins the ground angular velocity. At speed the turn is damped
// by TurnSpeedDivisor times the ground speed, so pivots are sharp only near a
// standstill.
func applyTurning(a *component.Actor, dt float64) {
	c := &a.Control
	t := &a.Tuning

	dir := 0.0
	if c.Command.Has(component.CommandTurnClockwise) {
		dir++
	}
	if c.Command.Has(component.CommandTurnCounterClockwise) {
		dir--
	}
	if dir == 0 {
		c.State &^= component.StateTurning
		return
	}

	accel := dir * t.TurnAcceleration
	if c.State.Has(component.StateMoving) && t.TurnSpeedDivisor > 0 {
		// floored at the snap speed so a crawl never amplifies the turn
		speed := math.Max(c.GroundLinearVelocity.Length(), t.LinearSnap)
		if speed > 0 {
			accel /= t.TurnSpeedDivisor * speed
		}
	}
	c.GroundAngularVelocity += accel * dt
	c.State |= component.StateTurning
}

// applyFriction decelerates the ground velocities every tick, grounded or not.
func applyFriction(a *component.Actor) {
	c := &a.Control
	t := &a.Tuning

	decel := t.Friction * math.Abs(t.Gravity)
	damping := 1 - t.Friction

	v := c.GroundLinearVelocity
	if speed := v.Length(); speed > 0 {
		v = v.Mult(math.Max(speed-decel, 0) / speed)
	}
	v = v.Mult(damping)
	if v.Length() < t.LinearSnap {
		v = cp.Vector{}
	}
	c.GroundLinearVelocity = v

	w := c.GroundAngularVelocity
	if t.Width > 0 {
		w = common.Approach(w, decel/t.Width)
	}
	c.GroundAngularVelocity = common.SnapToZero(w*damping, t.AngularSnap)
}

// settleGroundState keeps Idle set exactly when no other ground flag is.
func settleGroundState(c *component.ActorControl) {
	if c.State.Airborne() || c.State.Has(component.StateDead|component.StateDeactivated) {
		return
	}
	if c.State&(component.StateMoving|component.StateTurning|component.StateChargingJump) != 0 {
		c.State &^= component.StateIdle
		return
	}
	c.State |= component.StateIdle
}
