package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Kinematics is the committed motion of a top-down body: planar pose and
// velocity plus a scalar altitude above the platform plane.
type Kinematics struct {
	Position        cp.Vector
	Rotation        float64
	Velocity        cp.Vector
	AngularVelocity float64

	VerticalVelocity float64
	Altitude         float64
	// Scale is visual only and derived from Altitude.
	Scale float64
}

var KinematicsComponent = NewComponent[Kinematics]()

// Facing is the unit vector the body walks along. Rotation 0 faces up the
// screen.
func (k *Kinematics) Facing() cp.Vector {
	return cp.ForAngle(k.Rotation - math.Pi/2)
}

// IntegrateVertical advances altitude under gravity and refreshes the
// altitude-derived scale, capped at maxScale.
func (k *Kinematics) IntegrateVertical(gravity, maxScale, dt float64) {
	k.VerticalVelocity += gravity * dt
	k.Altitude += k.VerticalVelocity * dt
	k.Scale = AltitudeScale(k.Altitude, maxScale)
}

// IntegratePlanar moves the body by its committed velocities.
func (k *Kinematics) IntegratePlanar(dt float64) {
	k.Position = k.Position.Add(k.Velocity.Mult(dt))
	k.Rotation += k.AngularVelocity * dt
}

func AltitudeScale(altitude, maxScale float64) float64 {
	return math.Min(math.Exp(altitude/2), maxScale)
}
