package component

import "github.com/jakecoffman/cp"

const (
	// rimFraction of the actor width a platform center must beat (inside its
	// radius) for the actor to count as standing on it.
	rimFraction = 0.2
	// CentripetalCorrection keeps a still actor from drifting outward on a
	// spinning platform under explicit integration.
	CentripetalCorrection = 0.50005
)

// PlatformVelocity is the motion an actor inherits from the platform under it.
type PlatformVelocity struct {
	Linear  cp.Vector
	Angular float64
}

// PlatformTracker holds the platforms an actor currently overlaps. Only the
// collision system mutates it, through Enter and Leave.
type PlatformTracker struct {
	// Width of the owning actor, used by the rim test.
	Width       float64
	overlapping []*Platform
}

// Enter adds p to the overlap set. It reports whether p was added.
func (t *PlatformTracker) Enter(p *Platform) bool {
	if p == nil || t.Contains(p) {
		return false
	}
	t.overlapping = append(t.overlapping, p)
	return true
}

// Leave removes p from the overlap set. It reports whether p was present.
func (t *PlatformTracker) Leave(p *Platform) bool {
	for i, q := range t.overlapping {
		if q == p {
			t.overlapping = append(t.overlapping[:i], t.overlapping[i+1:]...)
			return true
		}
	}
	return false
}

func (t *PlatformTracker) Contains(p *Platform) bool {
	for _, q := range t.overlapping {
		if q == p {
			return true
		}
	}
	return false
}

// Clear drops every overlap at once.
func (t *PlatformTracker) Clear() {
	t.overlapping = nil
}

func (t *PlatformTracker) Len() int {
	return len(t.overlapping)
}

// Overlapping returns a copy of the overlap set in entry order.
func (t *PlatformTracker) Overlapping() []*Platform {
	return append([]*Platform(nil), t.overlapping...)
}

// Current picks the platform the actor at pos stands on: among overlapped
// platforms whose center lies closer than radius - width*0.2, the highest
// z-order wins and the nearer center breaks ties. Platforms only grazed at
// the rim never qualify.
func (t *PlatformTracker) Current(pos cp.Vector) *Platform {
	var best *Platform
	bestDist := 0.0
	for _, p := range t.overlapping {
		d := pos.Distance(p.Center)
		if d >= p.Radius-t.Width*rimFraction {
			continue
		}
		if best == nil || p.ZOrder > best.ZOrder || (p.ZOrder == best.ZOrder && d < bestDist) {
			best = p
			bestDist = d
		}
	}
	return best
}

// VelocityContribution returns what the current platform adds to the actor
// at pos, or false when the actor stands on nothing.
func (t *PlatformTracker) VelocityContribution(pos cp.Vector, dt float64) (PlatformVelocity, bool) {
	p := t.Current(pos)
	if p == nil {
		return PlatformVelocity{}, false
	}
	return VelocityAt(p, pos, dt), true
}

// VelocityAt is the velocity of platform p's surface at pos: its own linear
// velocity, the tangential speed from its spin, and the centripetal
// correction term.
func VelocityAt(p *Platform, pos cp.Vector, dt float64) PlatformVelocity {
	toCenter := p.Center.Sub(pos)
	dist := toCenter.Length()
	omega := p.AngularVelocity

	var tangential cp.Vector
	if dist > 0 {
		tangential = toCenter.Normalize().ReversePerp().Mult(dist * omega)
	}
	centripetal := toCenter.Mult(omega * omega * CentripetalCorrection * dt)

	return PlatformVelocity{
		Linear:  p.LinearVelocity.Add(tangential).Add(centripetal),
		Angular: omega,
	}
}
