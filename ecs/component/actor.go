package component

import "github.com/jakecoffman/cp"

// ActorControl is the command/state part of an actor.
type ActorControl struct {
	State   ActorState
	Command Command

	GroundLinearVelocity  cp.Vector
	GroundAngularVelocity float64
	AirLinearVelocity     cp.Vector
	AirAngularVelocity    float64

	JumpStrength float64

	fadeTriggered bool
}

// Actor composes the pieces the movement core works on.
type Actor struct {
	Kinematics
	Tracker PlatformTracker
	Control ActorControl
	Tuning  ActorTuning
}

var ActorComponent = NewComponent[Actor]()

// PlatformListener receives overlap begin/end from a collision system.
type PlatformListener interface {
	EnterPlatform(p *Platform)
	LeavePlatform(p *Platform)
}

var _ PlatformListener = (*Actor)(nil)

// NewActor places an idle actor at pos.
func NewActor(pos cp.Vector, tuning ActorTuning) *Actor {
	a := &Actor{
		Kinematics: Kinematics{Position: pos, Scale: 1},
		Control:    ActorControl{State: StateIdle},
		Tuning:     tuning,
	}
	a.Tracker.Width = tuning.Width
	return a
}

// EnterPlatform is ignored once the actor is dead so no platform coupling
// can reattach to it.
func (a *Actor) EnterPlatform(p *Platform) {
	if a.Control.State.Has(StateDead | StateDeactivated) {
		return
	}
	a.Tracker.Enter(p)
}

func (a *Actor) LeavePlatform(p *Platform) {
	a.Tracker.Leave(p)
}

func (a *Actor) SetCommand(c Command) {
	a.Control.Command = c
}

// SetTuning swaps the model constants, e.g. after a prefab reload.
func (a *Actor) SetTuning(t ActorTuning) {
	a.Tuning = t
	a.Tracker.Width = t.Width
}

func (a *Actor) Deactivated() bool {
	return a.Control.State.Has(StateDeactivated)
}

// CurrentPlatform is the platform the actor stands on, if any.
func (a *Actor) CurrentPlatform() *Platform {
	return a.Tracker.Current(a.Position)
}

// FadeTriggered reports whether the fall fade-out has already been emitted.
func (c *ActorControl) FadeTriggered() bool {
	return c.fadeTriggered
}

func (c *ActorControl) MarkFadeTriggered() {
	c.fadeTriggered = true
}
