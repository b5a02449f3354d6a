package component

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ActorState is a set of state flags. Ground flags (Idle, Moving, Turning,
// ChargingJump) may combine; Jumping and FreeFalling are exclusive and make
// the actor airborne.
type ActorState uint16

const (
	StateIdle ActorState = 1 << iota
	StateMoving
	StateTurning
	StateChargingJump
	StateJumping
	StateFreeFalling
	StateDead
	StateDeactivated
)

const (
	groundStates   = StateIdle | StateMoving | StateTurning | StateChargingJump
	airborneStates = StateJumping | StateFreeFalling
)

var stateNames = []struct {
	flag ActorState
	name string
}{
	{StateIdle, "idle"},
	{StateMoving, "moving"},
	{StateTurning, "turning"},
	{StateChargingJump, "charging_jump"},
	{StateJumping, "jumping"},
	{StateFreeFalling, "free_falling"},
	{StateDead, "dead"},
	{StateDeactivated, "deactivated"},
}

func (s ActorState) Has(flag ActorState) bool {
	return s&flag != 0
}

// Airborne holds iff exactly one of Jumping/FreeFalling is set.
func (s ActorState) Airborne() bool {
	return bits.OnesCount16(uint16(s&airborneStates)) == 1
}

// Grounded reports whether any ground flag is set and the actor is neither
// airborne nor dead.
func (s ActorState) Grounded() bool {
	return s&groundStates != 0 && !s.Airborne() && !s.Has(StateDead|StateDeactivated)
}

func (s ActorState) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, n := range stateNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// WithAirborne returns s with its ground and airborne flags replaced by the
// single airborne flag a.
func (s ActorState) WithAirborne(a ActorState) ActorState {
	return s&^(groundStates|airborneStates) | a&airborneStates
}

// stateTransitions lists, per flag, the flags that may be newly set after it.
var stateTransitions = map[ActorState]ActorState{
	StateIdle:         StateMoving | StateTurning | StateChargingJump | StateFreeFalling,
	StateMoving:       StateIdle | StateMoving | StateTurning | StateChargingJump | StateFreeFalling,
	StateTurning:      StateIdle | StateMoving | StateTurning | StateChargingJump | StateFreeFalling,
	StateChargingJump: StateJumping,
	StateJumping:      StateFreeFalling,
	StateFreeFalling:  StateIdle | StateTurning | StateDead,
	StateDead:         StateDeactivated,
	StateDeactivated:  0,
}

// AllowedNext returns every flag that may be newly set after from. Ground
// flags refine a single grounded phase, so any grounded state may also take
// what Idle may and can always come back to rest.
func AllowedNext(from ActorState) ActorState {
	var allowed ActorState
	if from == 0 || from.Grounded() {
		from |= StateIdle
		allowed = StateIdle
	}
	for _, n := range stateNames {
		if from.Has(n.flag) {
			allowed |= stateTransitions[n.flag]
		}
	}
	return allowed
}

var ErrInvalidTransition = errors.New("actor: invalid state transition")

// TransitionError identifies an illegal state change.
type TransitionError struct {
	From ActorState
	To   ActorState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("actor: invalid state transition %s -> %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidateTransition checks that every flag set in to but not in from is
// reachable from some flag of from. Leaving a flag is always legal, except
// out of Deactivated.
func ValidateTransition(from, to ActorState) error {
	if from == to {
		return nil
	}
	if from.Has(StateDeactivated) {
		return &TransitionError{From: from, To: to}
	}
	added := to &^ from
	if added&^AllowedNext(from) != 0 {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// TransitionPolicy decides what happens to a transition the table does not
// allow.
type TransitionPolicy int

const (
	// TransitionAdvisory keeps the table documentary; nothing is rejected.
	TransitionAdvisory TransitionPolicy = iota
	// TransitionEnforced turns table violations into errors.
	TransitionEnforced
)

func (p TransitionPolicy) Check(from, to ActorState) error {
	if p != TransitionEnforced {
		return nil
	}
	return ValidateTransition(from, to)
}

func (p TransitionPolicy) String() string {
	if p == TransitionEnforced {
		return "enforced"
	}
	return "advisory"
}
