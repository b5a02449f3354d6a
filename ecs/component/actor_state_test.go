package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorStateAirborne(t *testing.T) {
	cases := []struct {
		state ActorState
		want  bool
	}{
		{0, false},
		{StateIdle, false},
		{StateMoving | StateTurning, false},
		{StateJumping, true},
		{StateFreeFalling, true},
		{StateDead | StateFreeFalling, true},
		{StateJumping | StateFreeFalling, false},
	}
	for _, c := range cases {
		t.Run(c.state.String(), func(t *testing.T) {
			assert.Equal(t, c.want, c.state.Airborne())
		})
	}
}

func TestWithAirborneReplacesGroundFlags(t *testing.T) {
	s := (StateMoving | StateTurning | StateChargingJump).WithAirborne(StateJumping)
	assert.Equal(t, StateJumping, s)

	s = s.WithAirborne(StateFreeFalling)
	assert.Equal(t, StateFreeFalling, s)
	assert.False(t, s.Has(StateJumping))

	assert.Equal(t, StateDead|StateFreeFalling, StateDead.WithAirborne(StateFreeFalling))
}

func TestActorStateString(t *testing.T) {
	assert.Equal(t, "none", ActorState(0).String())
	assert.Equal(t, "idle|moving", (StateIdle | StateMoving).String())
	assert.Equal(t, "charging_jump", StateChargingJump.String())
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		name     string
		from, to ActorState
		ok       bool
	}{
		{"idle_to_moving", StateIdle, StateMoving, true},
		{"idle_to_free_fall", StateIdle, StateFreeFalling, true},
		{"charge_to_jump", StateChargingJump, StateJumping, true},
		{"walk_while_charging", StateChargingJump, StateChargingJump | StateMoving, true},
		{"charging_back_to_idle", StateChargingJump, StateIdle, true},
		{"jump_to_fall", StateJumping, StateFreeFalling, true},
		{"fall_to_idle", StateFreeFalling, StateIdle, true},
		{"fall_to_dead", StateFreeFalling, StateDead, true},
		{"dead_to_deactivated", StateDead, StateDeactivated, true},
		{"unchanged", StateDeactivated, StateDeactivated, true},
		{"idle_to_jump", StateIdle, StateJumping, false},
		{"moving_to_jump", StateMoving, StateJumping, false},
		{"jump_to_idle", StateJumping, StateIdle, false},
		{"fall_to_charge", StateFreeFalling, StateChargingJump, false},
		{"dead_to_idle", StateDead, StateIdle, false},
		{"deactivated_to_idle", StateDeactivated, StateIdle, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateTransition(c.from, c.to)
			if c.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))

			var te *TransitionError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, c.from, te.From)
			assert.Equal(t, c.to, te.To)
		})
	}
}

func TestAllowedNextGroundedIncludesIdleRow(t *testing.T) {
	allowed := AllowedNext(StateChargingJump)
	for _, flag := range []ActorState{StateIdle, StateMoving, StateTurning, StateChargingJump, StateFreeFalling, StateJumping} {
		assert.True(t, allowed.Has(flag), flag.String())
	}
	assert.False(t, allowed.Has(StateDead))

	assert.Equal(t, StateFreeFalling, AllowedNext(StateJumping))
	assert.Equal(t, ActorState(0), AllowedNext(StateDeactivated))
}

func TestTransitionPolicy(t *testing.T) {
	assert.NoError(t, TransitionAdvisory.Check(StateIdle, StateJumping))
	assert.ErrorIs(t, TransitionEnforced.Check(StateIdle, StateJumping), ErrInvalidTransition)
	assert.NoError(t, TransitionEnforced.Check(StateIdle, StateMoving))

	assert.Equal(t, "advisory", TransitionAdvisory.String())
	assert.Equal(t, "enforced", TransitionEnforced.String())
}
