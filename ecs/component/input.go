package component

// Input stores the raw device state sampled for one frame. Only the command
// system reads it; the actor core never sees devices.
type Input struct {
	Forward  bool
	Backward bool
	Run      bool
	TurnCW   bool
	TurnCCW  bool
	JumpHeld bool

	// Turn is an analog turn axis in [-1, 1] from a gamepad stick.
	Turn float64
}

var InputComponent = NewComponent[Input]()
