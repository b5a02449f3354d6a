package component

// Command is one tick of abstract user intent.
type Command uint8

const (
	CommandWalkForward Command = 1 << iota
	CommandRun
	CommandWalkBackward
	CommandTurnClockwise
	CommandTurnCounterClockwise
	// CommandChargeJump is set while the jump input is held.
	CommandChargeJump
	// CommandJump is set only on the tick the jump input is released.
	CommandJump
)

const CommandNone Command = 0

func (c Command) Has(flag Command) bool {
	return c&flag != 0
}
