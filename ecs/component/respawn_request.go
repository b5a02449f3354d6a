package component

// RespawnRequest asks the game to tear down the current actor and spawn a
// fresh one at the level start. Delay counts down in ticks first.
type RespawnRequest struct {
	Delay int
}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
