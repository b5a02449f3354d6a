package component

// Session is the singleton run state shown by the HUD.
type Session struct {
	Level    string
	Seed     uint64
	Attempts int
	GameOver bool

	HasGoal bool
	// Beaten is set when the actor reaches the goal of this level.
	Beaten bool
	// Cleared counts levels beaten earlier in this run.
	Cleared int
}

var SessionComponent = NewComponent[Session]()
