package component

// JumpMeter mirrors the actor's charge for the HUD.
type JumpMeter struct {
	Fraction  float64
	Saturated bool
	// Flash counts down ticks of the saturation highlight.
	Flash int
}

var JumpMeterComponent = NewComponent[JumpMeter]()
