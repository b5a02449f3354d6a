package component

// ActorTuning holds every constant of the movement model.
type ActorTuning struct {
	Width    float64
	Gravity  float64
	Friction float64

	WalkAcceleration     float64
	RunAcceleration      float64
	BackwardAcceleration float64
	TurnAcceleration     float64
	TurnSpeedDivisor     float64

	ChargeRate      float64
	MaxJumpStrength float64
	LaunchBase      float64
	LaunchScale     float64

	LandAltitude       float64
	DeathAltitude      float64
	FadeAltitude       float64
	DeactivateAltitude float64
	MaxScale           float64

	LinearSnap  float64
	AngularSnap float64

	Transitions TransitionPolicy
}

func DefaultActorTuning() ActorTuning {
	return ActorTuning{
		Width:    48,
		Gravity:  -30,
		Friction: 0.02,

		WalkAcceleration:     300,
		RunAcceleration:      600,
		BackwardAcceleration: 150,
		TurnAcceleration:     6,
		TurnSpeedDivisor:     10,

		ChargeRate:      0.8,
		MaxJumpStrength: 0.8,
		LaunchBase:      10,
		LaunchScale:     2,

		LandAltitude:       0.1,
		DeathAltitude:      -0.1,
		FadeAltitude:       -20,
		DeactivateAltitude: -30,
		MaxScale:           20,

		LinearSnap:  0.2,
		AngularSnap: 0.001,
	}
}
