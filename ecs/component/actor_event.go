package component

// ActorEventKind names something the actor core wants the host to react to.
type ActorEventKind string

const (
	// EventChargeProgress carries Fraction in [0, 1] every charging tick.
	EventChargeProgress ActorEventKind = "charge_progress"
	// EventChargeSaturated fires once when the charge reaches its cap.
	EventChargeSaturated ActorEventKind = "charge_saturated"
	// EventLaunched carries the jump Strength used.
	EventLaunched    ActorEventKind = "launched"
	EventLanded      ActorEventKind = "landed"
	EventGameOver    ActorEventKind = "game_over"
	EventFadeOut     ActorEventKind = "fade_out"
	EventDeactivated ActorEventKind = "deactivated"
	// EventGoalReached is raised by the host, not the movement core, when a
	// grounded actor stands on the level goal.
	EventGoalReached ActorEventKind = "goal_reached"
)

// ActorEvent is fire-and-forget: the core never reads anything back.
type ActorEvent struct {
	Kind     ActorEventKind
	Fraction float64
	Strength float64
}
