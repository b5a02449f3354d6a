package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Goal is where a level is won. A grounded actor within Radius of Point
// finishes the level. The HUD arrow pointing at it fades out once the actor
// is inside SafeDistance.
type Goal struct {
	Point        cp.Vector
	Radius       float64
	SafeDistance float64

	// Reached latches so the win is reported once.
	Reached bool
}

var GoalComponent = NewComponent[Goal]()

func (g *Goal) Contains(p cp.Vector) bool {
	return p.Distance(g.Point) <= g.Radius
}

// ArrowAlpha is the arrow opacity seen from p: fully visible beyond
// 1.5×SafeDistance, gone inside SafeDistance and linear between.
func (g *Goal) ArrowAlpha(p cp.Vector) float64 {
	if g.SafeDistance <= 0 {
		return 1
	}
	a := (p.Distance(g.Point)/g.SafeDistance - 1) * 2
	return math.Max(0, math.Min(a, 1))
}
