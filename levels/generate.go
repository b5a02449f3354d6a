package levels

import (
	"cmp"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/ecs/component"
)

const (
	startRadius   = 160.0
	minRadius     = 50
	maxRadius     = 150
	maxLinear     = 5.0
	maxAngular    = math.Pi / 8
	baseCount     = 20
	countPerLevel = 10

	goalRadius       = 60.0
	goalSafeDistance = 300.0
)

// Layout is a level ready to be turned into entities.
type Layout struct {
	Name      string
	Seed      uint64
	Spawn     cp.Vector
	Platforms []component.Platform
	// Goal is nil for a level that cannot be won, e.g. a sandbox.
	Goal *component.Goal
}

// Generate builds the platform field for e. The same entry always yields
// the same layout. The actor spawns at the origin on a still start platform
// so every attempt begins grounded. A generated field without a hand-placed
// goal gets one on the scattered platform farthest from the spawn, which is
// then held in place so the goal stays on it.
func Generate(e Entry) Layout {
	layout := Layout{Name: e.Name, Seed: e.Seed}

	if e.Generate == nil || *e.Generate {
		layout.Platforms = append(layout.Platforms, component.Platform{
			Circumcircle: component.Circumcircle{Radius: startRadius},
			Shape:        component.ShapeCircle,
		})
		field := scatter(e)
		if e.Goal == nil && len(field) > 0 {
			far := farthestFrom(field, layout.Spawn)
			field[far].LinearVelocity = cp.Vector{}
			layout.Goal = &component.Goal{
				Point:        field[far].Center,
				Radius:       goalRadius,
				SafeDistance: goalSafeDistance,
			}
		}
		layout.Platforms = append(layout.Platforms, field...)
	}

	if e.Goal != nil {
		layout.Goal = &component.Goal{
			Point:        cp.Vector{X: e.Goal.X, Y: e.Goal.Y},
			Radius:       cmp.Or(e.Goal.Radius, goalRadius),
			SafeDistance: cmp.Or(e.Goal.SafeDistance, goalSafeDistance),
		}
	}

	next := len(layout.Platforms)
	for _, ps := range e.Platforms {
		z := ps.ZOrder
		if z == 0 && next > 0 {
			z = next
		}
		next++
		layout.Platforms = append(layout.Platforms, component.Platform{
			Circumcircle:    component.Circumcircle{Center: cp.Vector{X: ps.X, Y: ps.Y}, Radius: ps.Radius},
			ZOrder:          z,
			LinearVelocity:  cp.Vector{X: ps.LinearX, Y: ps.LinearY},
			AngularVelocity: ps.AngularVelocity,
			Rotation:        ps.Rotation,
			Shape:           component.ParseShapeType(ps.Shape),
		})
	}
	return layout
}

func farthestFrom(platforms []component.Platform, p cp.Vector) int {
	best, bestDist := 0, -1.0
	for i := range platforms {
		if d := platforms[i].Center.DistanceSq(p); d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func scatter(e Entry) []component.Platform {
	d := max(e.Difficulty, 1)
	rng := rand.New(rand.NewPCG(e.Seed, uint64(d)))
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	count := baseCount + countPerLevel*d
	spanX := 1280.0 + 400*float64(d)
	spanY := 720.0 + 300*float64(d)

	platforms := make([]component.Platform, 0, count)
	for i := range count {
		platforms = append(platforms, component.Platform{
			Circumcircle: component.Circumcircle{
				Center: cp.Vector{X: uniform(-spanX, spanX), Y: uniform(-spanY, spanY)},
				Radius: float64(minRadius + rng.IntN(maxRadius-minRadius+1)),
			},
			ZOrder:          i + 1,
			Rotation:        uniform(0, 2*math.Pi),
			AngularVelocity: uniform(-maxAngular, maxAngular),
			LinearVelocity:  cp.Vector{X: uniform(-maxLinear, maxLinear), Y: uniform(-maxLinear, maxLinear)},
			Shape:           component.ShapeType(rng.IntN(5)),
		})
	}
	return platforms
}
