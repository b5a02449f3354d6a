package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Circumcircle is the only geometry the movement model needs from a platform.
type Circumcircle struct {
	Center cp.Vector
	Radius float64
}

type ShapeType int

const (
	ShapeCircle ShapeType = iota
	ShapeTriangle
	ShapeSquare
	ShapePentagon
	ShapeHexagon
)

var shapeTypeNames = map[ShapeType]string{
	ShapeCircle:   "circle",
	ShapeTriangle: "triangle",
	ShapeSquare:   "square",
	ShapePentagon: "pentagon",
	ShapeHexagon:  "hexagon",
}

func (s ShapeType) String() string {
	if n, ok := shapeTypeNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseShapeType maps a prefab/level name to a ShapeType; unknown names are
// circles.
func ParseShapeType(name string) ShapeType {
	for t, n := range shapeTypeNames {
		if n == name {
			return t
		}
	}
	return ShapeCircle
}

// Sides returns the polygon side count, or 0 for a circle.
func (s ShapeType) Sides() int {
	switch s {
	case ShapeTriangle:
		return 3
	case ShapeSquare:
		return 4
	case ShapePentagon:
		return 5
	case ShapeHexagon:
		return 6
	}
	return 0
}

// Platform is a moving surface the actor can stand on.
type Platform struct {
	Circumcircle
	ZOrder          int
	LinearVelocity  cp.Vector
	AngularVelocity float64
	// Rotation and Shape only matter to colliders and rendering.
	Rotation float64
	Shape    ShapeType
}

var PlatformComponent = NewComponent[Platform]()

// Vertices returns the platform outline in world space, inscribed in the
// circumcircle. Circles are approximated with segments points.
func (p *Platform) Vertices(segments int) []cp.Vector {
	n := p.Shape.Sides()
	if n == 0 {
		n = segments
	}
	if n < 3 {
		n = 3
	}
	verts := make([]cp.Vector, n)
	for i := range verts {
		a := p.Rotation + float64(i)*2*math.Pi/float64(n)
		verts[i] = p.Center.Add(cp.ForAngle(a).Mult(p.Radius))
	}
	return verts
}

// LocalVertices is the collider outline relative to the body at rotation 0.
// Circles have none.
func (p *Platform) LocalVertices() []cp.Vector {
	n := p.Shape.Sides()
	if n == 0 {
		return nil
	}
	verts := make([]cp.Vector, n)
	for i := range verts {
		verts[i] = cp.ForAngle(float64(i) * 2 * math.Pi / float64(n)).Mult(p.Radius)
	}
	return verts
}
