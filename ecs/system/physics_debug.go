package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DrawPhysicsDebug outlines every collider in the space, actors in yellow
// and platforms in green.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}

	drawer := &physicsDebugDrawer{screen: screen, view: newCameraView(w)}
	cp.DrawSpace(space, drawer)
	drawStandingRims(w, drawer)
}

// drawStandingRims marks, for each actor, the circle its position has to be
// inside for a platform to count as current.
func drawStandingRims(w *ecs.World, d *physicsDebugDrawer) {
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		current := a.CurrentPlatform()
		for _, p := range a.Tracker.Overlapping() {
			clr := cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.7}
			if p == current {
				clr = cp.FColor{R: 1, G: 0.3, B: 0.9, A: 0.9}
			}
			d.drawCircle(p.Center, p.Radius-a.Tracker.Width*0.2, clr)
		}
	})
}

// DrawActorDebug prints the actor core state in the top-left corner.
func DrawActorDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	e, ok := w.First(component.ActorTagComponent.Kind())
	if !ok {
		return
	}
	a, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return
	}

	current := "none"
	if p := a.CurrentPlatform(); p != nil {
		current = fmt.Sprintf("%s z=%d", p.Shape, p.ZOrder)
	}
	text := fmt.Sprintf(
		"State: %s\nAltitude: %.2f  VV: %.2f  Scale: %.2f\nJump: %.2f\nGround: %.1f  Air: %.1f\nPlatform: %s (%d overlapping)\nTransitions: %s",
		a.Control.State,
		a.Altitude, a.VerticalVelocity, a.Scale,
		a.Control.JumpStrength,
		a.Control.GroundLinearVelocity.Length(), a.Control.AirLinearVelocity.Length(),
		current, a.Tracker.Len(),
		a.Tuning.Transitions,
	)
	ebitenutil.DebugPrintAt(screen, text, 10, 40)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   cameraView
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	d.drawLine(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Body().GetType() == cp.BODY_DYNAMIC {
		return cp.FColor{R: 1, G: 0.9, B: 0.1, A: 0.6}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, clr cp.FColor) {
	x1, y1 := d.view.toScreen(a)
	x2, y2 := d.view.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(clr), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, clr cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], clr)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, clr cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, center.Add(cp.ForAngle(t).Mult(radius)))
	}
	d.drawPolygon(points, clr)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
