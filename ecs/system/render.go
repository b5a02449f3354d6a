package system

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	circleSegments = 40
	meterWidth     = 240
	meterHeight    = 14

	arrowOffset = 70.0
	arrowSize   = 20.0
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	hudFace       = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

var shapeColors = map[component.ShapeType]color.RGBA{
	component.ShapeCircle:   colornames.Steelblue,
	component.ShapeTriangle: colornames.Indianred,
	component.ShapeSquare:   colornames.Seagreen,
	component.ShapePentagon: colornames.Goldenrod,
	component.ShapeHexagon:  colornames.Mediumpurple,
}

// cameraView maps world coordinates to the screen.
type cameraView struct {
	x, y float64
	zoom float64
}

func newCameraView(w *ecs.World) cameraView {
	v := cameraView{zoom: 1}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.x, v.y = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		if cam.Zoom > 0 {
			v.zoom = cam.Zoom
		}
		v.x += cam.ShakeX / v.zoom
		v.y += cam.ShakeY / v.zoom
	}
	return v
}

func (v cameraView) toScreen(p cp.Vector) (float64, float64) {
	return (p.X - v.x) * v.zoom, (p.Y - v.y) * v.zoom
}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)
	view := newCameraView(w)

	platforms := w.Query(component.PlatformComponent.Kind(), component.TransformComponent.Kind())
	sort.SliceStable(platforms, func(i, j int) bool {
		li, lj := renderLayer(w, platforms[i]), renderLayer(w, platforms[j])
		if li != lj {
			return li < lj
		}
		return uint64(platforms[i]) < uint64(platforms[j])
	})
	for _, e := range platforms {
		p, ok := ecs.Get(w, e, component.PlatformComponent.Kind())
		if !ok {
			continue
		}
		drawPlatform(screen, view, p)
	}

	goal := firstGoal(w)
	if goal != nil {
		drawGoal(screen, view, goal)
	}

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Actor, t *component.Transform) {
		drawActor(screen, view, a, t)
		if goal != nil && !a.Deactivated() {
			drawGoalArrow(screen, view, goal, cp.Vector{X: t.X, Y: t.Y})
		}
	})

	r.drawHUD(w, screen)
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func drawPlatform(screen *ebiten.Image, view cameraView, p *component.Platform) {
	verts := p.Vertices(circleSegments)
	clr, ok := shapeColors[p.Shape]
	if !ok {
		clr = colornames.Slategray
	}
	fillPolygon(screen, view, verts, clr)
	for i := range verts {
		x1, y1 := view.toScreen(verts[i])
		x2, y2 := view.toScreen(verts[(i+1)%len(verts)])
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 2, colornames.Whitesmoke, true)
	}
}

// drawActor draws the actor as a disc with a facing notch. Its size follows
// the altitude scale so jumps read as height.
func drawActor(screen *ebiten.Image, view cameraView, a *component.Actor, t *component.Transform) {
	if a.Deactivated() {
		return
	}
	scale := t.ScaleX
	if scale <= 0 {
		scale = 1
	}
	radius := a.Tuning.Width / 2 * scale

	body := colornames.Orange
	if a.Control.State.Has(component.StateDead) {
		body = colornames.Dimgray
	}
	center := cp.Vector{X: t.X, Y: t.Y}
	fillPolygon(screen, view, circlePoints(center, radius), body)

	tip := center.Add(a.Facing().Mult(radius))
	x1, y1 := view.toScreen(center)
	x2, y2 := view.toScreen(tip)
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 3, colornames.Black, true)
}

func firstGoal(w *ecs.World) *component.Goal {
	e, ok := w.First(component.GoalComponent.Kind())
	if !ok {
		return nil
	}
	g, _ := ecs.Get(w, e, component.GoalComponent.Kind())
	return g
}

func drawGoal(screen *ebiten.Image, view cameraView, g *component.Goal) {
	x, y := view.toScreen(g.Point)
	r := float32(g.Radius * view.zoom)
	vector.StrokeCircle(screen, float32(x), float32(y), r, 3, colornames.Hotpink, true)
}

// drawGoalArrow points a triangle from the actor at the goal. It fades out
// as the actor closes in.
func drawGoalArrow(screen *ebiten.Image, view cameraView, g *component.Goal, from cp.Vector) {
	alpha := g.ArrowAlpha(from)
	if alpha <= 0 {
		return
	}
	dir := g.Point.Sub(from).Normalize()
	side := dir.Perp().Mult(arrowSize)
	base := from.Add(dir.Mult(arrowOffset))
	verts := []cp.Vector{base.Add(side), base.Add(dir.Mult(arrowSize)), base.Sub(side)}
	fillPolygon(screen, view, verts, fadeRGBA(colornames.Hotpink, alpha))
}

// fadeRGBA scales a premultiplied color by alpha.
func fadeRGBA(c color.RGBA, alpha float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float64(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	if session, ok := firstSession(w); ok {
		label := fmt.Sprintf("%s  attempt %d  cleared %d", session.Level, session.Attempts+1, session.Cleared)
		if session.Beaten {
			label += "  level complete"
		} else if !session.HasGoal {
			label += "  (no goal)"
		}
		drawText(screen, label, 10, 10, colornames.White)
	}

	ecs.ForEach(w, component.JumpMeterComponent.Kind(), func(e ecs.Entity, m *component.JumpMeter) {
		x := float32(common.BaseWidth-meterWidth) / 2
		y := float32(common.BaseHeight - 40)
		vector.StrokeRect(screen, x, y, meterWidth, meterHeight, 2, colornames.White, false)
		fill := colornames.Limegreen
		if m.Saturated || m.Flash > 0 {
			fill = colornames.Gold
		}
		vector.FillRect(screen, x+2, y+2, float32(common.Clamp(m.Fraction, 0, 1))*(meterWidth-4), meterHeight-4, fill, false)
	})

	ecs.ForEach(w, component.FadeComponent.Kind(), func(e ecs.Entity, f *component.Fade) {
		alpha := uint8(common.Clamp(f.Alpha(), 0, 1) * 255)
		vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, color.NRGBA{A: alpha}, false)
	})
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

func circlePoints(center cp.Vector, radius float64) []cp.Vector {
	p := component.Platform{Circumcircle: component.Circumcircle{Center: center, Radius: radius}}
	return p.Vertices(circleSegments)
}

// fillPolygon fills a convex outline as a triangle fan.
func fillPolygon(screen *ebiten.Image, view cameraView, verts []cp.Vector, clr color.RGBA) {
	if len(verts) < 3 {
		return
	}
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	vs := make([]ebiten.Vertex, 0, len(verts))
	for _, p := range verts {
		x, y := view.toScreen(p)
		vs = append(vs, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	is := make([]uint16, 0, (len(verts)-2)*3)
	for i := 1; i < len(verts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}
