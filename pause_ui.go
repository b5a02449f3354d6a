package main

import (
	"image/color"

	"github.com/milk9111/shapehopper/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	overlayTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	overlayFace      ebtext.Face
)

func init() {
	overlayFace = ebtext.NewGoXFace(basicfont.Face7x13)
}

// NewPauseUI builds the centered pause menu. Buttons use colored
// nine-slices and the built-in basic font so no theme assets are needed.
func NewPauseUI(g *Game) *ebitenui.UI {
	panel := newOverlayPanel(common.BaseWidth/2, common.BaseHeight/2)
	panel.AddChild(newOverlayText("Paused"))
	panel.AddChild(newOverlayButton("Resume", func() {
		g.paused = false
	}))
	panel.AddChild(newOverlayButton("Restart level", func() {
		g.requestReload(false)
	}))
	panel.AddChild(newOverlayButton("Next level", func() {
		g.requestReload(true)
	}))
	panel.AddChild(newOverlayButton("Quit", func() {
		g.quit = true
	}))
	return newOverlayUI(panel)
}

// NewGameOverUI is shown while a fallen actor waits for its respawn.
func NewGameOverUI() *ebitenui.UI {
	panel := newOverlayPanel(common.BaseWidth/3, common.BaseHeight/5)
	panel.AddChild(newOverlayText("You fell"))
	panel.AddChild(newOverlayText("respawning..."))
	return newOverlayUI(panel)
}

func newOverlayPanel(minW, minH int) *widget.Container {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func newOverlayText(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &overlayFace, overlayTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func newOverlayButton(label string, onClick func()) *widget.Button {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: overlayTextColor}
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, &overlayFace, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newOverlayUI(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
