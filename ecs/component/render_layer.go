package component

// RenderLayer sorts draw order. Platforms use their z-order so the one an
// actor stands on is drawn on top.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
