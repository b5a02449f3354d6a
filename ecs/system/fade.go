package system

import (
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

// FadeSystem counts fades down; a finished fade stays at full opacity until
// its entity goes away.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem {
	return &FadeSystem{}
}

func (s *FadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.FadeComponent.Kind(), func(e ecs.Entity, f *component.Fade) {
		if f.Frames > 0 {
			f.Frames--
		}
	})

	ecs.ForEach(w, component.JumpMeterComponent.Kind(), func(e ecs.Entity, m *component.JumpMeter) {
		if m.Flash > 0 {
			m.Flash--
		}
	})
}
