package system

import (
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

// SpawnFunc builds a fresh actor in w.
type SpawnFunc func(w *ecs.World) (ecs.Entity, error)

type RespawnSystem struct {
	spawn SpawnFunc
}

func NewRespawnSystem(spawn SpawnFunc) *RespawnSystem {
	return &RespawnSystem{spawn: spawn}
}

// Update tears down actors whose respawn delay has run out and spawns their
// replacement at the level start. It runs after physics so the old sensor is
// removed before the new one is created.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var ready []ecs.Entity
	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, req *component.RespawnRequest) {
		if req.Delay > 0 {
			req.Delay--
			return
		}
		ready = append(ready, e)
	})

	for _, e := range ready {
		if !ecs.Has(w, e, component.ActorTagComponent.Kind()) {
			ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
			continue
		}
		ecs.DestroyEntity(w, e)
		if s.spawn == nil {
			continue
		}

		fresh, err := s.spawn(w)
		if err != nil {
			panic("respawn: spawn actor: " + err.Error())
		}
		if session, ok := firstSession(w); ok {
			session.Attempts++
			session.GameOver = false
		}
		common.Logger().Info().Str("entity", fresh.String()).Msg("actor respawned")
	}
}
