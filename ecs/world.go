package ecs

import "github.com/milk9111/shapehopper/ecs/component"

// World owns entities, their components and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and recycles its id.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in creation-slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// AddComponent stores value for e under the component id, replacing any
// previous value.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	store, ok := w.stores[id]
	if !ok {
		store = newSparseSet()
		w.stores[id] = store
	}
	store.Set(e, value)
	return nil
}

// GetComponent returns the raw value stored for e under id.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.stores[id].Get(e)
	return v, v != nil
}

// HasComponent reports whether e has a value under id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	_, ok := w.GetComponent(e, id)
	return ok
}

// RemoveComponent deletes the value stored for e under id.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.stores[id].Remove(e.id())
}

// Query returns the live entities holding every one of kinds.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok || store.Len() == 0 {
			return nil
		}
		sets = append(sets, store)
	}
	// iterate the smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	var out []Entity
	for _, e := range sets[smallest].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for i, s := range sets {
			if i != smallest && s.Get(e) == nil {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity holding kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, e := range w.stores[kind.ID()].Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
