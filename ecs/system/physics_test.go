package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPlatform(t *testing.T, w *ecs.World, p *component.Platform) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.PlatformComponent.Kind(), p))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{}))
	return e
}

func addActor(t *testing.T, w *ecs.World, a *component.Actor) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.ActorComponent.Kind(), a))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 24}))
	return e
}

func TestPhysicsOverlapDrivesTracker(t *testing.T) {
	cases := []struct {
		name  string
		shape component.ShapeType
	}{
		{"circle", component.ShapeCircle},
		{"hexagon", component.ShapeHexagon},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := newStaticPlatform(100)
			p.Shape = c.shape
			addPlatform(t, w, p)
			a := newTestActor()
			addActor(t, w, a)

			ps := NewPhysicsSystem()
			ps.Update(w)
			require.Equal(t, 1, a.Tracker.Len())
			assert.Same(t, p, a.CurrentPlatform())

			ps.Update(w)
			assert.Equal(t, 1, a.Tracker.Len())

			a.Position = cp.Vector{X: 1000}
			ps.Update(w)
			assert.Equal(t, 0, a.Tracker.Len())
		})
	}
}

func TestPhysicsMovesPlatforms(t *testing.T) {
	w := ecs.NewWorld()
	p := newStaticPlatform(50)
	p.LinearVelocity = cp.Vector{X: 60}
	p.AngularVelocity = 6
	e := addPlatform(t, w, p)

	ps := NewPhysicsSystem()
	ps.Update(w)

	assert.InDelta(t, 1, p.Center.X, 1e-9)
	assert.InDelta(t, 0.1, p.Rotation, 1e-9)

	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	assert.NotNil(t, body.Body)
	assert.Equal(t, 50.0, body.Radius)
}

func TestPhysicsRemovesDestroyedEntities(t *testing.T) {
	w := ecs.NewWorld()
	addPlatform(t, w, newStaticPlatform(100))
	a := newTestActor()
	e := addActor(t, w, a)

	ps := NewPhysicsSystem()
	ps.Update(w)
	require.Len(t, ps.entities, 2)

	w.DestroyEntity(e)
	ps.Update(w)
	assert.Len(t, ps.entities, 1)
	assert.Empty(t, ps.actorShapes)

	ps.Reset()
	assert.Empty(t, ps.entities)
	assert.NotNil(t, ps.Space())
}

func TestPhysicsResetServesTheNextLevel(t *testing.T) {
	ps := NewPhysicsSystem()

	first := ecs.NewWorld()
	addPlatform(t, first, newStaticPlatform(100))
	addActor(t, first, newTestActor())
	ps.Update(first)
	oldSpace := ps.Space()

	ps.Reset()
	assert.NotSame(t, oldSpace, ps.Space())

	next := ecs.NewWorld()
	p := newStaticPlatform(80)
	addPlatform(t, next, p)
	a := newTestActor()
	addActor(t, next, a)
	ps.Update(next)

	assert.Len(t, ps.entities, 2)
	assert.Len(t, ps.actorShapes, 1)
	assert.Same(t, p, a.CurrentPlatform())
}
