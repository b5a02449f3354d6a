package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapehopper/common"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypePlatform
)

// PhysicsSystem is the collision host for the actor core. Platforms are
// kinematic bodies that Chipmunk moves by their own velocities, with
// colliders matching their outline; actors are
// sensor circles placed wherever the core left them. Overlap begin and end
// become EnterPlatform and LeavePlatform calls, so the tracker is only ever
// changed from here, before the tick that reads it.
type PhysicsSystem struct {
	space         *cp.Space
	dt            float64
	handlersReady bool

	entities       map[ecs.Entity]*bodyInfo
	actorShapes    map[*cp.Shape]component.PlatformListener
	platformShapes map[*cp.Shape]*component.Platform
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
	actor bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:          newSpace(),
		dt:             common.TickSeconds,
		entities:       make(map[ecs.Entity]*bodyInfo),
		actorShapes:    make(map[*cp.Shape]component.PlatformListener),
		platformShapes: make(map[*cp.Shape]*component.Platform),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 1
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncActors(w)

	ps.space.Step(ps.dt)

	ps.syncPlatforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeActor, collisionTypePlatform)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if actor, platform := sys.resolvePair(arb); actor != nil && platform != nil {
			actor.EnterPlatform(platform)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		if actor, platform := sys.resolvePair(arb); actor != nil && platform != nil {
			actor.LeavePlatform(platform)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) resolvePair(arb *cp.Arbiter) (component.PlatformListener, *component.Platform) {
	shapeA, shapeB := arb.Shapes()
	actor, ok := ps.actorShapes[shapeA]
	if !ok {
		actor, ok = ps.actorShapes[shapeB]
		if !ok {
			return nil, nil
		}
		shapeA, shapeB = shapeB, shapeA
	}
	return actor, ps.platformShapes[shapeB]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Platform, bodyComp *component.PhysicsBody) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		body := cp.NewKinematicBody()
		body.SetPosition(p.Center)
		body.SetAngle(p.Rotation)
		body.SetVelocityVector(p.LinearVelocity)
		body.SetAngularVelocity(p.AngularVelocity)
		ps.space.AddBody(body)

		var collider *cp.Shape
		if verts := p.LocalVertices(); len(verts) > 0 {
			collider = cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
		} else {
			collider = cp.NewCircle(body, p.Radius, cp.Vector{})
		}
		shape := ps.space.AddShape(collider)
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypePlatform)

		ps.entities[e] = &bodyInfo{body: body, shape: shape}
		ps.platformShapes[shape] = p
		bodyComp.Body = body
		bodyComp.Shape = shape
		bodyComp.Radius = p.Radius
	})

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, a *component.Actor, bodyComp *component.PhysicsBody) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		radius := bodyComp.Radius
		if radius <= 0 {
			radius = a.Tuning.Width / 2
		}
		body := cp.NewBody(1, cp.MomentForCircle(1, 0, radius, cp.Vector{}))
		body.SetPosition(a.Position)
		ps.space.AddBody(body)

		shape := ps.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeActor)

		ps.entities[e] = &bodyInfo{body: body, shape: shape, actor: true}
		ps.actorShapes[shape] = a
		bodyComp.Body = body
		bodyComp.Shape = shape
		bodyComp.Radius = radius
	})
}

// syncActors moves each actor sensor to the pose the core committed last
// tick. The body never integrates on its own.
func (ps *PhysicsSystem) syncActors(w *ecs.World) {
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, a *component.Actor, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		bodyComp.Body.SetPosition(a.Position)
		bodyComp.Body.SetAngle(a.Rotation)
		bodyComp.Body.SetVelocityVector(cp.Vector{})
		bodyComp.Body.SetAngularVelocity(0)
	})
}

// syncPlatforms copies the stepped platform poses back so the core reads
// the same geometry the overlap test used.
func (ps *PhysicsSystem) syncPlatforms(w *ecs.World) {
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Platform, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		p.Center = bodyComp.Body.Position()
		p.Rotation = bodyComp.Body.Angle()
		bodyComp.Body.SetVelocityVector(p.LinearVelocity)
		bodyComp.Body.SetAngularVelocity(p.AngularVelocity)
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		if info.shape != nil && ps.space != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && ps.space != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.actorShapes, info.shape)
		delete(ps.platformShapes, info.shape)
		delete(ps.entities, e)
	}
}

// Reset drops every body, e.g. before a level rebuild.
func (ps *PhysicsSystem) Reset() {
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.actorShapes = make(map[*cp.Shape]component.PlatformListener)
	ps.platformShapes = make(map[*cp.Shape]*component.Platform)
}
