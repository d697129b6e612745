package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapeshift/common"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
	collisionTypeCollectible
)

const (
	solidFriction   = 0.8
	groundSensorPad = 2.0
)

// PhysicsSystem owns the Chipmunk space. It is the world's physics
// collaborator: builders register bodies through it, and each Update runs
// one fixed step.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities      map[ecs.Entity]*bodyInfo
	shapeEntities map[*cp.Shape]ecs.Entity
	players       map[ecs.Entity]*playerBody

	// Callbacks run while the space is locked; events wait here until the
	// step returns.
	pending []ecs.CollisionEvent
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return &PhysicsSystem{
		space:         space,
		entities:      make(map[ecs.Entity]*bodyInfo),
		shapeEntities: make(map[*cp.Shape]ecs.Entity),
		players:       make(map[ecs.Entity]*playerBody),
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.prepareBodies()

	ps.space.Step(1.0)

	ps.settleBodies()
	ps.syncTransforms(w)
	ps.flushEvents(w)
}

// AddPlayer creates the dynamic player body centered on x, y with rotation
// locked.
func (ps *PhysicsSystem) AddPlayer(e ecs.Entity, x, y float64, c component.Collider) component.Body {
	if ps == nil || ps.space == nil {
		return nil
	}
	ps.Remove(e)

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(0)
	body.SetAngularVelocity(0)

	pb := &playerBody{
		ps:           ps,
		entity:       e,
		body:         body,
		gravityScale: 1,
	}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(pb.gravityScale), damping, dt)
	})

	ps.space.AddBody(body)
	ps.entities[e] = &bodyInfo{body: body}
	ps.players[e] = pb
	pb.attachShapes(c)
	return pb
}

// AddPlatform adds a static solid box with its top-left corner at x, y.
func (ps *PhysicsSystem) AddPlatform(e ecs.Entity, x, y, width, height float64) {
	ps.addStaticBox(e, x, y, width, height, collisionTypeSolid, false)
}

// AddSensor adds a static sensor box with its top-left corner at x, y. Overlaps
// with the player are reported as collision events.
func (ps *PhysicsSystem) AddSensor(e ecs.Entity, x, y, width, height float64) {
	ps.addStaticBox(e, x, y, width, height, collisionTypeCollectible, true)
}

func (ps *PhysicsSystem) addStaticBox(e ecs.Entity, x, y, width, height float64, ct cp.CollisionType, sensor bool) {
	if ps == nil || ps.space == nil || width <= 0 || height <= 0 {
		return
	}
	ps.Remove(e)

	bb := cp.BB{L: x, B: y, R: x + width, T: y + height}
	shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
	shape.SetFriction(solidFriction)
	shape.SetElasticity(0)
	shape.SetCollisionType(ct)
	shape.SetSensor(sensor)
	ps.space.AddShape(shape)

	ps.shapeEntities[shape] = e
	ps.entities[e] = &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
}

// Remove drops every shape and body registered for e.
func (ps *PhysicsSystem) Remove(e ecs.Entity) {
	if ps == nil {
		return
	}
	info, ok := ps.entities[e]
	if !ok {
		return
	}
	if pb := ps.players[e]; pb != nil {
		info.shapes = pb.shapes()
	}
	for _, shape := range info.shapes {
		delete(ps.shapeEntities, shape)
	}
	for _, shape := range info.shapes {
		if shape != nil && ps.space != nil {
			ps.space.RemoveShape(shape)
		}
	}
	if info.body != nil && !info.static && ps.space != nil {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)
	delete(ps.players, e)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, okA := sys.shapeEntities[shapeA]
		if !okA {
			var okB bool
			e, okB = sys.shapeEntities[shapeB]
			if !okB {
				return true
			}
		}
		if pb := sys.players[e]; pb != nil {
			pb.contact = true
		}
		return true
	}

	pickupHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeCollectible)
	pickupHandler.UserData = ps
	pickupHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordSensorEvent(arb, ecs.CollisionStarted)
		}
		return true
	}
	pickupHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordSensorEvent(arb, ecs.CollisionStopped)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) recordSensorEvent(arb *cp.Arbiter, phase ecs.CollisionPhase) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapeEntities[shapeA]
	b, okB := ps.shapeEntities[shapeB]
	if !okA || !okB {
		return
	}
	ps.pending = append(ps.pending, ecs.CollisionEvent{
		Phase: phase,
		A:     a,
		B:     b,
		Flags: ecs.CollisionSensor,
	})
}

// prepareBodies turns this tick's translation requests into velocity for a
// one-tick step and clears ground contact so the step can re-detect it.
func (ps *PhysicsSystem) prepareBodies() {
	for _, pb := range ps.players {
		vel := pb.body.Velocity()
		pb.body.SetVelocity(pb.moveX, vel.Y)
		if pb.moveY != 0 {
			pos := pb.body.Position()
			pb.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y + pb.moveY})
		}
		pb.moveX, pb.moveY = 0, 0
		pb.contact = false
	}
}

func (ps *PhysicsSystem) settleBodies() {
	for _, pb := range ps.players {
		pb.grounded = pb.contact
		vel := pb.body.Velocity()
		pb.body.SetVelocity(0, vel.Y)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	p, ok := w.Player()
	if !ok {
		return
	}
	pb, ok := ps.players[p.Entity]
	if !ok {
		return
	}
	pos := pb.body.Position()
	p.Transform.X = pos.X
	p.Transform.Y = pos.Y
	p.Transform.Rotation = pb.body.Angle()
}

func (ps *PhysicsSystem) flushEvents(w *ecs.World) {
	for _, evt := range ps.pending {
		w.Collisions.Push(evt)
	}
	ps.pending = ps.pending[:0]
}

// playerBody adapts a Chipmunk body to component.Body.
type playerBody struct {
	ps     *PhysicsSystem
	entity ecs.Entity
	body   *cp.Body
	shape  *cp.Shape
	ground *cp.Shape

	collider     component.Collider
	gravityScale float64

	grounded bool
	contact  bool

	moveX float64
	moveY float64
}

func (pb *playerBody) Grounded() bool {
	return pb.grounded
}

// Translate accumulates a displacement for the next step. Horizontal motion
// becomes velocity so walls still block it.
func (pb *playerBody) Translate(dx, dy float64) {
	pb.moveX += dx
	pb.moveY += dy
}

func (pb *playerBody) SetVelocity(x, y float64) {
	pb.body.SetVelocity(x, y)
}

func (pb *playerBody) Velocity() (float64, float64) {
	v := pb.body.Velocity()
	return v.X, v.Y
}

func (pb *playerBody) Position() (float64, float64) {
	p := pb.body.Position()
	return p.X, p.Y
}

// ReplaceCollider swaps in a box of the new size, keeping the feet where they
// were so a taller form does not sink into the floor.
func (pb *playerBody) ReplaceCollider(c component.Collider) {
	if c.Width <= 0 || c.Height <= 0 {
		return
	}
	if pb.shape != nil {
		pos := pb.body.Position()
		dy := (pb.collider.Height - c.Height) / 2
		pb.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y + dy})
	}
	pb.detachShapes()
	pb.attachShapes(c)
}

func (pb *playerBody) SetGravityScale(scale float64) {
	pb.gravityScale = scale
}

func (pb *playerBody) Collider() component.Collider {
	return pb.collider
}

func (pb *playerBody) GravityScale() float64 {
	return pb.gravityScale
}

func (pb *playerBody) shapes() []*cp.Shape {
	out := make([]*cp.Shape, 0, 2)
	if pb.shape != nil {
		out = append(out, pb.shape)
	}
	if pb.ground != nil {
		out = append(out, pb.ground)
	}
	return out
}

func (pb *playerBody) attachShapes(c component.Collider) {
	space := pb.ps.space
	pb.collider = c

	shape := cp.NewBox(pb.body, c.Width, c.Height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)
	space.AddShape(shape)
	pb.shape = shape
	pb.ps.shapeEntities[shape] = pb.entity

	groundBB := cp.BB{
		L: -c.Width * 0.45,
		B: c.Height / 2.0,
		R: c.Width * 0.45,
		T: c.Height/2.0 + groundSensorPad,
	}
	ground := cp.NewBox2(pb.body, groundBB, 0)
	ground.SetSensor(true)
	ground.SetCollisionType(collisionTypePlayerGround)
	space.AddShape(ground)
	pb.ground = ground
	pb.ps.shapeEntities[ground] = pb.entity
}

func (pb *playerBody) detachShapes() {
	space := pb.ps.space
	for _, shape := range pb.shapes() {
		delete(pb.ps.shapeEntities, shape)
		space.RemoveShape(shape)
	}
	pb.shape = nil
	pb.ground = nil
}

var _ ecs.PhysicsWorld = (*PhysicsSystem)(nil)
var _ component.Body = (*playerBody)(nil)
