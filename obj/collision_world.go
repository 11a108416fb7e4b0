package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/ratracegame/ratrace/common"
	"github.com/ratracegame/ratrace/levelgen"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
	collisionTypeCloud
)

const groundGraceFrames = 6

// CollisionWorld wraps a chipmunk space built from a generated platform
// layout: one static box per platform, kinematic bodies for moving
// platforms, and a sensor-based grounded check for the player.
type CollisionWorld struct {
	space  *cp.Space
	width  float64
	height float64

	moving []*Platform

	playerBody   *cp.Body
	playerShape  *cp.Shape
	groundShape  *cp.Shape
	playerHeight float64

	grounded    bool
	groundKind  levelgen.Kind
	groundGrace int

	handlersReady bool
}

func NewCollisionWorld(width, height int, platforms []*Platform) *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	cw := &CollisionWorld{
		space:  space,
		width:  float64(width),
		height: float64(height),
	}
	cw.buildShapes(platforms)
	return cw
}

func (cw *CollisionWorld) buildShapes(platforms []*Platform) {
	if cw == nil || cw.space == nil {
		return
	}

	for _, p := range platforms {
		if p == nil {
			continue
		}
		w := float64(p.Spec.Width)
		h := float64(p.Spec.Height)

		if p.Spec.Kind == levelgen.KindMoving {
			body := cp.NewKinematicBody()
			body.SetPosition(cp.Vector{X: p.X + w/2, Y: p.Y + h/2})
			shape := cp.NewBox(body, w, h, 0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			shape.UserData = p
			cw.space.AddBody(body)
			cw.space.AddShape(shape)
			p.body = body
			cw.moving = append(cw.moving, p)
			continue
		}

		bb := cp.BB{L: p.X, B: p.Y, R: p.X + w, T: p.Y + h}
		shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
		shape.SetFriction(0.8)
		if p.Spec.Kind == levelgen.KindCloud {
			shape.SetCollisionType(collisionTypeCloud)
		} else {
			shape.SetCollisionType(collisionTypeSolid)
		}
		shape.UserData = p
		cw.space.AddShape(shape)
	}

	// Side walls and a ceiling. No floor segment: falling past the level
	// bottom is how the player dies into a hole.
	if cw.width > 0 && cw.height > 0 {
		segments := []struct {
			a cp.Vector
			b cp.Vector
		}{
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: cw.width, Y: 0}},
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: cw.height}},
			{a: cp.Vector{X: cw.width, Y: 0}, b: cp.Vector{X: cw.width, Y: cw.height}},
		}
		for _, seg := range segments {
			shape := cp.NewSegment(cw.space.StaticBody, seg.a, seg.b, 1.0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			cw.space.AddShape(shape)
		}
	}
}

func (cw *CollisionWorld) AttachPlayer(p *Player) {
	if cw == nil || cw.space == nil || p == nil {
		return
	}
	if cw.playerBody != nil {
		return
	}

	mass := 1.0
	moment := cp.MomentForBox(mass, p.Width, p.Height)
	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: p.X + p.Width/2, Y: p.Y + p.Height/2})
	shape := cp.NewBox(body, p.Width, p.Height, 0)
	shape.SetFriction(0.0)
	shape.SetCollisionType(collisionTypePlayer)

	groundBB := cp.BB{
		L: -p.Width * 0.45,
		B: p.Height / 2.0,
		R: p.Width * 0.45,
		T: p.Height/2.0 + 2,
	}
	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypePlayerGround)

	cw.space.AddBody(body)
	cw.space.AddShape(shape)
	cw.space.AddShape(groundShape)

	cw.playerBody = body
	cw.playerShape = shape
	cw.groundShape = groundShape
	cw.playerHeight = p.Height
	p.body = body

	cw.setupHandlers()
}

func (cw *CollisionWorld) setupHandlers() {
	if cw.handlersReady || cw.space == nil {
		return
	}

	markGrounded := func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*CollisionWorld)
		if !ok || world == nil {
			return true
		}
		world.grounded = true
		world.groundGrace = groundGraceFrames
		a, b := arb.Shapes()
		for _, s := range []*cp.Shape{a, b} {
			if plat, ok := s.UserData.(*Platform); ok && plat != nil {
				world.groundKind = plat.Spec.Kind
			}
		}
		return true
	}

	groundHandler := cw.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = cw
	groundHandler.PreSolveFunc = markGrounded

	cloudGroundHandler := cw.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeCloud)
	cloudGroundHandler.UserData = cw
	cloudGroundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*CollisionWorld)
		if !ok || world == nil || world.playerBody == nil {
			return true
		}
		// Only grounded on a cloud while not rising through it.
		if world.playerBody.Velocity().Y >= -0.1 {
			return markGrounded(arb, space, userData)
		}
		return true
	}

	// Clouds are one-way: solid from above, passable from below.
	cloudHandler := cw.space.NewCollisionHandler(collisionTypePlayer, collisionTypeCloud)
	cloudHandler.UserData = cw
	cloudHandler.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*CollisionWorld)
		if !ok || world == nil || world.playerBody == nil {
			return true
		}
		if world.playerBody.Velocity().Y < 0 {
			return false
		}
		a, b := arb.Shapes()
		for _, s := range []*cp.Shape{a, b} {
			plat, ok := s.UserData.(*Platform)
			if !ok || plat == nil {
				continue
			}
			feet := world.playerBody.Position().Y + world.playerHeight/2
			// Already inside or below the cloud surface: let the player
			// pass instead of snagging mid-platform.
			if feet > plat.Y+6 {
				return false
			}
		}
		return true
	}

	cw.handlersReady = true
}

// BeginStep resets per-frame contact flags. Call once per frame before
// applying input forces.
func (cw *CollisionWorld) BeginStep() {
	if cw == nil {
		return
	}
	if cw.groundGrace > 0 {
		cw.groundGrace--
	}
	cw.grounded = false
	cw.groundKind = levelgen.KindNormal
}

// Step advances moving platforms and the physics space by dt frames.
func (cw *CollisionWorld) Step(dt float64) {
	if cw == nil || cw.space == nil {
		return
	}
	for _, p := range cw.moving {
		p.updateMotion()
	}
	cw.space.Step(dt)
	for _, p := range cw.moving {
		p.syncFromBody()
	}
}

func (cw *CollisionWorld) IsGrounded() bool {
	if cw == nil {
		return false
	}
	return cw.grounded || cw.groundGrace > 0
}

// GroundKind reports what the player most recently stood on. Only valid
// while IsGrounded.
func (cw *CollisionWorld) GroundKind() levelgen.Kind {
	if cw == nil {
		return levelgen.KindNormal
	}
	return cw.groundKind
}

// SetGravityScale scales gravity from the shared default, for themed
// low-gravity levels.
func (cw *CollisionWorld) SetGravityScale(scale float64) {
	if cw == nil || cw.space == nil || scale <= 0 {
		return
	}
	cw.space.SetGravity(cp.Vector{X: 0, Y: common.Gravity * scale})
}
