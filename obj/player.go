package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/ratracegame/ratrace/common"
	"github.com/ratracegame/ratrace/levelgen"
	"github.com/ratracegame/ratrace/prefabs"
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Enter(p *Player)
	Exit(p *Player)
	HandleInput(p *Player)
	OnPhysics(p *Player)
	Name() string
}

const (
	jumpCutVelocity = -4.0
	// How hard ice fights direction changes: velocity eases toward the
	// target instead of snapping.
	iceLerpFactor = 0.12
)

func (p *Player) setState(s playerState) {
	p.state.Exit(p)
	p.state = s
	p.state.Enter(p)
}

type idleState struct{}

func (idleState) Name() string   { return "idle" }
func (idleState) Enter(p *Player) {}
func (idleState) Exit(p *Player)  {}
func (idleState) HandleInput(p *Player) {
	if p.Input.JumpPressed {
		p.setState(stateJumping)
		return
	}
	if p.Input.MoveX != 0 {
		p.setState(stateRunning)
	}
}
func (idleState) OnPhysics(p *Player) {
	p.applyMoveX()
	if !p.CollisionWorld.IsGrounded() {
		p.setState(stateFalling)
	}
}

type runningState struct{}

func (runningState) Name() string   { return "running" }
func (runningState) Enter(p *Player) {}
func (runningState) Exit(p *Player)  {}
func (runningState) HandleInput(p *Player) {
	if p.Input.JumpPressed {
		p.setState(stateJumping)
		return
	}
	if p.Input.MoveX == 0 {
		p.setState(stateIdle)
	}
}
func (runningState) OnPhysics(p *Player) {
	p.applyMoveX()
	if !p.CollisionWorld.IsGrounded() {
		p.setState(stateFalling)
	}
}

type jumpingState struct{}

func (jumpingState) Name() string { return "jumping" }
func (jumpingState) Enter(p *Player) {
	v := p.body.Velocity()
	p.body.SetVelocity(v.X, p.spec.JumpImpulse)
	if p.OnJump != nil {
		p.OnJump()
	}
}
func (jumpingState) Exit(p *Player) {}
func (jumpingState) HandleInput(p *Player) {
	if p.Input.JumpPressed {
		p.bufferJump()
	}
}
func (jumpingState) OnPhysics(p *Player) {
	p.applyMoveX()
	if p.body.Velocity().Y > 0 {
		p.setState(stateFalling)
	}
}

type fallingState struct{}

func (fallingState) Name() string   { return "falling" }
func (fallingState) Enter(p *Player) {}
func (fallingState) Exit(p *Player)  {}
func (fallingState) HandleInput(p *Player) {
	if p.Input.JumpPressed {
		if p.coyoteTimer > 0 {
			p.coyoteTimer = 0
			p.setState(stateJumping)
			return
		}
		p.bufferJump()
	}
}
func (fallingState) OnPhysics(p *Player) {
	p.applyMoveX()
	if p.CollisionWorld.IsGrounded() {
		if p.Input.MoveX != 0 {
			p.setState(stateRunning)
		} else {
			p.setState(stateIdle)
		}
	}
}

// singletons for each state to avoid allocating on every transition
var (
	stateIdle    playerState = idleState{}
	stateRunning playerState = runningState{}
	stateJumping playerState = jumpingState{}
	stateFalling playerState = fallingState{}
)

type Player struct {
	common.Rect
	Input          *Input
	CollisionWorld *CollisionWorld

	// OnJump fires when a jump starts, for sound hooks.
	OnJump func()

	body *cp.Body
	spec *prefabs.PlayerSpec

	state           playerState
	facingRight     bool
	coyoteTimer     int
	jumpBuffer      bool
	jumpBufferTimer int
	prevJumpHeld    bool

	// slippery forces ice handling on every surface (level quirk).
	slippery bool

	starTimer int
	frames    int

	img     *ebiten.Image
	starImg *ebiten.Image
}

func NewPlayer(x, y float64, spec *prefabs.PlayerSpec, input *Input, collisionWorld *CollisionWorld) *Player {
	p := &Player{
		Rect: common.Rect{
			X:      x,
			Y:      y,
			Width:  spec.Width,
			Height: spec.Height,
		},
		Input:          input,
		CollisionWorld: collisionWorld,
		spec:           spec,
		state:          stateIdle,
		facingRight:    true,
	}
	p.state.Enter(p)
	if p.CollisionWorld != nil {
		p.CollisionWorld.AttachPlayer(p)
	}
	return p
}

// SetSlippery applies the level quirk that makes every surface behave like ice.
func (p *Player) SetSlippery(on bool) {
	if p == nil {
		return
	}
	p.slippery = on
}

// Update runs input handling and state transitions. Physics integration
// happens afterwards in the world step; call PostPhysics once it ran.
func (p *Player) Update() {
	p.frames++

	if p.Input.MoveX < 0 {
		p.facingRight = false
	} else if p.Input.MoveX > 0 {
		p.facingRight = true
	}

	if p.jumpBuffer {
		p.jumpBufferTimer--
		if p.jumpBufferTimer <= 0 {
			p.jumpBuffer = false
		}
	}
	if p.starTimer > 0 {
		p.starTimer--
	}

	p.state.HandleInput(p)

	if p.prevJumpHeld && !p.Input.JumpHeld {
		p.applyJumpCut()
	}
	p.prevJumpHeld = p.Input.JumpHeld

	p.state.OnPhysics(p)

	if p.CollisionWorld.IsGrounded() {
		p.coyoteTimer = p.spec.CoyoteFrames
	} else if p.coyoteTimer > 0 {
		p.coyoteTimer--
	}

	// Apply a buffered jump the moment we land.
	if p.jumpBuffer && p.CollisionWorld.IsGrounded() {
		p.jumpBuffer = false
		p.setState(stateJumping)
	}
}

// PostPhysics syncs the rect from the physics body after the space stepped.
func (p *Player) PostPhysics() {
	if p.body == nil {
		return
	}
	p.body.SetAngle(0)
	p.body.SetAngularVelocity(0)

	pos := p.body.Position()
	p.X = pos.X - p.Width/2
	p.Y = pos.Y - p.Height/2
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		p.Respawn(0, 0)
	}
}

func (p *Player) bufferJump() {
	p.jumpBuffer = true
	p.jumpBufferTimer = p.spec.JumpBufferFrames
}

func (p *Player) applyJumpCut() {
	if p.state != stateJumping {
		return
	}
	v := p.body.Velocity()
	if v.Y < jumpCutVelocity {
		p.body.SetVelocity(v.X, jumpCutVelocity)
	}
}

func (p *Player) applyMoveX() {
	target := float64(p.Input.MoveX) * p.spec.MoveSpeed * p.speedFactor()
	v := p.body.Velocity()
	if p.onIce() {
		p.body.SetVelocity(common.Lerp(v.X, target, iceLerpFactor), v.Y)
		return
	}
	p.body.SetVelocity(target, v.Y)
}

func (p *Player) onIce() bool {
	if p.slippery {
		return true
	}
	return p.CollisionWorld.IsGrounded() && p.CollisionWorld.GroundKind() == levelgen.KindIce
}

// Bounce kicks the player upward after a stomp, proportionally stronger
// than a plain jump so chained stomps gain height.
func (p *Player) Bounce() {
	if p == nil || p.body == nil {
		return
	}
	p.setState(stateJumping)
	v := p.body.Velocity()
	p.body.SetVelocity(v.X, p.spec.JumpImpulse*p.spec.StompBounce)
}

// ActivateStar starts the invincibility window.
func (p *Player) ActivateStar() {
	if p == nil {
		return
	}
	p.starTimer = p.spec.StarFrames
}

func (p *Player) StarActive() bool {
	return p != nil && p.starTimer > 0
}

func (p *Player) speedFactor() float64 {
	if p.StarActive() {
		return p.spec.StarSpeedFactor
	}
	return 1.0
}

// Respawn teleports the player and zeroes motion, for checkpoint restarts.
func (p *Player) Respawn(x, y float64) {
	p.X = x
	p.Y = y
	p.jumpBuffer = false
	p.starTimer = 0
	p.setState(stateIdle)
	if p.body != nil {
		p.body.SetPosition(cp.Vector{X: x + p.Width/2, Y: y + p.Height/2})
		p.body.SetVelocity(0, 0)
		p.body.SetAngularVelocity(0)
	}
}

// VelocityY is the body's vertical velocity, positive downward.
func (p *Player) VelocityY() float64 {
	if p == nil || p.body == nil {
		return 0
	}
	return p.body.Velocity().Y
}

func (p *Player) State() string {
	if p.state != nil {
		return p.state.Name()
	}
	return "nil"
}

func (p *Player) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if p == nil {
		return
	}
	if p.img == nil {
		p.img = ebiten.NewImage(int(p.Width), int(p.Height))
		p.img.Fill(colornames.Crimson)
		eye := ebiten.NewImage(4, 4)
		eye.Fill(colornames.White)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.Width-10, 8)
		p.img.DrawImage(eye, op)

		p.starImg = ebiten.NewImage(int(p.Width), int(p.Height))
		p.starImg.Fill(colornames.Gold)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.Width-10, 8)
		p.starImg.DrawImage(eye, op)
	}

	img := p.img
	if p.StarActive() && (p.frames/4)%2 == 0 {
		img = p.starImg
	}

	op := &ebiten.DrawImageOptions{}
	if !p.facingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(p.Width, 0)
	}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(math.Round((p.X-camX)*zoom), math.Round((p.Y-camY)*zoom))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}
