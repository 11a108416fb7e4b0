package obj

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/ratracegame/ratrace/common"
	"github.com/ratracegame/ratrace/prefabs"
)

const (
	enemyHopVelocity = -8.0
	enemyHopCooldown = 90
)

// Enemy is a patrolling hazard. Walkers pace a span of ground or platform;
// flyers bob along a horizontal track. Behavior decisions (turning,
// rushing the player) come from the shared tengo brain.
type Enemy struct {
	common.Rect
	Dead   bool
	Flying bool

	dir        float64
	minX, maxX float64
	baseY      float64
	phase      float64
	vy         float64
	hops       bool
	hopTimer   int

	spec      *prefabs.EnemySpec
	brain     *Brain
	fill      color.NRGBA
	img       *ebiten.Image
	errLogged bool
}

// NewWalker creates a ground enemy pacing [minX, maxX].
func NewWalker(x, y, minX, maxX float64, spec *prefabs.EnemySpec, brain *Brain, fill color.NRGBA) *Enemy {
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	return &Enemy{
		Rect:  common.Rect{X: x, Y: y, Width: spec.Width, Height: spec.Height},
		dir:   1,
		minX:  minX,
		maxX:  maxX,
		baseY: y,
		spec:  spec,
		brain: brain,
		fill:  fill,
	}
}

// NewFlyer creates an airborne enemy bobbing around y while patrolling its
// configured range on either side of x.
func NewFlyer(x, y float64, spec *prefabs.EnemySpec, brain *Brain, fill color.NRGBA) *Enemy {
	return &Enemy{
		Rect:   common.Rect{X: x, Y: y, Width: spec.Width, Height: spec.Height},
		Flying: true,
		dir:    1,
		minX:   x - spec.PatrolRange,
		maxX:   x + spec.PatrolRange,
		baseY:  y,
		phase:  math.Mod(x, math.Pi*2),
		spec:   spec,
		brain:  brain,
		fill:   fill,
	}
}

// SetHops enables the periodic hop used by themed levels where enemies
// jump. Flyers ignore it.
func (e *Enemy) SetHops(on bool) {
	if e == nil || e.Flying {
		return
	}
	e.hops = on
}

func (e *Enemy) Update(playerX float64) {
	if e == nil || e.Dead {
		return
	}

	speedMult := 1.0
	if e.brain != nil {
		dir, mult, err := e.brain.Think(e.X, e.dir, e.minX, e.maxX, playerX, e.spec.AggroRange)
		if err != nil {
			if !e.errLogged {
				log.Error("enemy behavior script failed", "err", err)
				e.errLogged = true
			}
		} else {
			e.dir = dir
			speedMult = mult
		}
	} else {
		if e.X <= e.minX {
			e.dir = 1
		} else if e.X >= e.maxX {
			e.dir = -1
		}
	}

	e.X += e.dir * e.spec.MoveSpeed * speedMult
	e.X = common.Clamp(e.X, e.minX, e.maxX)

	if e.Flying {
		e.phase += e.spec.BobFrequency
		e.Y = e.baseY + math.Sin(e.phase)*e.spec.BobAmplitude
		return
	}

	if e.hops {
		if e.hopTimer > 0 {
			e.hopTimer--
		}
		if e.Y >= e.baseY && e.hopTimer == 0 {
			e.vy = enemyHopVelocity
			e.hopTimer = enemyHopCooldown
		}
	}
	if e.vy != 0 || e.Y < e.baseY {
		e.vy += common.Gravity
		e.Y += e.vy
		if e.Y >= e.baseY {
			e.Y = e.baseY
			e.vy = 0
		}
	}
}

// Stomp kills the enemy.
func (e *Enemy) Stomp() {
	if e == nil {
		return
	}
	e.Dead = true
}

func (e *Enemy) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if e == nil || e.Dead {
		return
	}
	if e.img == nil {
		e.img = ebiten.NewImage(int(e.Width), int(e.Height))
		e.img.Fill(e.fill)
		eye := ebiten.NewImage(5, 5)
		eye.Fill(colornames.White)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(4, 6)
		e.img.DrawImage(eye, op)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(e.Width-9, 6)
		e.img.DrawImage(eye, op)
	}

	op := &ebiten.DrawImageOptions{}
	if e.dir < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(e.Width, 0)
	}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((e.X-camX)*zoom, (e.Y-camY)*zoom)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(e.img, op)
}
