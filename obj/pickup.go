package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/ratracegame/ratrace/common"
)

type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupStar
)

// Pickup is a floating collectible. It bobs in place and flips Collected on
// first overlap with the player; the world step turns that into score and
// powerup effects.
type Pickup struct {
	X, Y      float64
	Kind      PickupKind
	Collected bool

	phase     float64
	amplitude float64
	frequency float64
	frames    int
	img       *ebiten.Image
}

func NewPickup(x, y float64, kind PickupKind) *Pickup {
	return &Pickup{
		X:         x,
		Y:         y,
		Kind:      kind,
		amplitude: 4.0,
		frequency: 0.05,
		phase:     float64(int(x)%7) * 0.3,
	}
}

func (p *Pickup) size() float64 {
	if p.Kind == PickupStar {
		return 24
	}
	return 16
}

func (p *Pickup) bobOffset() float64 {
	return math.Sin(p.phase) * p.amplitude
}

// Update advances the bob and reports true on the frame the player first
// touches the pickup.
func (p *Pickup) Update(player common.Rect) bool {
	if p == nil || p.Collected {
		return false
	}
	p.frames++
	p.phase += p.frequency

	s := p.size()
	box := common.Rect{X: p.X, Y: p.Y + p.bobOffset(), Width: s, Height: s}
	if box.Overlaps(player) {
		p.Collected = true
		return true
	}
	return false
}

func (p *Pickup) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if p == nil || p.Collected {
		return
	}
	if p.img == nil {
		s := int(p.size())
		p.img = ebiten.NewImage(s, s)
		if p.Kind == PickupStar {
			p.img.Fill(colornames.Gold)
			core := ebiten.NewImage(s/2, s/2)
			core.Fill(colornames.White)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(s)/4, float64(s)/4)
			p.img.DrawImage(core, op)
		} else {
			p.img.Fill(colornames.Yellow)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((p.X-camX)*zoom, (p.Y+p.bobOffset()-camY)*zoom)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.img, op)
}
