package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/ratracegame/ratrace/levelgen"
	"github.com/ratracegame/ratrace/levels"
)

const (
	movingAmplitude = 60.0
	movingOmega     = 0.02
)

// Platform wraps one generated PlatformSpec as a drawable, and for moving
// platforms, a kinematic physics body the player can ride.
type Platform struct {
	Spec levelgen.PlatformSpec

	// Current top-left. Equal to the spec for static platforms; moving
	// platforms oscillate horizontally around their spec position.
	X, Y float64

	fill  color.NRGBA
	phase float64
	body  *cp.Body
	img   *ebiten.Image
}

func NewPlatform(spec levelgen.PlatformSpec, theme levels.Theme) *Platform {
	p := &Platform{
		Spec:  spec,
		X:     float64(spec.X),
		Y:     float64(spec.Y),
		phase: float64(spec.X%628) / 100.0,
	}
	p.fill = platformFill(spec.Kind, theme.PlatformStyle)
	return p
}

// NewPlatforms builds platform objects for a whole generated layout.
func NewPlatforms(specs []levelgen.PlatformSpec, theme levels.Theme) []*Platform {
	out := make([]*Platform, 0, len(specs))
	for _, spec := range specs {
		out = append(out, NewPlatform(spec, theme))
	}
	return out
}

// updateMotion advances a moving platform by driving its kinematic body's
// velocity; the space step does the actual move. Called by CollisionWorld.
func (p *Platform) updateMotion() {
	if p == nil || p.body == nil || p.Spec.Kind != levelgen.KindMoving {
		return
	}
	p.phase += movingOmega
	vx := movingAmplitude * movingOmega * math.Cos(p.phase)
	p.body.SetVelocity(vx, 0)
}

// syncFromBody pulls the drawn position from the physics body after a step.
func (p *Platform) syncFromBody() {
	if p == nil || p.body == nil {
		return
	}
	pos := p.body.Position()
	p.X = pos.X - float64(p.Spec.Width)/2
	p.Y = pos.Y - float64(p.Spec.Height)/2
}

func (p *Platform) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if p == nil {
		return
	}
	if p.img == nil {
		p.img = ebiten.NewImage(p.Spec.Width, p.Spec.Height)
		p.img.Fill(p.fill)
		if p.Spec.Kind != levelgen.KindGround && p.Spec.Height > 4 {
			top := ebiten.NewImage(p.Spec.Width, 4)
			top.Fill(lighten(p.fill))
			p.img.DrawImage(top, &ebiten.DrawImageOptions{})
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((p.X-camX)*zoom, (p.Y-camY)*zoom)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.img, op)
}

func platformFill(kind levelgen.Kind, style string) color.NRGBA {
	switch kind {
	case levelgen.KindCloud:
		return color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf8, A: 0xdd}
	case levelgen.KindIce:
		return toNRGBA(colornames.Lightblue)
	case levelgen.KindMoving:
		return toNRGBA(colornames.Slategray)
	}

	switch style {
	case "grass":
		return toNRGBA(colornames.Forestgreen)
	case "ice":
		return toNRGBA(colornames.Powderblue)
	case "stone":
		return toNRGBA(colornames.Dimgray)
	case "sand":
		return toNRGBA(colornames.Peru)
	case "coral":
		return toNRGBA(colornames.Salmon)
	case "cloud":
		return toNRGBA(colornames.Whitesmoke)
	case "neon":
		return toNRGBA(colornames.Magenta)
	default:
		return toNRGBA(colornames.Saddlebrown)
	}
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func lighten(c color.NRGBA) color.NRGBA {
	bump := func(v uint8) uint8 {
		if v > 215 {
			return 255
		}
		return v + 40
	}
	return color.NRGBA{R: bump(c.R), G: bump(c.G), B: bump(c.B), A: c.A}
}
