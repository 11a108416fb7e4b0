package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ratracegame/ratrace/common"
	"github.com/ratracegame/ratrace/levels"
)

// Background draws the themed sky gradient plus a slow parallax hill band.
// Everything is generated; there are no image assets.
type Background struct {
	theme levels.Theme

	sky   *ebiten.Image
	hills *ebiten.Image
}

func NewBackground(theme levels.Theme) *Background {
	return &Background{theme: theme}
}

func (b *Background) Draw(screen *ebiten.Image, camX float64) {
	if b == nil {
		return
	}
	if b.sky == nil {
		b.sky = buildGradient(common.BaseWidth, common.BaseHeight,
			b.theme.SkyTop.NRGBA(), b.theme.SkyBottom.NRGBA())
		b.hills = buildHills(b.theme.SkyBottom.NRGBA())
	}

	screen.DrawImage(b.sky, &ebiten.DrawImageOptions{})

	// Hills scroll at a fraction of camera speed and wrap.
	offset := math.Mod(camX*0.3, common.BaseWidth)
	for _, dx := range []float64{-offset, common.BaseWidth - offset} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(dx, float64(common.BaseHeight-b.hills.Bounds().Dy()))
		screen.DrawImage(b.hills, op)
	}
}

func buildGradient(w, h int, top, bottom color.NRGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	const strips = 40
	stripH := (h + strips - 1) / strips
	for i := 0; i < strips; i++ {
		t := float64(i) / float64(strips-1)
		strip := ebiten.NewImage(w, stripH)
		strip.Fill(color.NRGBA{
			R: uint8(common.Lerp(float64(top.R), float64(bottom.R), t)),
			G: uint8(common.Lerp(float64(top.G), float64(bottom.G), t)),
			B: uint8(common.Lerp(float64(top.B), float64(bottom.B), t)),
			A: 0xff,
		})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, float64(i*stripH))
		img.DrawImage(strip, op)
	}
	return img
}

func buildHills(base color.NRGBA) *ebiten.Image {
	darker := func(v uint8) uint8 {
		if v < 50 {
			return 0
		}
		return v - 50
	}
	fill := color.NRGBA{R: darker(base.R), G: darker(base.G), B: darker(base.B), A: 0xff}

	const height = 120
	img := ebiten.NewImage(common.BaseWidth, height)
	col := ebiten.NewImage(1, height)
	col.Fill(fill)
	for x := 0; x < common.BaseWidth; x++ {
		crest := 40 + math.Sin(float64(x)*0.012)*30 + math.Sin(float64(x)*0.031)*12
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), crest)
		img.DrawImage(col, op)
	}
	return img
}
