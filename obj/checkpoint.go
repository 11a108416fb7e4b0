package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/ratracegame/ratrace/common"
)

// Checkpoint is a respawn marker standing on the ground. Touching it once
// activates it permanently for the rest of the level.
type Checkpoint struct {
	common.Rect
	Active bool
}

func NewCheckpoint(x, y float64) *Checkpoint {
	return &Checkpoint{Rect: common.Rect{X: x, Y: y, Width: 24, Height: 48}}
}

// Update reports true on the frame the checkpoint first activates.
func (c *Checkpoint) Update(player common.Rect) bool {
	if c == nil || c.Active {
		return false
	}
	if c.Rect.Overlaps(player) {
		c.Active = true
		return true
	}
	return false
}

// SpawnPoint is where the player respawns: standing on the checkpoint base.
func (c *Checkpoint) SpawnPoint() (float64, float64) {
	return c.X, c.Y
}

var (
	checkpointIdleImg   *ebiten.Image
	checkpointActiveImg *ebiten.Image
)

func (c *Checkpoint) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if c == nil {
		return
	}
	if checkpointIdleImg == nil {
		checkpointIdleImg = buildCheckpointImage(false)
		checkpointActiveImg = buildCheckpointImage(true)
	}

	img := checkpointIdleImg
	if c.Active {
		img = checkpointActiveImg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((c.X-camX)*zoom, (c.Y-camY)*zoom)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func buildCheckpointImage(active bool) *ebiten.Image {
	img := ebiten.NewImage(24, 48)

	pole := ebiten.NewImage(4, 48)
	pole.Fill(colornames.Dimgray)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(2, 0)
	img.DrawImage(pole, op)

	flag := ebiten.NewImage(16, 12)
	if active {
		flag.Fill(colornames.Limegreen)
	} else {
		flag.Fill(colornames.Gray)
	}
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(6, 4)
	img.DrawImage(flag, op)

	return img
}
