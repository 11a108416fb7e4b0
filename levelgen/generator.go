// Package levelgen builds platform layouts that stay traversable under the
// game's jump physics. Generation is constructive (a cursor walk that only
// plans jumps the player can make), then a graph validator double-checks the
// result and a repair pass patches anything the walk left stranded.
package levelgen

import "math/rand"

const (
	// Seed is offset by difficulty so every difficulty tier has its own
	// stable layout. Reported bugs reproduce from (width, height, difficulty).
	seedOffset = 1337

	groundTileWidth = 200
	groundHeight    = 40

	segmentCount            = 8
	basePlatformsPerSegment = 2

	minHorizontalStep = 150
	maxHorizontalStep = 300

	platformHeight = 20

	// No floating platforms over the spawn area or hugging the right edge;
	// the exit zone stays clear.
	spawnClearance  = 300
	rightEdgeMargin = 500

	// Vertical band floating platforms may occupy.
	bandTop          = 80
	bandBottomOffset = 120

	// When a planned rise exceeds the jump budget: 30% of the time an enemy
	// stepping stone bridges it, otherwise an intermediate platform does.
	stepStoneChance  = 0.3
	intermediateRise = 100
)

var platformWidths = [...]int{100, 120, 150}

// Generator produces one level layout. It owns its rand.Rand so concurrent
// generators don't interleave draws, and the same inputs always yield the
// same layout.
type Generator struct {
	width      int
	height     int
	difficulty int
	rng        *rand.Rand

	platforms  []PlatformSpec
	stepStones []EnemyStepStone
}

// New creates a generator for a level of the given pixel dimensions.
// Difficulty scales platform density and unlocks the trickier kinds.
func New(width, height, difficulty int) *Generator {
	if difficulty < 0 {
		difficulty = 0
	}
	return &Generator{
		width:      width,
		height:     height,
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(int64(seedOffset + difficulty))),
	}
}

// Platforms returns the last generated layout, including any repair
// platforms appended by AddAccessibilityFixes.
func (g *Generator) Platforms() []PlatformSpec {
	return g.platforms
}

// EnemySteppingStones returns the enemy placements the generator relies on
// as stepping stones. The world builder must spawn these.
func (g *Generator) EnemySteppingStones() []EnemyStepStone {
	return g.stepStones
}

// GenerateAccessiblePlatforms lays out the full level: a continuous ground
// strip, then a left-to-right cursor walk placing floating platforms whose
// pairwise gaps stay inside the jump envelope.
func (g *Generator) GenerateAccessiblePlatforms() []PlatformSpec {
	g.platforms = g.platforms[:0]
	g.stepStones = g.stepStones[:0]

	g.placeGround()

	perSegment := basePlatformsPerSegment + g.difficulty
	curX := spawnClearance
	curY := g.height - groundHeight - 60

	for seg := 0; seg < segmentCount; seg++ {
		for i := 0; i < perSegment; i++ {
			nextX := curX + g.horizontalStep()
			if nextX >= g.width-rightEdgeMargin {
				return g.platforms
			}

			plannedY := g.clampY(g.planY(curY, i == 0))
			if rise := curY - plannedY; rise > SafeJumpHeight()-JumpMargin {
				midX := (curX + nextX) / 2
				if g.rng.Float64() < stepStoneChance {
					// An enemy at mid-height bridges the gap; the cursor
					// height is unchanged because stomping carries the
					// player the rest of the way up.
					g.stepStones = append(g.stepStones, EnemyStepStone{
						X:    midX,
						Y:    curY - rise/2,
						Kind: "basic",
					})
				} else {
					midY := g.clampY(curY - intermediateRise)
					g.platforms = append(g.platforms, PlatformSpec{
						X:      midX,
						Y:      midY,
						Width:  platformWidths[0],
						Height: platformHeight,
						Kind:   KindNormal,
					})
					curY = midY
				}
			}

			g.platforms = append(g.platforms, PlatformSpec{
				X:      nextX,
				Y:      plannedY,
				Width:  g.pickWidth(),
				Height: platformHeight,
				Kind:   g.pickKind(seg),
			})
			curX = nextX
			curY = plannedY
		}
	}

	return g.platforms
}

// placeGround tiles the bottom of the level with fixed-width ground
// platforms. Ground is continuous; holes are a hazard the population pass
// may punch later, never something the generator emits.
func (g *Generator) placeGround() {
	groundY := g.height - groundHeight
	for x := 0; x < g.width; x += groundTileWidth {
		g.platforms = append(g.platforms, PlatformSpec{
			X:      x,
			Y:      groundY,
			Width:  groundTileWidth,
			Height: groundHeight,
			Kind:   KindGround,
		})
	}
}

// planY picks the next platform height relative to the cursor. The first
// platform of a segment biases upward in a narrow range so segments start
// with a climb; later platforms roam a wider symmetric range.
func (g *Generator) planY(curY int, segmentStart bool) int {
	budget := SafeJumpHeight()
	if segmentStart {
		return curY - g.rng.Intn(budget/2+1)
	}
	return curY + g.rng.Intn(2*budget+1) - budget
}

func (g *Generator) clampY(y int) int {
	lo := bandTop
	hi := g.height - bandBottomOffset
	if y < lo {
		return lo
	}
	if y > hi {
		return hi
	}
	return y
}

func (g *Generator) horizontalStep() int {
	return minHorizontalStep + g.rng.Intn(maxHorizontalStep-minHorizontalStep+1)
}

func (g *Generator) pickWidth() int {
	return platformWidths[g.rng.Intn(len(platformWidths))]
}

// pickKind gates the special kinds by difficulty. Moving platforms only
// appear on even segments so the level alternates calm and busy stretches.
func (g *Generator) pickKind(segment int) Kind {
	kinds := []Kind{KindNormal, KindNormal, KindCloud}
	if g.difficulty >= 2 {
		kinds = append(kinds, KindIce)
	}
	if g.difficulty >= 1 && segment%2 == 0 {
		kinds = append(kinds, KindMoving)
	}
	return kinds[g.rng.Intn(len(kinds))]
}
