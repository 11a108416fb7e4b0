// Package system builds and steps the live game world around a generated
// layout: platforms, physics, enemies, pickups and checkpoints.
package system

import (
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/ratracegame/ratrace/common"
	"github.com/ratracegame/ratrace/levelgen"
	"github.com/ratracegame/ratrace/levels"
	"github.com/ratracegame/ratrace/obj"
	"github.com/ratracegame/ratrace/prefabs"
)

// Event is something the world step wants the game shell to react to with
// score, sound or lives.
type Event int

const (
	EventCoin Event = iota
	EventStar
	EventStomp
	EventHit
	EventCheckpoint
)

const (
	checkpointCount    = 3
	checkpointShift    = 100
	checkpointAttempts = 10

	// Population rngs are seeded separately from the layout rng so layout
	// and population can be tuned independently without reshuffling each
	// other.
	coinSeedOffset  = 7000
	enemySeedOffset = 9000

	baseEnemyCount       = 8
	enemiesPerDifficulty = 2
	airEnemyChance       = 0.3

	baseCoinCount      = 20
	coinsPerDifficulty = 5
	populationEdgePad  = 300
	lowGravityScale    = 0.6
)

// World owns everything in one level.
type World struct {
	Def   levels.LevelDef
	Index int

	Gen         *levelgen.Generator
	Platforms   []*obj.Platform
	Enemies     []*obj.Enemy
	Pickups     []*obj.Pickup
	Checkpoints []*obj.Checkpoint
	Collision   *obj.CollisionWorld
}

// BuildWorld generates, validates and repairs the platform layout, then
// populates it. A layout that still fails validation after one repair pass
// ships with a warning; construction never aborts.
func BuildWorld(def levels.LevelDef, index int, enemySpec *prefabs.EnemySpec, brain *obj.Brain) *World {
	gen := levelgen.New(def.Width, def.Height, def.Difficulty)
	gen.GenerateAccessiblePlatforms()

	if !gen.ValidatePlatformAccessibility() {
		added := gen.AddAccessibilityFixes()
		log.Info("repaired level layout", "level", index+1, "added", added)
		if !gen.ValidatePlatformAccessibility() {
			log.Warn("layout still has unreachable platforms after repair", "level", index+1)
		}
	}

	w := &World{
		Def:   def,
		Index: index,
		Gen:   gen,
	}
	w.Platforms = obj.NewPlatforms(gen.Platforms(), def.Theme)
	w.Collision = obj.NewCollisionWorld(def.Width, def.Height, w.Platforms)
	if def.Theme.Quirk == levels.QuirkLowGravity {
		w.Collision.SetGravityScale(lowGravityScale)
	}

	w.placeCheckpoints()
	w.placeCoins()
	w.placeStar()
	w.spawnEnemies(enemySpec, brain)

	return w
}

// placeCheckpoints spaces checkpoints evenly, shifting each right in fixed
// steps while it sits over a hole. A spot that stays bad after the attempt
// budget is dropped rather than placed over a pit.
func (w *World) placeCheckpoints() {
	spacing := w.Def.Width / (checkpointCount + 1)
	groundY := float64(w.Def.Height - 40)
	for i := 1; i <= checkpointCount; i++ {
		x := spacing * i
		placed := false
		for attempt := 0; attempt < checkpointAttempts; attempt++ {
			if !w.Gen.IsPositionOverHole(x, int(groundY), 24) {
				placed = true
				break
			}
			x += checkpointShift
		}
		if !placed {
			log.Warn("dropped checkpoint over persistent hole", "level", w.Index+1, "slot", i)
			continue
		}
		w.Checkpoints = append(w.Checkpoints, obj.NewCheckpoint(float64(x), groundY-48))
	}
}

func (w *World) placeCoins() {
	rng := rand.New(rand.NewSource(int64(coinSeedOffset + w.Index)))
	count := baseCoinCount + coinsPerDifficulty*w.Def.Difficulty
	span := w.Def.Width - 2*populationEdgePad
	if span <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		x := populationEdgePad + rng.Intn(span)
		y := w.Def.Height - 100 - rng.Intn(200)
		if w.Gen.IsPositionOverHole(x, y, 16) {
			continue
		}
		w.Pickups = append(w.Pickups, obj.NewPickup(float64(x), float64(y), obj.PickupCoin))
	}
}

func (w *World) placeStar() {
	x, y := w.Gen.FindAccessibleStarPosition()
	w.Pickups = append(w.Pickups, obj.NewPickup(float64(x)-12, float64(y)-12, obj.PickupStar))
}

// spawnEnemies merges the generator's stepping-stone enemies (spawned
// first, exactly where the layout needs them) with the regular population.
func (w *World) spawnEnemies(spec *prefabs.EnemySpec, brain *obj.Brain) {
	if spec == nil {
		return
	}
	hops := w.Def.Theme.Quirk == levels.QuirkEnemiesJump

	palette := func(i int) color.NRGBA {
		if len(w.Def.Theme.EnemyPalette) == 0 {
			return color.NRGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
		}
		return w.Def.Theme.EnemyPalette[i%len(w.Def.Theme.EnemyPalette)].NRGBA()
	}

	n := 0
	for _, stone := range w.Gen.EnemySteppingStones() {
		// Stepping stones hover in the gap they bridge so the player can
		// stomp off them mid-air.
		w.Enemies = append(w.Enemies, obj.NewFlyer(float64(stone.X), float64(stone.Y), spec, brain, palette(n)))
		n++
	}

	rng := rand.New(rand.NewSource(int64(enemySeedOffset + w.Index)))
	count := baseEnemyCount + enemiesPerDifficulty*w.Def.Difficulty
	span := w.Def.Width - 2*populationEdgePad
	if span <= 0 {
		return
	}
	groundY := float64(w.Def.Height-40) - spec.Height
	for i := 0; i < count; i++ {
		x := float64(populationEdgePad + rng.Intn(span))
		if rng.Float64() < airEnemyChance {
			y := float64(120 + rng.Intn(180))
			w.Enemies = append(w.Enemies, obj.NewFlyer(x, y, spec, brain, palette(n)))
			n++
			continue
		}
		if w.Gen.IsPositionOverHole(int(x), int(groundY), int(spec.Width)) {
			continue
		}
		e := obj.NewWalker(x, groundY, x-spec.PatrolRange, x+spec.PatrolRange, spec, brain, palette(n))
		e.SetHops(hops)
		w.Enemies = append(w.Enemies, e)
		n++
	}
}

// SpawnPoint is where the player enters the level.
func (w *World) SpawnPoint() (float64, float64) {
	return 100, float64(w.Def.Height - 40 - 60)
}

// ActiveCheckpoint returns the rightmost activated checkpoint, if any.
func (w *World) ActiveCheckpoint() (float64, float64, bool) {
	var best *obj.Checkpoint
	for _, c := range w.Checkpoints {
		if c.Active && (best == nil || c.X > best.X) {
			best = c
		}
	}
	if best == nil {
		return 0, 0, false
	}
	x, y := best.SpawnPoint()
	return x, y, true
}

// Step advances one frame: player input and state, physics, enemies,
// pickups, checkpoints. Returned events carry everything the shell needs
// for scoring and sound.
func (w *World) Step(player *obj.Player) []Event {
	var events []Event

	player.Update()
	w.Collision.BeginStep()
	w.Collision.Step(1)
	player.PostPhysics()

	falling := player.VelocityY() > 0.5

	for _, e := range w.Enemies {
		e.Update(player.CenterX())
		if e.Dead || !e.Rect.Overlaps(player.Rect) {
			continue
		}
		switch {
		case player.StarActive():
			e.Stomp()
			events = append(events, EventStomp)
		case falling && player.Y+player.Height < e.Y+e.Height*0.6:
			e.Stomp()
			player.Bounce()
			events = append(events, EventStomp)
		default:
			events = append(events, EventHit)
		}
	}

	for _, p := range w.Pickups {
		if !p.Update(player.Rect) {
			continue
		}
		if p.Kind == obj.PickupStar {
			player.ActivateStar()
			events = append(events, EventStar)
		} else {
			events = append(events, EventCoin)
		}
	}

	for _, c := range w.Checkpoints {
		if c.Update(player.Rect) {
			events = append(events, EventCheckpoint)
		}
	}

	return events
}

// AtExit reports whether the player reached the level's right edge.
func (w *World) AtExit(player *obj.Player) bool {
	return player.X+player.Width >= float64(w.Def.Width)-120
}

// FellOut reports whether the player dropped below the level.
func (w *World) FellOut(player *obj.Player) bool {
	return player.Y > float64(w.Def.Height)+common.BaseHeight/4
}
