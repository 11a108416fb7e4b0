package system

import (
	"image/color"
	"testing"

	"github.com/ratracegame/ratrace/levelgen"
	"github.com/ratracegame/ratrace/levels"
	"github.com/ratracegame/ratrace/obj"
	"github.com/ratracegame/ratrace/prefabs"
)

func testLevelDef(width, difficulty int) levels.LevelDef {
	return levels.LevelDef{
		Name:       "test",
		Width:      width,
		Height:     600,
		Difficulty: difficulty,
	}
}

func testEnemySpec() *prefabs.EnemySpec {
	return &prefabs.EnemySpec{
		Width:        32,
		Height:       32,
		MoveSpeed:    2,
		PatrolRange:  120,
		AggroRange:   160,
		BobAmplitude: 12,
		BobFrequency: 0.05,
	}
}

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Width:            32,
		Height:           48,
		MoveSpeed:        5,
		JumpImpulse:      -15,
		CoyoteFrames:     6,
		JumpBufferFrames: 10,
		StompBounce:      1.15,
		StarFrames:       600,
		StarSpeedFactor:  1.5,
		Lives:            3,
	}
}

func TestBuildWorldPopulation(t *testing.T) {
	def := testLevelDef(3200, 2)
	w := BuildWorld(def, 2, testEnemySpec(), nil)

	if len(w.Platforms) != len(w.Gen.Platforms()) {
		t.Fatalf("%d platform objects for %d specs", len(w.Platforms), len(w.Gen.Platforms()))
	}

	if len(w.Checkpoints) == 0 {
		t.Fatal("no checkpoints placed")
	}
	if len(w.Checkpoints) > 3 {
		t.Fatalf("%d checkpoints, want at most 3", len(w.Checkpoints))
	}
	for _, c := range w.Checkpoints {
		if w.Gen.IsPositionOverHole(int(c.X), 560, 24) {
			t.Errorf("checkpoint at x=%.0f sits over a hole", c.X)
		}
		if c.Active {
			t.Errorf("checkpoint at x=%.0f starts active", c.X)
		}
	}

	minEnemies := 8 + 2*def.Difficulty + len(w.Gen.EnemySteppingStones())
	// Ground spawns over holes are skipped, so allow a shortfall, but the
	// bulk of the population must land.
	if len(w.Enemies) < minEnemies/2 {
		t.Fatalf("%d enemies, want at least %d", len(w.Enemies), minEnemies/2)
	}

	stars := 0
	coins := 0
	for _, p := range w.Pickups {
		switch p.Kind {
		case obj.PickupStar:
			stars++
		case obj.PickupCoin:
			coins++
		}
	}
	if stars != 1 {
		t.Fatalf("%d stars, want exactly 1", stars)
	}
	if coins == 0 {
		t.Fatal("no coins placed")
	}
}

func TestBuildWorldIsDeterministic(t *testing.T) {
	def := testLevelDef(3200, 1)
	a := BuildWorld(def, 1, testEnemySpec(), nil)
	b := BuildWorld(def, 1, testEnemySpec(), nil)

	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("enemy counts differ: %d vs %d", len(a.Enemies), len(b.Enemies))
	}
	if len(a.Pickups) != len(b.Pickups) {
		t.Fatalf("pickup counts differ: %d vs %d", len(a.Pickups), len(b.Pickups))
	}
	for i := range a.Enemies {
		if a.Enemies[i].X != b.Enemies[i].X || a.Enemies[i].Y != b.Enemies[i].Y {
			t.Fatalf("enemy %d position differs", i)
		}
	}
}

func TestPlayerSettlesOnGround(t *testing.T) {
	def := testLevelDef(3200, 0)
	w := BuildWorld(def, 0, testEnemySpec(), nil)

	input := obj.NewInput()
	sx, sy := w.SpawnPoint()
	player := obj.NewPlayer(sx, sy, testPlayerSpec(), input, w.Collision)

	for i := 0; i < 120; i++ {
		w.Step(player)
	}

	if !w.Collision.IsGrounded() {
		t.Fatal("player never landed")
	}
	groundTop := float64(def.Height - 40)
	feet := player.Y + player.Height
	if feet < groundTop-5 || feet > groundTop+5 {
		t.Fatalf("player feet at %.1f, want near ground top %.1f", feet, groundTop)
	}
}

func TestJumpRiseMatchesEnvelope(t *testing.T) {
	def := testLevelDef(3200, 0)
	w := BuildWorld(def, 0, testEnemySpec(), nil)

	input := obj.NewInput()
	sx, sy := w.SpawnPoint()
	player := obj.NewPlayer(sx, sy, testPlayerSpec(), input, w.Collision)

	for i := 0; i < 120; i++ {
		w.Step(player)
	}
	startY := player.Y

	input.JumpPressed = true
	input.JumpHeld = true
	w.Step(player)
	input.JumpPressed = false

	minY := player.Y
	for i := 0; i < 90; i++ {
		w.Step(player)
		if player.Y < minY {
			minY = player.Y
		}
	}

	rise := startY - minY
	maxRise := float64(levelgen.SafeJumpHeight())
	if rise < 100 || rise > maxRise {
		t.Fatalf("jump rise %.1f, want between 100 and %.0f", rise, maxRise)
	}
}

func TestStompKillsEnemyAndBounces(t *testing.T) {
	def := testLevelDef(3200, 0)
	w := BuildWorld(def, 0, testEnemySpec(), nil)

	input := obj.NewInput()
	player := obj.NewPlayer(500, 200, testPlayerSpec(), input, w.Collision)

	// Drop a stationary enemy directly under the falling player.
	enemy := obj.NewWalker(500, 400, 500, 500, testEnemySpec(), nil, color.NRGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff})
	w.Enemies = []*obj.Enemy{enemy}

	stomped := false
	for i := 0; i < 180 && !stomped; i++ {
		for _, ev := range w.Step(player) {
			if ev == EventStomp {
				stomped = true
			}
		}
	}
	if !stomped {
		t.Fatal("falling onto an enemy did not stomp it")
	}
	if !enemy.Dead {
		t.Fatal("stomped enemy still alive")
	}
	if player.VelocityY() >= 0 {
		t.Fatal("player did not bounce after the stomp")
	}
}
