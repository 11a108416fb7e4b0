package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ratracegame/ratrace/audio"
	"github.com/ratracegame/ratrace/common"
	"github.com/ratracegame/ratrace/levels"
	"github.com/ratracegame/ratrace/obj"
	"github.com/ratracegame/ratrace/prefabs"
	"github.com/ratracegame/ratrace/scores"
	"github.com/ratracegame/ratrace/system"
)

type GameState int

const (
	StateMenu GameState = iota
	StateLevelSelect
	StatePlaying
	StatePaused
	StateGameOver
	StateLevelComplete
	StateVictory
)

// Score values per event.
const (
	coinScore       = 10
	stompScore      = 25
	starScore       = 50
	levelBonusScore = 100
)

// Options are the command line knobs.
type Options struct {
	// StartLevel skips the menu and jumps into level N (1-based) when > 0.
	StartLevel int
	Debug      bool
	Mute       bool
	DBPath     string
}

type Game struct {
	state  GameState
	debug  bool
	frames int

	catalog    *levels.Catalog
	levelIndex int

	playerSpec *prefabs.PlayerSpec
	enemySpec  *prefabs.EnemySpec
	brain      *obj.Brain

	input      *obj.Input
	camera     *obj.Camera
	world      *system.World
	player     *obj.Player
	background *obj.Background

	sound   *audio.SoundManager
	store   *scores.Store
	watcher *prefabs.Watcher

	score      int
	lives      int
	highScore  int
	levelBests []int

	pauseUI *ebitenui.UI
	menuUI  *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	catalog, err := levels.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load level catalog: %w", err)
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("load player spec: %w", err)
	}
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, fmt.Errorf("load enemy spec: %w", err)
	}

	g := &Game{
		state:      StateMenu,
		debug:      opts.Debug,
		catalog:    catalog,
		playerSpec: playerSpec,
		enemySpec:  enemySpec,
		input:      obj.NewInput(),
		camera:     obj.NewCamera(common.BaseWidth, common.BaseHeight, 1),
		sound:      audio.NewSoundManager(opts.Mute),
		lives:      playerSpec.Lives,
	}

	g.brain = loadBrain(enemySpec)

	if store, err := scores.Open(opts.DBPath); err != nil {
		log.Warn("scores database unavailable, running without persistence", "err", err)
	} else {
		g.store = store
		if best, err := store.HighScore(); err == nil {
			g.highScore = best
		}
	}

	if opts.Debug {
		if w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
			log.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	g.menuUI = NewMenuUI(g)

	if opts.StartLevel > 0 && opts.StartLevel <= len(catalog.Levels) {
		g.startRun(opts.StartLevel - 1)
	}

	return g, nil
}

// loadBrain compiles the enemy script, falling back to nil (built-in patrol
// logic) when the script is missing or broken.
func loadBrain(spec *prefabs.EnemySpec) *obj.Brain {
	if spec.Script == "" {
		return nil
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		log.Warn("enemy script unavailable, using built-in patrol", "script", spec.Script, "err", err)
		return nil
	}
	brain, err := obj.NewBrain(src)
	if err != nil {
		log.Warn("enemy script failed to compile, using built-in patrol", "script", spec.Script, "err", err)
		return nil
	}
	return brain
}

// startRun resets score and lives and enters the given level.
func (g *Game) startRun(index int) {
	g.score = 0
	g.lives = g.playerSpec.Lives
	g.startLevel(index)
}

func (g *Game) startLevel(index int) {
	def := g.catalog.Levels[index]
	log.Info("starting level", "level", index+1, "name", def.Name, "difficulty", def.Difficulty)

	g.levelIndex = index
	g.world = system.BuildWorld(def, index, g.enemySpec, g.brain)
	g.background = obj.NewBackground(def.Theme)

	sx, sy := g.world.SpawnPoint()
	g.player = obj.NewPlayer(sx, sy, g.playerSpec, g.input, g.world.Collision)
	g.player.SetSlippery(def.Theme.Quirk == levels.QuirkSlippery)
	g.player.OnJump = func() { g.sound.Play(audio.SoundJump) }

	g.camera.SetWorldBounds(def.Width, def.Height)
	g.camera.SnapTo(g.player.CenterX(), g.player.CenterY())

	g.state = StatePlaying
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	g.pollWatcher()

	switch g.state {
	case StateMenu:
		g.menuUI.Update()
		if g.input.ConfirmPressed {
			g.startRun(0)
		} else if g.input.Digit >= 0 {
			g.enterLevelSelect()
		}

	case StateLevelSelect:
		if g.input.PausePressed {
			g.state = StateMenu
		} else if d := g.input.Digit; d >= 0 {
			// 1-9 pick levels one through nine, 0 picks level ten.
			index := d - 1
			if d == 0 {
				index = 9
			}
			if index < len(g.catalog.Levels) {
				g.startRun(index)
			}
		}

	case StatePlaying:
		if g.input.PausePressed {
			g.state = StatePaused
			return nil
		}
		g.stepWorld()

	case StatePaused:
		g.pauseUI.Update()
		if g.input.PausePressed {
			g.state = StatePlaying
		}

	case StateLevelComplete:
		if g.input.ConfirmPressed || g.input.JumpPressed {
			next := g.levelIndex + 1
			if next >= len(g.catalog.Levels) {
				g.state = StateVictory
			} else {
				g.startLevel(next)
			}
		}

	case StateGameOver, StateVictory:
		if g.input.ConfirmPressed || g.input.JumpPressed {
			g.state = StateMenu
		}
	}

	return nil
}

func (g *Game) stepWorld() {
	for _, ev := range g.world.Step(g.player) {
		switch ev {
		case system.EventCoin:
			g.score += coinScore
			g.sound.Play(audio.SoundCoin)
		case system.EventStar:
			g.score += starScore
			g.sound.Play(audio.SoundStar)
		case system.EventStomp:
			g.score += stompScore
			g.sound.Play(audio.SoundStomp)
		case system.EventCheckpoint:
			g.sound.Play(audio.SoundCoin)
			log.Debug("checkpoint activated", "level", g.levelIndex+1)
		case system.EventHit:
			g.onPlayerHit()
			return
		}
	}

	if g.world.FellOut(g.player) {
		g.onPlayerHit()
		return
	}
	if g.world.AtExit(g.player) {
		g.onLevelComplete()
		return
	}

	g.camera.Update(g.player.CenterX(), g.player.CenterY())
}

func (g *Game) onPlayerHit() {
	g.sound.Play(audio.SoundHit)
	g.lives--
	if g.lives <= 0 {
		g.finishRun()
		g.state = StateGameOver
		return
	}

	x, y, ok := g.world.ActiveCheckpoint()
	if !ok {
		x, y = g.world.SpawnPoint()
	}
	g.player.Respawn(x, y)
	g.camera.SnapTo(g.player.CenterX(), g.player.CenterY())
}

func (g *Game) onLevelComplete() {
	g.score += levelBonusScore
	g.finishRun()
	g.state = StateLevelComplete
}

// finishRun persists the current score and refreshes the high score.
func (g *Game) finishRun() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
	if g.store == nil {
		return
	}
	if _, err := g.store.SaveScore(g.levelIndex+1, g.score); err != nil {
		log.Warn("failed to save score", "err", err)
	}
}

// pollWatcher drains hot-reload events and reapplies the specs in place so
// live objects holding the spec pointers pick up the new tuning.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Info("reloading prefabs", "changed", path)
			if ps, err := prefabs.LoadPlayerSpec(); err == nil {
				*g.playerSpec = *ps
			} else {
				log.Warn("player spec reload failed", "err", err)
			}
			if es, err := prefabs.LoadEnemySpec(); err == nil {
				*g.enemySpec = *es
			} else {
				log.Warn("enemy spec reload failed", "err", err)
			}
			// A recompiled brain only reaches enemies built after this
			// point; live enemies keep the old program.
			g.brain = loadBrain(g.enemySpec)
		case err := <-g.watcher.Errors:
			log.Warn("prefab watcher error", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateMenu:
		g.drawMenu(screen)
	case StateLevelSelect:
		g.drawLevelSelect(screen)
	case StatePlaying, StatePaused:
		g.drawWorld(screen)
		if g.state == StatePaused {
			g.pauseUI.Draw(screen)
		}
	case StateLevelComplete:
		g.drawWorld(screen)
		g.drawBanner(screen, fmt.Sprintf("LEVEL %d COMPLETE", g.levelIndex+1), "Press Enter for the next level")
	case StateGameOver:
		g.drawWorld(screen)
		g.drawBanner(screen, "GAME OVER", fmt.Sprintf("Score: %d   Best: %d   Press Enter", g.score, g.highScore))
	case StateVictory:
		g.drawWorld(screen)
		g.drawBanner(screen, "YOU WIN", fmt.Sprintf("Final score: %d   Press Enter", g.score))
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	g.menuUI.Draw(screen)
	if g.highScore > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("High score: %d", g.highScore), 20, common.BaseHeight-40)
	}
}

// enterLevelSelect refreshes the per-level bests before showing the list.
func (g *Game) enterLevelSelect() {
	g.levelBests = make([]int, len(g.catalog.Levels))
	if g.store != nil {
		for i := range g.catalog.Levels {
			if best, err := g.store.LevelHighScore(i + 1); err == nil {
				g.levelBests[i] = best
			}
		}
	}
	g.state = StateLevelSelect
}

func (g *Game) drawLevelSelect(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "LEVEL SELECT   (1-9, 0 for ten, Esc to go back)", 20, 20)
	for i, def := range g.catalog.Levels {
		key := (i + 1) % 10
		line := fmt.Sprintf("%d  %-14s difficulty %d", key, def.Name, def.Difficulty)
		if g.levelBests != nil && g.levelBests[i] > 0 {
			line += fmt.Sprintf("   best %d", g.levelBests[i])
		}
		ebitenutil.DebugPrintAt(screen, line, 40, 50+i*20)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	if g.world == nil {
		return
	}

	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()

	g.background.Draw(screen, camX)

	g.camera.Render(screen, func(world *ebiten.Image) {
		for _, p := range g.world.Platforms {
			p.Draw(world, camX, camY, zoom)
		}
		for _, c := range g.world.Checkpoints {
			c.Draw(world, camX, camY, zoom)
		}
		for _, p := range g.world.Pickups {
			p.Draw(world, camX, camY, zoom)
		}
		for _, e := range g.world.Enemies {
			e.Draw(world, camX, camY, zoom)
		}
		g.player.Draw(world, camX, camY, zoom)
		if g.debug {
			g.world.Collision.DebugDraw(world, camX, camY, zoom)
		}
	})

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	def := g.catalog.Levels[g.levelIndex]
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   Lives: %d   Level %d: %s", g.score, g.lives, g.levelIndex+1, def.Name), 8, 8)
	if g.player.StarActive() {
		ebitenutil.DebugPrintAt(screen, "STAR POWER", 8, 24)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f   state: %s   pos: (%.0f, %.0f)", ebiten.ActualFPS(), g.player.State(), g.player.X, g.player.Y),
			8, common.BaseHeight-20)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, title, sub string) {
	x := common.BaseWidth/2 - len(title)*3
	ebitenutil.DebugPrintAt(screen, title, x, common.BaseHeight/2-20)
	ebitenutil.DebugPrintAt(screen, sub, common.BaseWidth/2-len(sub)*3, common.BaseHeight/2)
}

// Shutdown releases the watcher and database handles.
func (g *Game) Shutdown() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.store != nil {
		_ = g.store.Close()
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
