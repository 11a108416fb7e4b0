package main

import (
	"flag"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ratracegame/ratrace/common"
)

func main() {
	level := flag.Int("level", 0, "start directly in level N (1-based, 0 = menu)")
	debug := flag.Bool("debug", false, "enable debug HUD and hot reload of specs")
	mute := flag.Bool("mute", false, "disable audio")
	dbPath := flag.String("db", "~/.ratrace/scores.db", "path to the scores database")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Rat Race")

	game, err := NewGame(Options{
		StartLevel: *level,
		Debug:      *debug,
		Mute:       *mute,
		DBPath:     *dbPath,
	})
	if err != nil {
		log.Fatal("startup failed", "err", err)
	}
	defer game.Shutdown()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
