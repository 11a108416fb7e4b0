package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ratracegame/ratrace/levelgen"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a layout and print a summary",
	RunE:  runGen,
}

func runGen(cmd *cobra.Command, args []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	counts := map[levelgen.Kind]int{}
	floating := 0
	for _, p := range gen.Platforms() {
		counts[p.Kind]++
		if p.Kind != levelgen.KindGround {
			floating++
		}
	}

	fmt.Printf("platforms: %d (%d floating)\n", len(gen.Platforms()), floating)
	for _, k := range []levelgen.Kind{levelgen.KindGround, levelgen.KindNormal, levelgen.KindCloud, levelgen.KindIce, levelgen.KindMoving} {
		if counts[k] > 0 {
			fmt.Printf("  %-7s %d\n", k.String(), counts[k])
		}
	}
	if stones := gen.EnemySteppingStones(); len(stones) > 0 {
		fmt.Printf("stepping-stone enemies: %d\n", len(stones))
	}
	x, y := gen.FindAccessibleStarPosition()
	fmt.Printf("star: (%d, %d)\n", x, y)
	return nil
}
