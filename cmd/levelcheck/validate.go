package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagFix bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every platform is reachable",
	Long: `Generates the layout and runs the reachability check. With --fix the
repair pass runs first, mirroring what the game does at level start.

Exits 1 when unreachable platforms remain.`,
	Run: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagFix, "fix", false, "Run the repair pass before validating")
}

func runValidate(cmd *cobra.Command, args []string) {
	gen, err := buildGenerator()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flagFix {
		if added := gen.AddAccessibilityFixes(); added > 0 {
			fmt.Printf("repair pass added %d platforms\n", added)
		}
	}

	if gen.ValidatePlatformAccessibility() {
		fmt.Println("all platforms reachable")
		return
	}
	fmt.Println("layout has unreachable platforms")
	os.Exit(1)
}
