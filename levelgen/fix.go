package levelgen

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/ratracegame/ratrace/common"
)

// AddAccessibilityFixes walks the floating platforms in x order and appends
// a stepping platform between any adjacent pair whose gap exceeds the jump
// envelope. Strictly append-only: existing platforms are never moved or
// removed, so repeated calls cannot oscillate. Returns the number of
// platforms added.
//
// This is a heuristic over x-adjacency, not over the reachability graph the
// validator uses, so it can overshoot or miss; callers re-validate after.
func (g *Generator) AddAccessibilityFixes() int {
	floating := make([]PlatformSpec, 0, len(g.platforms))
	for _, p := range g.platforms {
		if p.Kind != KindGround {
			floating = append(floating, p)
		}
	}
	if len(floating) < 2 {
		return 0
	}

	sort.Slice(floating, func(i, j int) bool {
		return floating[i].X < floating[j].X
	})

	added := 0
	for i := 1; i < len(floating); i++ {
		a, b := floating[i-1], floating[i]
		vGap := common.Abs(a.Y - b.Y)
		hGap := common.Abs(b.X - a.X)
		if vGap <= SafeJumpHeight()-JumpMargin && hGap <= SafeHorizontalDistance {
			continue
		}

		y := a.Y
		if b.Y > y {
			y = b.Y
		}
		g.platforms = append(g.platforms, PlatformSpec{
			X:      (a.X + b.X) / 2,
			Y:      g.clampY(y - SafeJumpHeight()/2),
			Width:  platformWidths[0],
			Height: platformHeight,
			Kind:   KindNormal,
		})
		added++
	}

	if added > 0 {
		log.Info("patched oversized gaps", "added", added, "difficulty", g.difficulty)
	}
	return added
}
