package levelgen

import (
	"github.com/charmbracelet/log"

	"github.com/ratracegame/ratrace/common"
)

// The reachability fixpoint converges in far fewer rounds than this in
// practice; the cap only bounds pathological inputs.
const validateIterationCap = 100

// ValidatePlatformAccessibility reports whether every platform is reachable
// from the ground by some chain of jumps. Ground platforms seed the
// reachable set; each round marks any platform within one jump of an
// already-reachable one, until a fixpoint. Read-only: call it as often as
// needed, the layout never changes.
func (g *Generator) ValidatePlatformAccessibility() bool {
	n := len(g.platforms)
	if n == 0 {
		return true
	}

	reachable := make([]bool, n)
	count := 0
	for i := range g.platforms {
		if g.platforms[i].Kind == KindGround {
			reachable[i] = true
			count++
		}
	}

	for iter := 0; iter < validateIterationCap && count < n; iter++ {
		changed := false
		for i := range g.platforms {
			if reachable[i] {
				continue
			}
			for j := range g.platforms {
				if i == j || !reachable[j] {
					continue
				}
				if withinJump(g.platforms[i], g.platforms[j]) {
					reachable[i] = true
					count++
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	if count < n {
		log.Warn("layout has unreachable platforms",
			"unreachable", n-count,
			"total", n,
			"difficulty", g.difficulty)
		return false
	}
	return true
}

// withinJump is the edge relation of the implicit jump graph: one platform
// is a single jump from another when both the vertical and horizontal
// distances fit the envelope.
func withinJump(a, b PlatformSpec) bool {
	return common.Abs(a.Y-b.Y) <= SafeJumpHeight() &&
		common.Abs(a.X-b.X) <= SafeHorizontalDistance
}
