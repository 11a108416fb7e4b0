package levelgen

const (
	// Star candidates live past this fraction of the level so the powerup
	// rewards pushing deep.
	starLateFractionNum = 3
	starLateFractionDen = 5

	// Candidate platforms must sit this far above the level bottom.
	starHeightClearance = 150

	// The star floats this far above its platform.
	starHoverOffset = 60

	// How many of the last-placed platforms count as a fallback pool.
	starFallbackPool = 5

	// Absolute last resort when the layout has no floating platforms at all.
	StarFallbackX = 400
	StarFallbackY = 200
)

// FindAccessibleStarPosition picks where the star powerup goes: above a
// floating platform in the last two fifths of the level, high enough to feel
// earned. Every platform is reachable after validation, so any candidate is
// a fair placement. Falls back progressively when the preferred pool is
// empty, ending at a fixed position rather than failing.
func (g *Generator) FindAccessibleStarPosition() (int, int) {
	lateX := g.width * starLateFractionNum / starLateFractionDen

	var candidates []PlatformSpec
	for _, p := range g.platforms {
		if p.Kind == KindGround {
			continue
		}
		if p.X > lateX && p.Y < g.height-starHeightClearance {
			candidates = append(candidates, p)
		}
	}

	// Relax the height requirement.
	if len(candidates) == 0 {
		for _, p := range g.platforms {
			if p.Kind != KindGround && p.X > lateX {
				candidates = append(candidates, p)
			}
		}
	}

	// Relax position entirely: the last few platforms placed.
	if len(candidates) == 0 {
		var floating []PlatformSpec
		for _, p := range g.platforms {
			if p.Kind != KindGround {
				floating = append(floating, p)
			}
		}
		if n := len(floating); n > 0 {
			pool := starFallbackPool
			if pool > n {
				pool = n
			}
			candidates = floating[n-pool:]
		}
	}

	if len(candidates) == 0 {
		return StarFallbackX, StarFallbackY
	}

	p := candidates[g.rng.Intn(len(candidates))]
	return p.X + p.Width/2, p.Y - starHoverOffset
}
