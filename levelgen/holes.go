package levelgen

// IsPositionOverHole reports whether any part of the horizontal span
// [x, x+width) lacks ground coverage. The population pass uses it to keep
// checkpoints and ground spawns off holes. Only ground platforms count;
// floating platforms above a hole don't make it safe to stand at the
// bottom. The y coordinate is accepted for call-site symmetry with other
// placement queries but does not affect the answer.
func (g *Generator) IsPositionOverHole(x, y, width int) bool {
	left := x
	right := x + width
	if right <= left {
		return false
	}

	// Sweep the left edge rightward through whatever ground covers it.
	// If it reaches the right edge, the span is fully covered.
	for moved := true; moved && left < right; {
		moved = false
		for _, p := range g.platforms {
			if p.Kind != KindGround {
				continue
			}
			if p.X <= left && left < p.X+p.Width {
				left = p.X + p.Width
				moved = true
			}
		}
	}
	return left < right
}
