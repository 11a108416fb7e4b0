package levelgen

import "testing"

func TestStarPositionInsideLevel(t *testing.T) {
	for _, difficulty := range []int{0, 3, 9} {
		g := New(3200, 600, difficulty)
		g.GenerateAccessiblePlatforms()

		x, y := g.FindAccessibleStarPosition()
		if x <= 0 || x >= 3200 {
			t.Errorf("difficulty %d: star x=%d outside level", difficulty, x)
		}
		if y <= 0 || y >= 600 {
			t.Errorf("difficulty %d: star y=%d outside level", difficulty, y)
		}
	}
}

func TestStarPrefersLateLevel(t *testing.T) {
	g := New(1000, 600, 0)
	g.platforms = append(groundRow(1000),
		PlatformSpec{X: 100, Y: 300, Width: 100, Height: 20, Kind: KindNormal},
		PlatformSpec{X: 700, Y: 300, Width: 100, Height: 20, Kind: KindNormal},
	)
	// Only the platform past 3/5 of the width qualifies.
	x, y := g.FindAccessibleStarPosition()
	if x != 700+50 {
		t.Fatalf("star x=%d, want centered on the late platform at 750", x)
	}
	if y != 300-starHoverOffset {
		t.Fatalf("star y=%d, want %d", y, 300-starHoverOffset)
	}
}

func TestStarFallsBackToLastPlatforms(t *testing.T) {
	g := New(1000, 600, 0)
	g.platforms = append(groundRow(1000),
		// Nothing past 3/5 width; the last-placed pool should win.
		PlatformSpec{X: 100, Y: 300, Width: 100, Height: 20, Kind: KindNormal},
	)
	x, _ := g.FindAccessibleStarPosition()
	if x != 150 {
		t.Fatalf("star x=%d, want 150 above the only floating platform", x)
	}
}

func TestStarAbsoluteFallback(t *testing.T) {
	g := New(1000, 600, 0)
	g.platforms = groundRow(1000)

	x, y := g.FindAccessibleStarPosition()
	if x != StarFallbackX || y != StarFallbackY {
		t.Fatalf("star at (%d,%d), want fallback (%d,%d)", x, y, StarFallbackX, StarFallbackY)
	}
}
