package levelgen

import "testing"

func TestIsPositionOverHole(t *testing.T) {
	g := New(800, 600, 0)
	// Ground at [0,200) and [400,600); hole at [200,400).
	g.platforms = []PlatformSpec{
		{X: 0, Y: 560, Width: 200, Height: 40, Kind: KindGround},
		{X: 400, Y: 560, Width: 200, Height: 40, Kind: KindGround},
		// Floating platform above the hole must not count as coverage.
		{X: 250, Y: 300, Width: 100, Height: 20, Kind: KindNormal},
	}

	cases := []struct {
		name     string
		x, width int
		want     bool
	}{
		{"fully on ground", 50, 40, false},
		{"fully in hole", 250, 40, true},
		{"straddles hole edge", 180, 40, true},
		{"under floating platform", 280, 40, true},
		{"ends at hole edge", 160, 40, false},
		{"zero width", 250, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsPositionOverHole(tc.x, 560, tc.width); got != tc.want {
				t.Fatalf("IsPositionOverHole(%d, 560, %d) = %v, want %v", tc.x, tc.width, got, tc.want)
			}
		})
	}
}

func TestSpanAcrossAdjacentTiles(t *testing.T) {
	g := New(800, 600, 0)
	g.platforms = []PlatformSpec{
		{X: 0, Y: 560, Width: 200, Height: 40, Kind: KindGround},
		{X: 200, Y: 560, Width: 200, Height: 40, Kind: KindGround},
	}
	if g.IsPositionOverHole(150, 560, 100) {
		t.Fatal("span across two touching ground tiles reported as hole")
	}
}

func TestGeneratedGroundHasNoHoles(t *testing.T) {
	g := New(3200, 600, 0)
	g.GenerateAccessiblePlatforms()
	for x := 0; x < 3200-40; x += 100 {
		if g.IsPositionOverHole(x, 560, 40) {
			t.Fatalf("generated ground has a hole at x=%d", x)
		}
	}
}
