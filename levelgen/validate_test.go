package levelgen

import "testing"

func groundRow(width int) []PlatformSpec {
	var out []PlatformSpec
	for x := 0; x < width; x += groundTileWidth {
		out = append(out, PlatformSpec{X: x, Y: 560, Width: groundTileWidth, Height: 40, Kind: KindGround})
	}
	return out
}

func TestValidateEmptyLayout(t *testing.T) {
	g := New(800, 600, 0)
	if !g.ValidatePlatformAccessibility() {
		t.Fatal("empty layout should validate")
	}
}

func TestValidateReachableFromGround(t *testing.T) {
	g := New(800, 600, 0)
	g.platforms = append(groundRow(800),
		// 140px above the ground, 100px over: one jump.
		PlatformSpec{X: 100, Y: 420, Width: 120, Height: 20, Kind: KindNormal},
	)
	if !g.ValidatePlatformAccessibility() {
		t.Fatal("platform within one jump of ground marked unreachable")
	}
}

func TestValidateUnreachablePlatform(t *testing.T) {
	g := New(800, 600, 0)
	g.platforms = append(groundRow(800),
		// 460px above the ground: no chain reaches it.
		PlatformSpec{X: 100, Y: 100, Width: 120, Height: 20, Kind: KindNormal},
	)
	if g.ValidatePlatformAccessibility() {
		t.Fatal("stranded platform marked reachable")
	}
}

func TestValidateTransitiveChain(t *testing.T) {
	g := New(800, 600, 0)
	g.platforms = append(groundRow(800),
		PlatformSpec{X: 150, Y: 430, Width: 120, Height: 20, Kind: KindNormal},
		PlatformSpec{X: 300, Y: 300, Width: 120, Height: 20, Kind: KindNormal},
		PlatformSpec{X: 450, Y: 170, Width: 120, Height: 20, Kind: KindNormal},
	)
	if !g.ValidatePlatformAccessibility() {
		t.Fatal("chain of single jumps marked unreachable")
	}
}

func TestValidateIsReadOnly(t *testing.T) {
	g := New(3200, 600, 2)
	g.GenerateAccessiblePlatforms()
	before := len(g.Platforms())

	first := g.ValidatePlatformAccessibility()
	second := g.ValidatePlatformAccessibility()

	if first != second {
		t.Fatalf("validation not idempotent: %v then %v", first, second)
	}
	if len(g.Platforms()) != before {
		t.Fatalf("validation changed the layout: %d platforms, had %d", len(g.Platforms()), before)
	}
}

func TestWithinJumpEdges(t *testing.T) {
	base := PlatformSpec{X: 0, Y: 400, Width: 100, Height: 20}
	cases := []struct {
		name string
		p    PlatformSpec
		want bool
	}{
		{"same spot", PlatformSpec{X: 0, Y: 400}, true},
		{"vertical limit", PlatformSpec{X: 0, Y: 400 - SafeJumpHeight()}, true},
		{"vertical beyond", PlatformSpec{X: 0, Y: 400 - SafeJumpHeight() - 1}, false},
		{"horizontal limit", PlatformSpec{X: SafeHorizontalDistance, Y: 400}, true},
		{"horizontal beyond", PlatformSpec{X: SafeHorizontalDistance + 1, Y: 400}, false},
		{"drop down", PlatformSpec{X: 100, Y: 400 + SafeJumpHeight()}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := withinJump(base, tc.p); got != tc.want {
				t.Fatalf("withinJump = %v, want %v", got, tc.want)
			}
		})
	}
}
