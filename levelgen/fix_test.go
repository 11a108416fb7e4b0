package levelgen

import (
	"reflect"
	"testing"
)

func TestFixesAreAppendOnly(t *testing.T) {
	g := New(1600, 600, 0)
	g.platforms = append(groundRow(1600),
		PlatformSpec{X: 300, Y: 400, Width: 100, Height: 20, Kind: KindNormal},
		PlatformSpec{X: 900, Y: 380, Width: 100, Height: 20, Kind: KindNormal},
	)
	before := make([]PlatformSpec, len(g.platforms))
	copy(before, g.platforms)

	added := g.AddAccessibilityFixes()
	if added == 0 {
		t.Fatal("600px horizontal gap left unpatched")
	}
	if len(g.platforms) != len(before)+added {
		t.Fatalf("platform count %d, want %d", len(g.platforms), len(before)+added)
	}
	if !reflect.DeepEqual(g.platforms[:len(before)], before) {
		t.Fatal("existing platforms were modified")
	}
}

func TestFixPlatformPosition(t *testing.T) {
	g := New(1600, 600, 0)
	g.platforms = []PlatformSpec{
		{X: 300, Y: 400, Width: 100, Height: 20, Kind: KindNormal},
		{X: 900, Y: 380, Width: 100, Height: 20, Kind: KindNormal},
	}

	if added := g.AddAccessibilityFixes(); added != 1 {
		t.Fatalf("added %d platforms, want 1", added)
	}
	fix := g.platforms[len(g.platforms)-1]
	if fix.X != 600 {
		t.Fatalf("fix platform at x=%d, want the midpoint 600", fix.X)
	}
	if fix.Kind != KindNormal {
		t.Fatalf("fix platform kind %v, want normal", fix.Kind)
	}
	if fix.Y >= 400 {
		t.Fatalf("fix platform at y=%d, want above the lower neighbor", fix.Y)
	}
}

func TestFixLeavesConnectedLayoutAlone(t *testing.T) {
	g := New(1600, 600, 0)
	g.platforms = append(groundRow(1600),
		PlatformSpec{X: 300, Y: 400, Width: 100, Height: 20, Kind: KindNormal},
		PlatformSpec{X: 500, Y: 350, Width: 100, Height: 20, Kind: KindNormal},
	)
	if added := g.AddAccessibilityFixes(); added != 0 {
		t.Fatalf("added %d platforms to a connected layout", added)
	}
}

func TestFixIgnoresGroundAdjacency(t *testing.T) {
	// Ground tiles span the whole level; if the fixer treated them as
	// neighbors every floating platform would look connected.
	g := New(1600, 600, 0)
	g.platforms = append(groundRow(1600),
		PlatformSpec{X: 200, Y: 200, Width: 100, Height: 20, Kind: KindNormal},
		PlatformSpec{X: 1000, Y: 200, Width: 100, Height: 20, Kind: KindNormal},
	)
	if added := g.AddAccessibilityFixes(); added == 0 {
		t.Fatal("floating platforms separated by ground-only span left unpatched")
	}
}
