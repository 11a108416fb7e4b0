package levelgen

import (
	"reflect"
	"testing"
)

func TestGroundStripIsContinuous(t *testing.T) {
	for _, width := range []int{800, 3200, 5000} {
		g := New(width, 600, 0)
		g.GenerateAccessiblePlatforms()

		var ground []PlatformSpec
		for _, p := range g.Platforms() {
			if p.Kind == KindGround {
				ground = append(ground, p)
			}
		}
		if len(ground) == 0 {
			t.Fatalf("width %d: no ground platforms", width)
		}
		if ground[0].X != 0 {
			t.Fatalf("width %d: ground starts at x=%d, want 0", width, ground[0].X)
		}
		for i := 1; i < len(ground); i++ {
			if ground[i-1].X+ground[i-1].Width != ground[i].X {
				t.Fatalf("width %d: ground gap between x=%d and x=%d",
					width, ground[i-1].X, ground[i].X)
			}
		}
		last := ground[len(ground)-1]
		if last.X+last.Width < width {
			t.Fatalf("width %d: ground ends at %d", width, last.X+last.Width)
		}
		for _, p := range ground {
			if p.Y != 600-40 || p.Height != 40 {
				t.Fatalf("width %d: ground tile at (%d,%d) h=%d", width, p.X, p.Y, p.Height)
			}
		}
	}
}

func TestFloatingPlatformsStayInBounds(t *testing.T) {
	const width, height = 3200, 600
	g := New(width, height, 3)
	g.GenerateAccessiblePlatforms()

	floats := 0
	for _, p := range g.Platforms() {
		if p.Kind == KindGround {
			continue
		}
		floats++
		if p.X >= width-rightEdgeMargin {
			t.Errorf("platform at x=%d crowds the exit zone", p.X)
		}
		if p.Y < bandTop || p.Y > height-bandBottomOffset {
			t.Errorf("platform at y=%d outside the vertical band", p.Y)
		}
		if p.Height != platformHeight {
			t.Errorf("platform height %d, want %d", p.Height, platformHeight)
		}
		switch p.Width {
		case 100, 120, 150:
		default:
			t.Errorf("unexpected platform width %d", p.Width)
		}
	}
	if floats == 0 {
		t.Fatal("no floating platforms generated")
	}

	for _, s := range g.EnemySteppingStones() {
		if s.X <= 0 || s.X >= width || s.Y <= 0 || s.Y >= height {
			t.Errorf("stepping stone out of bounds at (%d,%d)", s.X, s.Y)
		}
		if s.Kind != "basic" {
			t.Errorf("stepping stone kind %q, want basic", s.Kind)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	a := New(3200, 600, 4)
	b := New(3200, 600, 4)
	pa := a.GenerateAccessiblePlatforms()
	pb := b.GenerateAccessiblePlatforms()
	if !reflect.DeepEqual(pa, pb) {
		t.Fatal("same inputs produced different layouts")
	}
	if !reflect.DeepEqual(a.EnemySteppingStones(), b.EnemySteppingStones()) {
		t.Fatal("same inputs produced different stepping stones")
	}
}

func TestDifficultyScalesDensity(t *testing.T) {
	// Wide enough that neither run hits the right-edge cutoff early.
	const width = 12800

	count := func(difficulty int) int {
		g := New(width, 600, difficulty)
		g.GenerateAccessiblePlatforms()
		n := 0
		for _, p := range g.Platforms() {
			if p.Kind != KindGround {
				n++
			}
		}
		return n
	}

	easy := count(0)
	hard := count(5)
	if hard <= easy {
		t.Fatalf("difficulty 5 produced %d platforms, difficulty 0 produced %d", hard, easy)
	}
}

func TestRegenerateResetsLayout(t *testing.T) {
	g := New(3200, 600, 2)
	first := len(g.GenerateAccessiblePlatforms())
	second := len(g.GenerateAccessiblePlatforms())
	if second > first*2 {
		t.Fatalf("regeneration accumulated platforms: %d then %d", first, second)
	}
}
