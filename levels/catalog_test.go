package levels

import "testing"

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Levels) != 10 {
		t.Fatalf("catalog has %d levels, want 10", len(c.Levels))
	}

	for i, def := range c.Levels {
		if def.Name == "" {
			t.Errorf("level %d has no name", i+1)
		}
		if def.Width != 2800+400*i {
			t.Errorf("level %d width %d, want %d", i+1, def.Width, 2800+400*i)
		}
		if def.Height != 600 {
			t.Errorf("level %d height %d, want 600", i+1, def.Height)
		}
		if def.Difficulty != i {
			t.Errorf("level %d difficulty %d, want %d", i+1, def.Difficulty, i)
		}
		if def.Theme.SkyTop.Color == nil || def.Theme.SkyBottom.Color == nil {
			t.Errorf("level %d (%s) missing sky colors", i+1, def.Name)
		}
		if len(def.Theme.EnemyPalette) == 0 {
			t.Errorf("level %d (%s) has no enemy palette", i+1, def.Name)
		}
	}
}

func TestParseCatalogRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", "levels: []"},
		{"zero size", "levels:\n  - name: x\n    width: 0\n    height: 600"},
		{"bad color", "levels:\n  - name: x\n    width: 800\n    height: 600\n    theme:\n      sky_top: \"notacolor\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseCatalog([]byte(tc.data)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
