// Package levels holds the level catalog: per-level dimensions, difficulty
// and visual theme. The layout itself is generated at load time; the catalog
// only records the generator inputs and how the level should look.
package levels

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme drives rendering only. Quirk is the exception: it toggles one
// gameplay modifier for the level.
type Theme struct {
	Name          string      `yaml:"name"`
	SkyTop        YAMLColor   `yaml:"sky_top"`
	SkyBottom     YAMLColor   `yaml:"sky_bottom"`
	PlatformStyle string      `yaml:"platform_style"`
	EnemyPalette  []YAMLColor `yaml:"enemy_palette"`
	Quirk         string      `yaml:"quirk,omitempty"`
}

// Known quirk values. Unknown quirks are ignored by the game.
const (
	QuirkSlippery    = "slippery"
	QuirkLowGravity  = "low_gravity"
	QuirkEnemiesJump = "enemies_jump"
)

type LevelDef struct {
	Name       string `yaml:"name"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Difficulty int    `yaml:"difficulty"`
	Theme      Theme  `yaml:"theme"`
}

type Catalog struct {
	Levels []LevelDef `yaml:"levels"`
}

func parseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("levels: unmarshal catalog: %w", err)
	}
	if len(c.Levels) == 0 {
		return nil, fmt.Errorf("levels: catalog has no levels")
	}
	for i, def := range c.Levels {
		if def.Width <= 0 || def.Height <= 0 {
			return nil, fmt.Errorf("levels: level %d (%s) has invalid size %dx%d", i+1, def.Name, def.Width, def.Height)
		}
	}
	return &c, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// RGBA falls back to opaque white when a color was left unset in the
// catalog, so a sparse theme still renders.
func (c YAMLColor) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	r, g, b, a := c.Color.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
