package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Brain wraps a compiled tengo behavior script. The script reads the
// injected globals each run and writes back dir and speed_mult.
type Brain struct {
	compiled *tengo.Compiled
}

func NewBrain(src []byte) (*Brain, error) {
	script := tengo.NewScript(src)
	for name, value := range map[string]interface{}{
		"x":          0.0,
		"dir":        1.0,
		"min_x":      0.0,
		"max_x":      0.0,
		"player_x":   0.0,
		"aggro":      0.0,
		"speed_mult": 1.0,
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("obj: add script global %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile behavior script: %w", err)
	}
	return &Brain{compiled: compiled}, nil
}

// Think runs one behavior tick. The game loop is single threaded, so one
// Brain can serve every enemy: globals are set per call.
func (b *Brain) Think(x, dir, minX, maxX, playerX, aggro float64) (newDir, speedMult float64, err error) {
	if b == nil || b.compiled == nil {
		return dir, 1.0, nil
	}
	sets := []struct {
		name  string
		value interface{}
	}{
		{"x", x},
		{"dir", dir},
		{"min_x", minX},
		{"max_x", maxX},
		{"player_x", playerX},
		{"aggro", aggro},
		{"speed_mult", 1.0},
	}
	for _, s := range sets {
		if err := b.compiled.Set(s.name, s.value); err != nil {
			return dir, 1.0, err
		}
	}
	if err := b.compiled.Run(); err != nil {
		return dir, 1.0, err
	}
	return b.compiled.Get("dir").Float(), b.compiled.Get("speed_mult").Float(), nil
}
