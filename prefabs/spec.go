// Package prefabs holds gameplay tuning specs as embedded YAML, overridable
// from disk so numbers can be tweaked without a rebuild.
package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec tunes movement and the powerup timers. MoveSpeed and
// JumpImpulse should stay in sync with the constants the level generator
// plans against; drifting them apart makes validated layouts unbeatable.
type PlayerSpec struct {
	Name             string  `yaml:"name"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MoveSpeed        float64 `yaml:"move_speed"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	CoyoteFrames     int     `yaml:"coyote_frames"`
	JumpBufferFrames int     `yaml:"jump_buffer_frames"`
	StompBounce      float64 `yaml:"stomp_bounce"`
	StarFrames       int     `yaml:"star_frames"`
	StarSpeedFactor  float64 `yaml:"star_speed_factor"`
	Lives            int     `yaml:"lives"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EnemySpec tunes patrol behavior shared by all enemy kinds; per-kind
// multipliers live in the object code.
type EnemySpec struct {
	Name         string  `yaml:"name"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MoveSpeed    float64 `yaml:"move_speed"`
	PatrolRange  float64 `yaml:"patrol_range"`
	AggroRange   float64 `yaml:"aggro_range"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobFrequency float64 `yaml:"bob_frequency"`
	Script       string  `yaml:"script"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
