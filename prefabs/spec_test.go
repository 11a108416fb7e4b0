package prefabs

import "testing"

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.MoveSpeed != 5.0 {
		t.Errorf("move_speed = %v, want 5.0", spec.MoveSpeed)
	}
	if spec.JumpImpulse != -15.0 {
		t.Errorf("jump_impulse = %v, want -15.0", spec.JumpImpulse)
	}
	if spec.Lives != 3 {
		t.Errorf("lives = %d, want 3", spec.Lives)
	}
	if spec.StarFrames <= 0 {
		t.Errorf("star_frames = %d, want positive", spec.StarFrames)
	}
}

func TestLoadEnemySpec(t *testing.T) {
	spec, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("LoadEnemySpec: %v", err)
	}
	if spec.MoveSpeed != 2.0 {
		t.Errorf("move_speed = %v, want 2.0", spec.MoveSpeed)
	}
	if spec.Script == "" {
		t.Error("enemy spec has no behavior script")
	}
	if _, err := LoadScript(spec.Script); err != nil {
		t.Fatalf("LoadScript(%q): %v", spec.Script, err)
	}
}
