package levelgen

import "testing"

func TestJumpEnvelope(t *testing.T) {
	// v0 = -15, g = 0.8: 225 / 1.6 = 140.625, truncated.
	if got := MaxJumpHeight(); got != 140 {
		t.Fatalf("MaxJumpHeight() = %d, want 140", got)
	}
	if got := SafeJumpHeight(); got != 160 {
		t.Fatalf("SafeJumpHeight() = %d, want 160", got)
	}
	if SafeHorizontalDistance != 250 {
		t.Fatalf("SafeHorizontalDistance = %d, want 250", SafeHorizontalDistance)
	}
}

func TestPlanningBudgetBelowValidatorBudget(t *testing.T) {
	if SafeJumpHeight()-JumpMargin > MaxJumpHeight() {
		t.Fatalf("planning budget %d exceeds the physical jump height %d",
			SafeJumpHeight()-JumpMargin, MaxJumpHeight())
	}
}
