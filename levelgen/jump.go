package levelgen

import "github.com/ratracegame/ratrace/common"

const (
	// JumpMargin pads the derived jump height. Integer rounding and the
	// fixed-step integrator eat a little of the theoretical apex.
	JumpMargin = 20

	// SafeHorizontalDistance is how far the player covers in one airborne
	// arc. Empirical, tuned against the movement code. Do not re-derive it
	// from speed and airtime; the tuned value already accounts for
	// acceleration ramp-up off a ledge.
	SafeHorizontalDistance = 250
)

// MaxJumpHeight is the peak rise of a single jump under the shared movement
// constants: v0^2 / 2g, truncated to whole pixels.
func MaxJumpHeight() int {
	v0 := float64(common.JumpImpulse)
	return int(v0 * v0 / (2 * common.Gravity))
}

// SafeJumpHeight is the planning budget: MaxJumpHeight plus margin. The
// validator accepts edges up to this, the generator plans below
// SafeJumpHeight-JumpMargin.
func SafeJumpHeight() int {
	return MaxJumpHeight() + JumpMargin
}
