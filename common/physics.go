package common

// Movement constants shared by the physics step and the level generator.
// The generator derives its jump envelope from Gravity and JumpImpulse, so
// a layout validated against these numbers stays traversable in play.
const (
	// Gravity is downward acceleration in pixels per frame squared.
	Gravity = 0.8
	// JumpImpulse is the vertical velocity applied on jump, pixels per frame.
	JumpImpulse = -15.0
	// PlayerSpeed is the player's horizontal run speed in pixels per frame.
	PlayerSpeed = 5.0
	// EnemySpeed is the base enemy patrol speed in pixels per frame.
	EnemySpeed = 2.0
)

// Logical screen size. Levels are wider than this; the camera scrolls.
const (
	BaseWidth  = 800
	BaseHeight = 600
)
