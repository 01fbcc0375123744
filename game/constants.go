package game

import "github.com/go-gl/mathgl/mgl32"

// Movement constants, in Source units (inches, seconds). The world is Z-up.
const (
	DefaultGravity        = float32(800)
	DefaultFriction       = float32(5.2)
	DefaultStopSpeed      = float32(80)
	DefaultAccelerate     = float32(5.5)
	DefaultAirAccelerate  = float32(12)
	DefaultAirSpeedCap    = float32(30)
	DefaultJumpImpulse    = float32(301.993377)
	DefaultForwardSpeed   = float32(450)
	DefaultBackSpeed      = float32(450)
	DefaultSideSpeed      = float32(450)
	DuckSpeedModifier     = float32(0.34)
	GroundCheckDistance   = float32(2)
	VelocityEpsilon       = float32(1e-4)
	MaxVelocity           = float32(3500)
	PlayerHullWidth       = float32(32)
	PlayerHullHeight      = float32(72)
	PlayerDuckHullHeight  = float32(54)
	PlayerViewOffsetZ     = float32(64.062561)
	PlayerDuckViewOffsetZ = float32(46.044968)
)

// Bump Mine constants.
const (
	BumpThrowIntervalSecs = float32(1)
	BumpThrowSpeed        = float32(550)
	BumpThrowSpawnOffset  = float32(12)
	BumpProjectileSize    = float32(4)
)

// DefaultViewOffset is the eye position relative to the player's origin while standing.
var DefaultViewOffset = mgl32.Vec3{0, 0, PlayerViewOffsetZ}
