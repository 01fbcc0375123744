// Package movement holds the player movement state and the integrator that advances it.
package movement

import (
	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/player"
	"github.com/go-gl/mathgl/mgl32"
)

// MoveType is the movement mode of the player.
type MoveType uint8

const (
	MoveTypeWalk MoveType = iota
	MoveTypeNoclip
)

// SpeedCrop is a set of flags recording which speed crops were already applied during the current
// integration segment, so that a crop is never applied twice.
type SpeedCrop uint8

const (
	SpeedCroppedReset SpeedCrop = 0
	SpeedCroppedDuck  SpeedCrop = 1 << iota
)

// State is the movement state of the player. It is owned by a single world state and copied along
// with it.
type State struct {
	AbsOrigin  mgl32.Vec3
	ViewOffset mgl32.Vec3
	Velocity   mgl32.Vec3
	// ViewAngles holds pitch, yaw and roll in degrees.
	ViewAngles mgl32.Vec3
	MoveType   MoveType

	Buttons    input.Buttons
	OldButtons input.Buttons
	Loadout    player.Loadout

	// ForwardMove and SideMove are the desired speeds derived from the held direction buttons.
	ForwardMove float32
	SideMove    float32

	SpeedCropped SpeedCrop
	MaxSpeed     float32

	OnGround bool
	Ducked   bool
}

// NewState returns a standing player at the given origin.
func NewState(origin mgl32.Vec3) State {
	return State{
		AbsOrigin:  origin,
		ViewOffset: standingViewOffset(),
		MoveType:   MoveTypeWalk,
	}
}

// EyePosition returns the position of the player's eyes.
func (s State) EyePosition() mgl32.Vec3 {
	return s.AbsOrigin.Add(s.ViewOffset)
}

// Integrator advances a movement state over a slice of simulated time against world geometry.
type Integrator interface {
	// PlayerMove integrates the movement state over dt seconds. dt may be zero, in which case only
	// instantaneous effects (such as a jump impulse) apply.
	PlayerMove(mv *State, w WorldProvider, dt float32)
	// FinishMove ends an integration segment.
	FinishMove(mv *State)
}
