// Package input models the player input samples consumed by the simulation.
package input

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Buttons is the bitmask of held buttons, using the Source engine bit layout.
type Buttons uint64

const (
	InAttack Buttons = 1 << iota
	InJump
	InDuck
	InForward
	InBack
	InUse
	InCancel
	InLeft
	InRight
	InMoveLeft
	InMoveRight
	InAttack2
	InRun
	InReload
)

// Has returns whether all bits of flag are set.
func (b Buttons) Has(flag Buttons) bool {
	return b&flag == flag
}

// Triggers is the set of one-shot events of a sample. Triggers never persist past the advancement
// that consumed them.
type Triggers uint8

const (
	// TriggerScrollJump is a scrollwheel jump: a jump press that lasts for an instant.
	TriggerScrollJump Triggers = 1 << iota
)

// Has returns whether all bits of flag are set.
func (t Triggers) Has(flag Triggers) bool {
	return t&flag == flag
}

// State is a single player input sample.
type State struct {
	// SampleTime is the real time point the input was sampled at.
	SampleTime time.Time
	// ViewAngles holds pitch and yaw in degrees.
	ViewAngles mgl32.Vec2
	// Buttons is the set of continuously held buttons.
	Buttons Buttons
	// Triggers is the set of one-shot events that happened since the previous sample.
	Triggers Triggers
}

// Resolve merges the chronological samples of one tick into the input that tick is simulated
// with. Continuous fields come from the latest sample and triggers are OR'd across all samples. With
// no samples, prev carries over without its triggers.
func Resolve(prev State, samples []State) State {
	if len(samples) == 0 {
		resolved := prev
		resolved.Triggers = 0
		return resolved
	}

	resolved := samples[len(samples)-1]
	for _, s := range samples {
		resolved.Triggers |= s.Triggers
	}
	return resolved
}
