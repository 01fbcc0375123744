package main

import (
	"time"

	"github.com/bumpmine-sim/subtick/input"
	"github.com/go-gl/mathgl/mgl32"
)

// scriptedSample returns the input of the scripted session at the given point in time: the player
// runs forward while strafing, turning with the strafe, scroll jumps every second and throws a Bump
// Mine in the third second.
func scriptedSample(elapsed time.Duration) input.State {
	var s input.State
	s.Buttons = input.InForward

	phase := elapsed % (800 * time.Millisecond)
	turn := float32(phase.Seconds()) / 0.4
	if phase < 400*time.Millisecond {
		s.Buttons |= input.InMoveRight
		s.ViewAngles = mgl32.Vec2{0, -30 * turn}
	} else {
		s.Buttons |= input.InMoveLeft
		s.ViewAngles = mgl32.Vec2{0, -30 * (2 - turn)}
	}

	if elapsed >= 2*time.Second && elapsed < 2100*time.Millisecond {
		s.Buttons |= input.InAttack
		s.ViewAngles[0] = 60
	}
	if elapsed%time.Second < 4*time.Millisecond && elapsed > 0 {
		s.Triggers = input.TriggerScrollJump
	}
	return s
}
