package simulation

import (
	"time"

	"github.com/bumpmine-sim/subtick/assert"
	"github.com/bumpmine-sim/subtick/game"
)

// Interpolate blends world state a into b by phase. The result is marked as interpolated. At phase 0
// or below a copy of a is returned, and at phase 1 or above a copy of b.
//
// Everything apart from the simulation time, the player's position and view offset and the position
// of projectiles present in both states is taken from b.
func Interpolate(a, b WorldState, phase float32) WorldState {
	assert.IsTrue(a.SimTime <= b.SimTime, "interpolating backwards in time (%v > %v)", a.SimTime, b.SimTime)
	if phase <= 0 {
		return a.Clone()
	} else if phase >= 1 {
		return b.Clone()
	}

	out := b.Clone()
	out.IsInterpolated = true
	out.SimTime = a.SimTime + time.Duration(float64(b.SimTime-a.SimTime)*float64(phase))
	out.Movement.AbsOrigin = game.LerpVec3(a.Movement.AbsOrigin, b.Movement.AbsOrigin, phase)
	out.Movement.ViewOffset = game.LerpVec3(a.Movement.ViewOffset, b.Movement.ViewOffset, phase)

	for i := range out.Projectiles {
		p := &out.Projectiles[i]
		if prev, ok := a.Projectile(p.ID); ok {
			p.Position = game.LerpVec3(prev.Position, p.Position, phase)
		}
	}
	return out
}
