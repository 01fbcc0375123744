package movement

import (
	"github.com/bumpmine-sim/subtick/game"
	"github.com/bumpmine-sim/subtick/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// groundLiftSpeed is the upward speed above which the player is never considered on ground.
const groundLiftSpeed = float32(140)

// categorizePosition determines whether the player is standing on solid geometry.
func (ctx *movementContext) categorizePosition() {
	mv := ctx.mv
	if ctx.w == nil || mv.Velocity.Z() > groundLiftSpeed {
		mv.OnGround = false
		return
	}

	hull := game.PlayerHull(mv.AbsOrigin, mv.Ducked)
	down := mgl32.Vec3{0, 0, -game.GroundCheckDistance}
	clipped := utils.SweepCollide(hull, down, ctx.w.NearbyBoxes(hull.Extend(down)))
	mv.OnGround = clipped.Z() > down.Z()
	if mv.OnGround && clipped.Z() < 0 {
		// Snap down onto the surface below.
		mv.AbsOrigin[2] += clipped.Z()
	}
}

// tryCollisions moves the player by its velocity over the segment, stopping at world geometry.
func (ctx *movementContext) tryCollisions() {
	mv := ctx.mv
	if v := mv.Velocity.Len(); v > game.MaxVelocity {
		mv.Velocity = mv.Velocity.Mul(game.MaxVelocity / v)
	}
	if ctx.dt <= 0 {
		return
	}

	delta := mv.Velocity.Mul(ctx.dt)
	if ctx.w == nil {
		mv.AbsOrigin = mv.AbsOrigin.Add(delta)
		return
	}

	hull := game.PlayerHull(mv.AbsOrigin, mv.Ducked)
	clipped := utils.SweepCollide(hull, delta, ctx.w.NearbyBoxes(hull.Extend(delta)))
	mv.AbsOrigin = mv.AbsOrigin.Add(clipped)

	for axis := 0; axis < 3; axis++ {
		if clipped[axis] == delta[axis] {
			continue
		}
		if axis == 2 && delta[axis] < 0 {
			mv.OnGround = true
		}
		mv.Velocity[axis] = 0
	}
}
