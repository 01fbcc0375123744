package movement

import (
	"github.com/bumpmine-sim/subtick/debug"
	"github.com/bumpmine-sim/subtick/game"
	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/settings"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldProvider is the collision geometry used by integrators.
type WorldProvider = world.Provider

// SourceIntegrator is an Integrator with Source engine style ground and air movement.
type SourceIntegrator struct {
	Settings settings.MovementSettings
	Dbg      *debug.Debugger
}

// NewSourceIntegrator returns an integrator using the given movement settings.
func NewSourceIntegrator(s settings.MovementSettings, dbg *debug.Debugger) *SourceIntegrator {
	return &SourceIntegrator{Settings: s, Dbg: dbg}
}

// PlayerMove ...
func (si *SourceIntegrator) PlayerMove(mv *State, w WorldProvider, dt float32) {
	ctx := newCtx(mv, w, si.Settings, dt)
	defer putCtx(ctx)

	si.Dbg.Notify(debug.ModeMovement, true, "BEGIN segment dt=%.5f buttons=%b fmove=%.1f smove=%.1f", dt, mv.Buttons, mv.ForwardMove, mv.SideMove)
	defer func() {
		si.Dbg.Notify(debug.ModeMovement, true, "END segment origin=%v vel=%v onGround=%v", mv.AbsOrigin, mv.Velocity, mv.OnGround)
	}()

	if mv.MoveType == MoveTypeNoclip {
		ctx.noclip()
		return
	}

	ctx.duck()
	ctx.categorizePosition()
	if ctx.jump() {
		si.Dbg.Notify(debug.ModeMovement, true, "jump (vel=%v)", mv.Velocity)
	}

	if mv.OnGround {
		ctx.friction()
		ctx.walk()
	} else {
		ctx.airMove()
	}
	ctx.tryCollisions()
}

// FinishMove ...
func (si *SourceIntegrator) FinishMove(mv *State) {
	mv.OldButtons = mv.Buttons
	if mv.Velocity.LenSqr() < game.VelocityEpsilon*game.VelocityEpsilon {
		mv.Velocity = mgl32.Vec3{}
	}
}

func (ctx *movementContext) noclip() {
	wishVel := ctx.wishVelocity(true)
	ctx.mv.Velocity = wishVel
	ctx.mv.AbsOrigin = ctx.mv.AbsOrigin.Add(wishVel.Mul(ctx.dt))
	ctx.mv.OnGround = false
}

func (ctx *movementContext) duck() {
	mv := ctx.mv
	mv.Ducked = mv.Buttons.Has(input.InDuck)
	if mv.Ducked {
		mv.ViewOffset = mgl32.Vec3{0, 0, game.PlayerDuckViewOffsetZ}
		if mv.SpeedCropped&SpeedCroppedDuck == 0 {
			mv.ForwardMove *= game.DuckSpeedModifier
			mv.SideMove *= game.DuckSpeedModifier
			mv.SpeedCropped |= SpeedCroppedDuck
		}
		return
	}
	mv.ViewOffset = standingViewOffset()
}

func (ctx *movementContext) jump() bool {
	mv := ctx.mv
	if !mv.OnGround || !mv.Buttons.Has(input.InJump) || mv.OldButtons.Has(input.InJump) {
		return false
	}
	mv.Velocity[2] = ctx.cfg.JumpImpulse
	mv.OnGround = false
	return true
}

// wishVelocity returns the velocity the player wants to move at. Unless full is set, the view pitch
// is ignored so that looking up or down does not change ground speed.
func (ctx *movementContext) wishVelocity(full bool) mgl32.Vec3 {
	angles := ctx.mv.ViewAngles
	if !full {
		angles[0] = 0
	}

	var forward, right mgl32.Vec3
	game.AnglesToVectors(angles, &forward, &right, nil)
	if !full {
		forward[2], right[2] = 0, 0
		if forward.LenSqr() > 0 {
			forward = forward.Normalize()
		}
		if right.LenSqr() > 0 {
			right = right.Normalize()
		}
	}

	wishVel := forward.Mul(ctx.mv.ForwardMove).Add(right.Mul(ctx.mv.SideMove))
	if speed := wishVel.Len(); speed > ctx.mv.MaxSpeed && speed > 0 {
		wishVel = wishVel.Mul(ctx.mv.MaxSpeed / speed)
	}
	return wishVel
}

func (ctx *movementContext) friction() {
	mv := ctx.mv
	speed := mv.Velocity.Len()
	if speed < 0.1 {
		return
	}

	control := math32.Max(speed, ctx.cfg.StopSpeed)
	drop := control * ctx.cfg.Friction * ctx.dt
	newSpeed := math32.Max(speed-drop, 0)
	mv.Velocity = mv.Velocity.Mul(newSpeed / speed)
}

func (ctx *movementContext) walk() {
	wishVel := ctx.wishVelocity(false)
	wishSpeed := wishVel.Len()
	if wishSpeed > 0 {
		ctx.accelerate(wishVel.Mul(1/wishSpeed), wishSpeed, ctx.cfg.Accelerate, wishSpeed)
	}
	ctx.mv.Velocity[2] = 0
}

func (ctx *movementContext) airMove() {
	wishVel := ctx.wishVelocity(false)
	wishSpeed := wishVel.Len()
	if wishSpeed > 0 {
		ctx.accelerate(wishVel.Mul(1/wishSpeed), math32.Min(wishSpeed, ctx.cfg.AirSpeedCap), ctx.cfg.AirAccelerate, wishSpeed)
	}
	ctx.mv.Velocity[2] -= ctx.cfg.Gravity * ctx.dt
}

// accelerate adds velocity along wishDir until the speed projected on it reaches wishSpeed. The
// acceleration rate scales with scaleSpeed.
func (ctx *movementContext) accelerate(wishDir mgl32.Vec3, wishSpeed, accel, scaleSpeed float32) {
	mv := ctx.mv
	addSpeed := wishSpeed - mv.Velocity.Dot(wishDir)
	if addSpeed <= 0 {
		return
	}
	accelSpeed := math32.Min(accel*ctx.dt*scaleSpeed, addSpeed)
	mv.Velocity = mv.Velocity.Add(wishDir.Mul(accelSpeed))
}

func standingViewOffset() mgl32.Vec3 {
	return game.DefaultViewOffset
}
