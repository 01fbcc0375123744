package simulation

import (
	"time"

	"github.com/bumpmine-sim/subtick/assert"
	"github.com/bumpmine-sim/subtick/debug"
	"github.com/bumpmine-sim/subtick/entity"
	"github.com/bumpmine-sim/subtick/game"
	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/player/movement"
	"github.com/go-gl/mathgl/mgl32"
)

// Advance advances the world state by one simulation step. inputs are the samples received during the
// step in chronological order, and steps is the subtick ledger of the step. fraction is how much of
// the step player movement is integrated for: 1 produces a complete tick, anything less produces a
// partial state for drawing.
//
// SimTime always moves forward by the full step, whatever the fraction.
func (ws *WorldState) Advance(env Env, step time.Duration, inputs []input.State, steps []SubtickStep, fraction float32) {
	assert.IsTrue(!ws.IsInterpolated, "cannot advance an interpolated world state (simtime=%v)", ws.SimTime)
	assert.IsTrue(fraction >= 0 && fraction <= 1, "advance fraction %v outside [0, 1]", fraction)
	checkSteps(steps, fraction)

	ws.SimTime += step
	if env.World == nil {
		return
	}
	assert.IsTrue(env.Integrator != nil, "advancing with a world but no movement integrator")

	env.Dbg.Notify(debug.ModeMovement, true, "BEGIN advance to simtime=%v (inputs=%d steps=%d fraction=%.4f)", ws.SimTime, len(inputs), len(steps), fraction)
	defer env.Dbg.Notify(debug.ModeMovement, true, "END advance to simtime=%v", ws.SimTime)

	in := input.Resolve(ws.PrevInput, inputs)
	mv := &ws.Movement
	mv.ViewAngles = mgl32.Vec3{in.ViewAngles[0], in.ViewAngles[1], 0}
	mv.Buttons = in.Buttons
	if in.Triggers.Has(input.TriggerScrollJump) && mv.MoveType != movement.MoveTypeNoclip {
		mv.Buttons |= input.InJump
	}

	ws.advanceEntities(env, step, in.Buttons)

	stepSecs := float32(step.Seconds())
	buttons := ws.PrevInput.Buttons
	var start float32
	for i := 0; i <= len(steps); i++ {
		end := fraction
		if i < len(steps) {
			end = steps[i].When
		}
		if i > 0 {
			buttons = steps[i-1].InputBitmask
		}
		ws.moveSegment(env, buttons, (end-start)*stepSecs)
		start = end
	}

	if fraction == 1 {
		// A scroll jump only lasts for the instant it was pressed in.
		if in.Triggers.Has(input.TriggerScrollJump) && !in.Buttons.Has(input.InJump) {
			buttons &^= input.InJump
		}
		ws.PrevInput = in
		ws.PrevInput.Buttons = buttons
		ws.PrevInput.Triggers = 0
	}
}

// moveSegment integrates player movement over dt seconds with the given buttons held.
func (ws *WorldState) moveSegment(env Env, buttons input.Buttons, dt float32) {
	mv := &ws.Movement
	cfg := env.Settings.Movement

	mv.Buttons = buttons
	mv.Loadout = ws.Player.Loadout
	mv.ForwardMove, mv.SideMove = 0, 0
	if buttons.Has(input.InForward) {
		mv.ForwardMove += cfg.ForwardSpeed
	}
	if buttons.Has(input.InBack) {
		mv.ForwardMove -= cfg.BackSpeed
	}
	if buttons.Has(input.InMoveRight) {
		mv.SideMove += cfg.SideSpeed
	}
	if buttons.Has(input.InMoveLeft) {
		mv.SideMove -= cfg.SideSpeed
	}
	mv.SpeedCropped = movement.SpeedCroppedReset
	mv.MaxSpeed = env.Settings.MaxPlayerRunningSpeed(mv.Loadout)

	env.Integrator.PlayerMove(mv, env.World, dt)
	env.Integrator.FinishMove(mv)
}

// advanceEntities removes detonated projectiles, advances the rest by a full step and throws a new Bump
// Mine if the primary attack is held and off cooldown.
func (ws *WorldState) advanceEntities(env Env, step time.Duration, buttons input.Buttons) {
	cfg := env.Settings.Bumpmine

	live := ws.Projectiles[:0]
	for _, p := range ws.Projectiles {
		if !p.Detonated {
			live = append(live, p)
		}
	}
	clear(ws.Projectiles[len(live):])
	ws.Projectiles = live

	for i := range ws.Projectiles {
		ws.Projectiles[i].Advance(step, env.World, cfg.Gravity)
	}

	if !buttons.Has(input.InAttack) || !ws.Player.CanAttack(ws.SimTime) {
		return
	}
	ws.Player.NextPrimaryAttack = ws.SimTime + game.RoundToNearestStep(cfg.ThrowIntervalSecs, step)

	mv := ws.Movement
	var forward mgl32.Vec3
	game.AnglesToVectors(mv.ViewAngles, &forward, nil, nil)
	p := entity.Projectile{
		ID:       ws.NextEntityID,
		Position: mv.EyePosition().Add(mgl32.Vec3{0, 0, -cfg.ThrowSpawnOffset}),
		Velocity: mv.Velocity.Add(forward.Mul(cfg.ThrowSpeed)),
	}
	ws.NextEntityID++
	ws.Projectiles = append(ws.Projectiles, p)
	env.Dbg.Notify(debug.ModeMovement, true, "threw projectile %d at %v (vel=%v), next attack at %v", p.ID, p.Position, p.Velocity, ws.Player.NextPrimaryAttack)
}
