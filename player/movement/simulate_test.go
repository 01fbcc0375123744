package movement

import (
	"testing"

	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/settings"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

const dt = float32(1.0 / 64)

func newTestIntegrator() *SourceIntegrator {
	return NewSourceIntegrator(settings.Default().Movement, nil)
}

func groundedState() State {
	mv := NewState(mgl32.Vec3{})
	mv.MaxSpeed = 250
	mv.OnGround = true
	return mv
}

func TestWalkForwardAccelerates(t *testing.T) {
	si := newTestIntegrator()
	w := world.Flat(4096)

	mv := groundedState()
	mv.Buttons = input.InForward
	mv.ForwardMove = 450
	for i := 0; i < 64; i++ {
		si.PlayerMove(&mv, w, dt)
		si.FinishMove(&mv)
	}
	require.True(t, mv.OnGround)
	require.Greater(t, mv.AbsOrigin.X(), float32(100), "yaw 0 walks along +X")
	require.InDelta(t, 0, mv.AbsOrigin.Z(), 1e-4)
	require.LessOrEqual(t, mv.Velocity.Len(), float32(250.01), "capped by max speed")
}

func TestJumpRequiresFreshPress(t *testing.T) {
	si := newTestIntegrator()
	w := world.Flat(4096)

	mv := groundedState()
	mv.Buttons = input.InJump
	si.PlayerMove(&mv, w, 0)
	si.FinishMove(&mv)
	require.False(t, mv.OnGround)
	require.Equal(t, settings.Default().Movement.JumpImpulse, mv.Velocity.Z(), "zero length segments still apply the impulse")

	held := groundedState()
	held.Buttons = input.InJump
	held.OldButtons = input.InJump
	si.PlayerMove(&held, w, dt)
	require.Zero(t, held.Velocity.Z())
}

func TestFallLandsOnGround(t *testing.T) {
	si := newTestIntegrator()
	w := world.Flat(4096)

	mv := NewState(mgl32.Vec3{0, 0, 100})
	mv.MaxSpeed = 250
	for i := 0; i < 256 && !mv.OnGround; i++ {
		si.PlayerMove(&mv, w, dt)
		si.FinishMove(&mv)
	}
	require.True(t, mv.OnGround)
	require.InDelta(t, 0, mv.AbsOrigin.Z(), 1e-3)
	require.Zero(t, mv.Velocity.Z())
}

func TestDuckCropsOnce(t *testing.T) {
	si := newTestIntegrator()
	mv := groundedState()
	mv.Buttons = input.InDuck | input.InForward
	mv.ForwardMove = 450

	si.PlayerMove(&mv, world.Flat(512), 0)
	require.InDelta(t, 450*0.34, mv.ForwardMove, 1e-3)
	si.PlayerMove(&mv, world.Flat(512), 0)
	require.InDelta(t, 450*0.34, mv.ForwardMove, 1e-3)
	require.True(t, mv.Ducked)
	require.Less(t, mv.ViewOffset.Z(), NewState(mgl32.Vec3{}).ViewOffset.Z())
	require.Equal(t, mv.AbsOrigin.Add(mv.ViewOffset), mv.EyePosition())
}

func TestNoclipIgnoresGeometry(t *testing.T) {
	si := newTestIntegrator()
	mv := NewState(mgl32.Vec3{})
	mv.MoveType = MoveTypeNoclip
	mv.MaxSpeed = 1000
	mv.ViewAngles = mgl32.Vec3{90, 0, 0}
	mv.ForwardMove = 450

	si.PlayerMove(&mv, world.Flat(512), 1)
	require.InDelta(t, -450, mv.AbsOrigin.Z(), 1e-2, "looking straight down flies through the floor")
}
