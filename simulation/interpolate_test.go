package simulation

import (
	"testing"
	"time"

	"github.com/bumpmine-sim/subtick/entity"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func interpolationPair() (WorldState, WorldState) {
	a := NewWorldState(mgl32.Vec3{0, 0, 0})
	a.SimTime = time.Second
	a.Projectiles = []entity.Projectile{{ID: 1, Position: mgl32.Vec3{0, 0, 10}}}

	b := NewWorldState(mgl32.Vec3{100, 0, 0})
	b.SimTime = time.Second + tickStep
	b.Movement.Velocity = mgl32.Vec3{250, 0, 0}
	b.Projectiles = []entity.Projectile{
		{ID: 1, Position: mgl32.Vec3{20, 0, 10}},
		{ID: 2, Position: mgl32.Vec3{5, 5, 5}},
	}
	return a, b
}

func TestInterpolateEndpoints(t *testing.T) {
	a, b := interpolationPair()
	require.Equal(t, a, Interpolate(a, b, 0))
	require.Equal(t, b, Interpolate(a, b, 1))
	require.Equal(t, a, Interpolate(a, b, -0.5))
}

func TestInterpolateBlends(t *testing.T) {
	a, b := interpolationPair()
	mid := Interpolate(a, b, 0.25)

	require.True(t, mid.IsInterpolated)
	require.InDelta(t, 25, mid.Movement.AbsOrigin.X(), 1e-4)
	require.Equal(t, b.Movement.Velocity, mid.Movement.Velocity)
	require.Len(t, mid.Projectiles, 2)
	require.InDelta(t, 5, mid.Projectiles[0].Position.X(), 1e-4)
	require.Equal(t, mgl32.Vec3{5, 5, 5}, mid.Projectiles[1].Position, "projectile only in b keeps its raw position")

	require.Equal(t, mgl32.Vec3{20, 0, 10}, b.Projectiles[0].Position, "b is not modified")
}

func TestInterpolateSimTimeMonotonic(t *testing.T) {
	a, b := interpolationPair()
	prev := a.SimTime
	for i := 0; i <= 100; i++ {
		ws := Interpolate(a, b, float32(i)/100)
		require.GreaterOrEqual(t, ws.SimTime, prev)
		require.LessOrEqual(t, ws.SimTime, b.SimTime)
		prev = ws.SimTime
	}
}

func TestInterpolateBackwardsPanics(t *testing.T) {
	a, b := interpolationPair()
	require.Panics(t, func() { Interpolate(b, a, 0.5) })
}
