package entity

import (
	"testing"
	"time"

	"github.com/bumpmine-sim/subtick/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestProjectileFallsAndSticks(t *testing.T) {
	w := world.Flat(1024)
	p := Projectile{ID: 1, Position: mgl32.Vec3{0, 0, 50}, Velocity: mgl32.Vec3{100, 0, 0}}

	step := time.Second / 64
	for i := 0; i < 128 && !p.Stuck; i++ {
		p.Advance(step, w, 800)
	}
	require.True(t, p.Stuck)
	require.Equal(t, mgl32.Vec3{}, p.Velocity)
	require.InDelta(t, 2, p.Position.Z(), 1e-3, "rests on the ground with half its size above it")
	require.Greater(t, p.Position.X(), float32(0))

	pos := p.Position
	p.Advance(step, w, 800)
	require.Equal(t, pos, p.Position, "stuck projectiles do not move")
}

func TestProjectileWithoutWorld(t *testing.T) {
	p := Projectile{Velocity: mgl32.Vec3{64, 0, 0}}
	p.Advance(time.Second/2, nil, 0)
	require.Equal(t, mgl32.Vec3{32, 0, 0}, p.Position)
	require.Equal(t, time.Second/2, p.Age)
}

func TestDetonatedProjectileIsFrozen(t *testing.T) {
	p := Projectile{Velocity: mgl32.Vec3{64, 0, 0}}
	p.Detonate()
	p.Advance(time.Second, nil, 800)
	require.True(t, p.Detonated)
	require.Equal(t, mgl32.Vec3{}, p.Position)
}
