package entity

import (
	"time"

	"github.com/bumpmine-sim/subtick/game"
	"github.com/bumpmine-sim/subtick/utils"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Projectile is a thrown Bump Mine. It flies ballistically until it touches solid geometry, where it
// sticks until it is detonated.
type Projectile struct {
	// ID is unique within the lineage of world states the projectile was spawned in. It is stable
	// across copies and advancements, and is used to match the projectile between world states.
	ID       uint64
	Position mgl32.Vec3
	Velocity mgl32.Vec3

	// Stuck is true once the projectile has landed on a surface.
	Stuck bool
	// Detonated projectiles are removed on the next advancement.
	Detonated bool
	// Age is the simulated time the projectile has existed for.
	Age time.Duration
}

// BoundingBox returns the collision box of the projectile.
func (p Projectile) BoundingBox() cube.BBox {
	return game.CenteredAABB(p.Position, game.BumpProjectileSize)
}

// Detonate marks the projectile as detonated.
func (p *Projectile) Detonate() {
	p.Detonated = true
}

// Advance moves the projectile forward by dt of simulated time under the given gravity. With a nil
// world the projectile flies through everything.
func (p *Projectile) Advance(dt time.Duration, w world.Provider, gravity float32) {
	p.Age += dt
	if p.Detonated || p.Stuck {
		return
	}

	secs := float32(dt.Seconds())
	p.Velocity[2] -= gravity * secs
	delta := p.Velocity.Mul(secs)
	if w == nil {
		p.Position = p.Position.Add(delta)
		return
	}

	bb := p.BoundingBox()
	clipped := utils.SweepCollide(bb, delta, w.NearbyBoxes(bb.Extend(delta)))
	p.Position = p.Position.Add(clipped)
	if clipped != delta {
		p.Stuck = true
		p.Velocity = mgl32.Vec3{}
	}
}
