// Package simulation implements the predictive tick simulation: world state snapshots that advance in
// fixed steps with subtick input resolution, and the driver that reconciles them with real time.
package simulation

import (
	"slices"
	"time"

	"github.com/bumpmine-sim/subtick/entity"
	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/player"
	"github.com/bumpmine-sim/subtick/player/movement"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldState is a snapshot of the simulated world at one simulation time point. It is a value: copies
// made with Clone never share mutable data.
type WorldState struct {
	// SimTime is the simulation time point of the snapshot.
	SimTime time.Duration
	// IsInterpolated marks a blend of two snapshots. Interpolated states are for drawing only and must
	// never be advanced.
	IsInterpolated bool
	// PrevInput is the last input applied by a full advancement.
	PrevInput input.State

	Movement movement.State
	Player   player.Player

	// Projectiles holds the live projectiles in spawn order.
	Projectiles []entity.Projectile
	// NextEntityID is the ID given to the next spawned projectile.
	NextEntityID uint64
}

// NewWorldState returns a world state at simulation time zero with a player standing at origin.
func NewWorldState(origin mgl32.Vec3) WorldState {
	ws := WorldState{
		Movement:     movement.NewState(origin),
		Player:       player.New(),
		NextEntityID: 1,
	}
	ws.Movement.Loadout = ws.Player.Loadout
	return ws
}

// Clone returns a deep copy of the world state.
func (ws WorldState) Clone() WorldState {
	ws.Projectiles = slices.Clone(ws.Projectiles)
	return ws
}

// Projectile returns the projectile with the given ID, if present.
func (ws *WorldState) Projectile(id uint64) (*entity.Projectile, bool) {
	for i := range ws.Projectiles {
		if ws.Projectiles[i].ID == id {
			return &ws.Projectiles[i], true
		}
	}
	return nil, false
}
