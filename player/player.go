// Package player holds the persistent player attributes carried from one world state to the next.
package player

import "time"

// Weapon is a weapon a player can hold.
type Weapon uint8

const (
	WeaponNone Weapon = iota
	WeaponKnife
	WeaponBumpMine
)

// String ...
func (w Weapon) String() string {
	switch w {
	case WeaponKnife:
		return "knife"
	case WeaponBumpMine:
		return "bump_mine"
	default:
		return "none"
	}
}

// Loadout describes the equipment of a player.
type Loadout struct {
	// Active is the weapon currently held.
	Active Weapon
}

// Player contains the persistent attributes of the simulated player.
type Player struct {
	Loadout Loadout
	// NextPrimaryAttack is the simulation time point at which the primary attack is allowed again.
	NextPrimaryAttack time.Duration
}

// New returns a player holding Bump Mines.
func New() Player {
	return Player{Loadout: Loadout{Active: WeaponBumpMine}}
}

// CanAttack returns whether the primary attack is off cooldown at the given simulation time.
func (p Player) CanAttack(simtime time.Duration) bool {
	return simtime >= p.NextPrimaryAttack
}
